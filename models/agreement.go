package models

import "time"

// Agreement is a customer's consent to one terms/policy category.
// (CustNm, TmcndPlcyClsCd) is the logical key but the table does not enforce uniqueness.
type Agreement struct {
	AgreNo         string     `json:"agre_no" gorm:"column:agre_no;type:varchar(36);primaryKey;not null"`
	TmcndPlcyClsCd *string    `json:"tmcnd_plcy_cls_cd" gorm:"column:tmcnd_plcy_cls_cd;type:varchar(20)"`
	ScrnID         *string    `json:"scrn_id" gorm:"column:scrn_id;type:varchar(20)"`
	CustID         *string    `json:"cust_id" gorm:"column:cust_id;type:varchar(100)"`
	CustNm         *string    `json:"cust_nm" gorm:"column:cust_nm;type:varchar(100)"`
	Eml            *string    `json:"eml" gorm:"column:eml;type:varchar(100)"`
	AgreYn         *string    `json:"agre_yn" gorm:"column:agre_yn;type:varchar(1)"`
	AgreDtm        *time.Time `json:"agre_dtm" gorm:"column:agre_dtm;type:timestamp"`
	InptUsrID      string     `json:"inpt_usr_id" gorm:"column:inpt_usr_id;type:varchar(100);not null"`
	InptDtm        time.Time  `json:"inpt_dtm" gorm:"column:inpt_dtm;type:timestamp;not null"`
	UpdtUsrID      string     `json:"updt_usr_id" gorm:"column:updt_usr_id;type:varchar(100);not null"`
	UpdtDtm        time.Time  `json:"updt_dtm" gorm:"column:updt_dtm;type:timestamp;not null"`
}

// TableName lives in the dfp schema, unlike the other dashboard tables
func (Agreement) TableName() string {
	return "dfp.tcus_agre_m"
}

func (a Agreement) Agreed() bool {
	return a.AgreYn != nil && *a.AgreYn == FlagYes
}

// AgreementFlag converts the toggle sent by the dashboard into the stored Y/N flag
func AgreementFlag(agreed bool) string {
	if agreed {
		return FlagYes
	}
	return FlagNo
}
