package models

import "gorm.io/datatypes"

// CustomerInfo is a read-only view of the customer master table
type CustomerInfo struct {
	CustNo     int64           `json:"cust_no" gorm:"column:cust_no;primaryKey;autoIncrement"`
	CustID     string          `json:"cust_id" gorm:"column:cust_id;type:varchar(100)"`
	CustNm     string          `json:"cust_nm" gorm:"column:cust_nm;type:varchar(100)"`
	Eml        string          `json:"eml" gorm:"column:eml;type:varchar(100)"`
	Hp         string          `json:"hp" gorm:"column:hp;type:varchar(20)"`
	CustClsCd  string          `json:"cust_cls_cd" gorm:"column:cust_cls_cd;type:varchar(20)"`
	CustStatCd string          `json:"cust_stat_cd" gorm:"column:cust_stat_cd;type:varchar(20)"`
	JoinTypCd  string          `json:"join_typ_cd" gorm:"column:join_typ_cd;type:varchar(20)"`
	JoinYmd    *datatypes.Date `json:"join_ymd" gorm:"column:join_ymd"`
}

func (CustomerInfo) TableName() string {
	return "tcus_cust_m"
}
