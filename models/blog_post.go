package models

import (
	"strings"
	"time"
)

const (
	FlagYes = "Y"
	FlagNo  = "N"
)

// BlogPost represents a bulletin board post managed from the dashboard
type BlogPost struct {
	BltnNo          string    `json:"bltn_no" gorm:"column:bltn_no;type:varchar(36);primaryKey;not null"`
	CorpCd          string    `json:"corp_cd" gorm:"column:corp_cd;type:varchar(20)"`
	SysClsCd        string    `json:"sys_cls_cd" gorm:"column:sys_cls_cd;type:varchar(20)"`
	BltnClsCd       string    `json:"bltn_cls_cd" gorm:"column:bltn_cls_cd;type:varchar(20)"`
	PstgYn          string    `json:"pstg_yn" validate:"omitempty,oneof=Y N" gorm:"column:pstg_yn;type:varchar(1);not null"`
	AtchFileNo      string    `json:"atch_file_no" gorm:"column:atch_file_no;type:varchar(100)"`
	Titl            string    `json:"titl" validate:"required" gorm:"column:titl;type:text;not null"`
	Contt           string    `json:"contt" validate:"required" gorm:"column:contt;type:text;not null"`
	Tag             string    `json:"tag" gorm:"column:tag;type:text"`
	ThumbnailImgURL string    `json:"thumbnail_img_url" gorm:"column:thumbnail_img_url;type:text"`
	DelYn           string    `json:"del_yn" gorm:"column:del_yn;type:varchar(1);not null"`
	InptDtm         time.Time `json:"inpt_dtm" gorm:"column:inpt_dtm;type:timestamp;not null"`
	InptUsrID       string    `json:"inpt_usr_id" gorm:"column:inpt_usr_id;type:varchar(100)"`
	UpdtDtm         time.Time `json:"updt_dtm" gorm:"column:updt_dtm;type:timestamp;not null"`
	UpdtUsrID       string    `json:"updt_usr_id" gorm:"column:updt_usr_id;type:varchar(100)"`
}

func (BlogPost) TableName() string {
	return "tcus_bltn_m"
}

// Tags splits the comma-joined tag column. Empty segments are dropped, duplicates are kept.
func (p BlogPost) Tags() []string {
	tags := []string{}
	for _, tag := range strings.Split(p.Tag, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (p BlogPost) Published() bool {
	return p.PstgYn == FlagYes
}

// JoinTags is the inverse of Tags
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}
