package database

import (
	"context"
	"time"

	"github.com/rpupo63/cms-admin-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllPolicies is the dashboard's "every policy" selection
const AllPolicies = "ALL"

type AgreementQuery struct {
	CustNm         string `json:"cust_nm"`
	TmcndPlcyClsCd string `json:"tmcnd_plcy_cls_cd"`
	AgreYn         string `json:"agre_yn" validate:"omitempty,oneof=Y N"`
}

func (q AgreementQuery) Filter() Filter {
	policy := q.TmcndPlcyClsCd
	if policy == AllPolicies {
		policy = ""
	}
	return Filter{
		Contains("cust_nm", q.CustNm),
		Eq("tmcnd_plcy_cls_cd", policy),
		Eq("agre_yn", q.AgreYn),
	}
}

// ConsentUpdate toggles the flag of every agreement matching (CustNm, TmcndPlcyClsCd)
type ConsentUpdate struct {
	CustNm         string `json:"cust_nm" validate:"required"`
	TmcndPlcyClsCd string `json:"tmcnd_plcy_cls_cd" validate:"required"`
	AgreYn         *bool  `json:"agre_yn" validate:"required"`
}

type AgreementRepo struct {
	db *gorm.DB
}

func NewAgreementRepo(db *gorm.DB) *AgreementRepo {
	return &AgreementRepo{db}
}

// Search only considers rows that carry a policy code
func (r *AgreementRepo) Search(ctx context.Context, q AgreementQuery, page Page) (Result[models.Agreement], error) {
	return Search[models.Agreement](ctx, r.db, Query{
		Base:   []clause.Expression{clause.Neq{Column: clause.Column{Name: "tmcnd_plcy_cls_cd"}, Value: nil}},
		Filter: q.Filter(),
		Order:  orderBy("agre_no"),
	}, page)
}

// UpdateConsent matches rows by value, not by agre_no, so it may touch zero, one
// or several rows. There is no version check; the last writer wins.
func (r *AgreementRepo) UpdateConsent(ctx context.Context, u ConsentUpdate, updaterID string) (int64, error) {
	updates := map[string]any{
		"agre_yn":  models.AgreementFlag(u.AgreYn != nil && *u.AgreYn),
		"updt_dtm": time.Now(),
	}
	if updaterID != "" {
		updates["updt_usr_id"] = updaterID
	}

	result := r.db.WithContext(ctx).
		Model(&models.Agreement{}).
		Where(clause.Eq{Column: clause.Column{Name: "cust_nm"}, Value: u.CustNm}).
		Where(clause.Eq{Column: clause.Column{Name: "tmcnd_plcy_cls_cd"}, Value: u.TmcndPlcyClsCd}).
		Updates(updates)
	return result.RowsAffected, result.Error
}
