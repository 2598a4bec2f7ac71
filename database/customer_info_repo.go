package database

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/rpupo63/cms-admin-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CustomerInfoQuery is the customer search form. Every field is optional;
// empty strings and empty arrays leave the result unconstrained.
type CustomerInfoQuery struct {
	CustNo          string   `json:"cust_no" validate:"omitempty,number,max=18"`
	CustNm          string   `json:"cust_nm"`
	Eml             string   `json:"eml"`
	Hp              string   `json:"hp"`
	CustClsCd       string   `json:"cust_cls_cd"`
	CustStatCd      string   `json:"cust_stat_cd"`
	JoinTypCd       string   `json:"join_typ_cd"`
	CustClsCdArray  []string `json:"cust_cls_cd_array"`
	CustStatCdArray []string `json:"cust_stat_cd_array"`
	JoinTypCdArray  []string `json:"join_typ_cd_array"`
}

// codeOrCodes is a code field that the dashboard sends either as one value or as a multi-select list
type codeOrCodes struct {
	single string
	list   []string
}

func (c *codeOrCodes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &c.list)
	}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	return json.Unmarshal(data, &c.single)
}

// UnmarshalJSON accepts cust_cls_cd, cust_stat_cd and join_typ_cd as lists; a list
// is merged into the matching *_array field.
func (q *CustomerInfoQuery) UnmarshalJSON(data []byte) error {
	type plain CustomerInfoQuery
	var body struct {
		plain
		CustClsCd  codeOrCodes `json:"cust_cls_cd"`
		CustStatCd codeOrCodes `json:"cust_stat_cd"`
		JoinTypCd  codeOrCodes `json:"join_typ_cd"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	*q = CustomerInfoQuery(body.plain)
	q.CustClsCd = body.CustClsCd.single
	q.CustStatCd = body.CustStatCd.single
	q.JoinTypCd = body.JoinTypCd.single
	q.CustClsCdArray = append(q.CustClsCdArray, body.CustClsCd.list...)
	q.CustStatCdArray = append(q.CustStatCdArray, body.CustStatCd.list...)
	q.JoinTypCdArray = append(q.JoinTypCdArray, body.JoinTypCd.list...)
	return nil
}

func (q CustomerInfoQuery) Filter() Filter {
	return Filter{
		Eq("cust_no", q.CustNo),
		Contains("cust_nm", q.CustNm),
		Contains("eml", q.Eml),
		Contains("hp", q.Hp),
		Eq("cust_cls_cd", q.CustClsCd),
		Eq("cust_stat_cd", q.CustStatCd),
		Eq("join_typ_cd", q.JoinTypCd),
		In("cust_cls_cd", q.CustClsCdArray),
		In("cust_stat_cd", q.CustStatCdArray),
		In("join_typ_cd", q.JoinTypCdArray),
	}
}

type CustomerInfoRepo struct {
	db *gorm.DB
}

func NewCustomerInfoRepo(db *gorm.DB) *CustomerInfoRepo {
	return &CustomerInfoRepo{db}
}

// Search returns one page of customers matching the query, ordered by customer number
func (r *CustomerInfoRepo) Search(ctx context.Context, q CustomerInfoQuery, page Page) (Result[models.CustomerInfo], error) {
	return Search[models.CustomerInfo](ctx, r.db, Query{
		Filter: q.Filter(),
		Order:  orderBy("cust_no"),
	}, page)
}

// FindByNo returns gorm.ErrRecordNotFound when the customer does not exist
func (r *CustomerInfoRepo) FindByNo(ctx context.Context, custNo int64) (*models.CustomerInfo, error) {
	var customer models.CustomerInfo
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "cust_no"}, Value: custNo}).
		Take(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
