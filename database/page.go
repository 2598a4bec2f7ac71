package database

import (
	"math"
	"strconv"

	"github.com/rpupo63/cms-admin-backend/errs"
	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is 1-based. Limit has no upper bound.
type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ParsePage coerces the page and limit query parameters. Missing values take the
// defaults; anything that is not a positive integer is rejected.
func ParsePage(page, limit string) (Page, error) {
	p := Page{Page: DefaultPage, Limit: DefaultLimit}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return Page{}, errs.NewInvalidFieldError("page", "must be a positive integer")
		}
		p.Page = n
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			return Page{}, errs.NewInvalidFieldError("limit", "must be a positive integer")
		}
		p.Limit = n
	}

	if p.Page-1 > math.MaxInt/p.Limit {
		return Page{}, errs.NewInvalidFieldError("page", "offset out of range for this limit")
	}

	return p, nil
}

func (p Page) normalized() Page {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// Offset saturates at math.MaxInt instead of wrapping
func (p Page) Offset() int {
	p = p.normalized()
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Scope applies offset and limit to a query
func (p Page) Scope(db *gorm.DB) *gorm.DB {
	p = p.normalized()
	return db.Offset(p.Offset()).Limit(p.Limit)
}

// TotalPages is ceil(total / limit)
func TotalPages(total int64, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
