package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Query describes one searchable record set: a fixed base predicate, the
// optional filter clauses, and a deterministic order for paging.
type Query struct {
	Base   []clause.Expression
	Filter Filter
	Order  []clause.OrderByColumn
}

func (q Query) scope(db *gorm.DB) *gorm.DB {
	for _, expr := range q.Base {
		db = db.Where(expr)
	}
	return db.Scopes(q.Filter.Scope)
}

// Result is one page of a filtered set. Total counts the whole filtered set.
type Result[T any] struct {
	Rows       []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// Search counts the filtered set and then loads the requested page with the same
// predicates. The two statements run sequentially outside a transaction, so a
// concurrent write can make Total and Rows disagree.
func Search[T any](ctx context.Context, db *gorm.DB, q Query, page Page) (Result[T], error) {
	page = page.normalized()

	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Scopes(q.scope).Count(&total).Error; err != nil {
		return Result[T]{}, err
	}

	rows := []T{}
	tx := db.WithContext(ctx).Model(new(T)).Scopes(q.scope)
	if len(q.Order) > 0 {
		tx = tx.Order(clause.OrderBy{Columns: q.Order})
	}
	if err := tx.Scopes(page.Scope).Find(&rows).Error; err != nil {
		return Result[T]{}, err
	}

	return Result[T]{
		Rows:       rows,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: TotalPages(total, page.Limit),
	}, nil
}

func orderBy(columns ...string) []clause.OrderByColumn {
	order := make([]clause.OrderByColumn, len(columns))
	for i, c := range columns {
		order[i] = clause.OrderByColumn{Column: clause.Column{Name: c}}
	}
	return order
}
