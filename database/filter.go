package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PredicateKind is the comparison applied by a filter clause
type PredicateKind int

const (
	// Exact matches codes and ids: column = value
	Exact PredicateKind = iota
	// Substring matches column LIKE '%value%'. The value is not escaped, so
	// '%' and '_' typed by the user keep their wildcard meaning.
	Substring
	// SetMembership matches column IN (values). An empty list does not constrain.
	SetMembership
)

func (k PredicateKind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Substring:
		return "substring"
	case SetMembership:
		return "set-membership"
	default:
		return "unknown"
	}
}

// Clause is one optional filter on a column. Column names come from the
// repositories, never from request input.
type Clause struct {
	Column string
	Kind   PredicateKind
	Value  string
	Values []string
}

func Eq(column, value string) Clause {
	return Clause{Column: column, Kind: Exact, Value: value}
}

func Contains(column, value string) Clause {
	return Clause{Column: column, Kind: Substring, Value: value}
}

func In(column string, values []string) Clause {
	return Clause{Column: column, Kind: SetMembership, Values: values}
}

// Present reports whether the clause constrains the result. Absent clauses are skipped.
func (c Clause) Present() bool {
	if c.Kind == SetMembership {
		return len(c.Values) > 0
	}
	return c.Value != ""
}

// Expression renders the clause as a gorm condition
func (c Clause) Expression() clause.Expression {
	column := clause.Column{Name: c.Column}
	switch c.Kind {
	case Substring:
		return clause.Like{Column: column, Value: "%" + c.Value + "%"}
	case SetMembership:
		values := make([]any, len(c.Values))
		for i, v := range c.Values {
			values[i] = v
		}
		return clause.IN{Column: column, Values: values}
	default:
		return clause.Eq{Column: column, Value: c.Value}
	}
}

// Filter is the ordered list of clauses a resource recognizes. Present clauses are ANDed.
type Filter []Clause

// Present returns only the clauses that constrain the result
func (f Filter) Present() Filter {
	present := make(Filter, 0, len(f))
	for _, c := range f {
		if c.Present() {
			present = append(present, c)
		}
	}
	return present
}

// Scope applies the present clauses to a query
func (f Filter) Scope(db *gorm.DB) *gorm.DB {
	for _, c := range f.Present() {
		db = db.Where(c.Expression())
	}
	return db
}
