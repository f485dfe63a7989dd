package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Query is a fully normalized sales report request
type Query struct {
	Budget      decimal.NullDecimal
	Filters     FilterSet
	InStockOnly bool
	Sort        SortSpec
	Page        PageRequest
}

// Source builds the data source for the query
func (q Query) Source() Source {
	return BuildSource(q.Budget, q.Filters, q.InStockOnly)
}

// ParseBudget reads an optional budget ceiling. Missing or non-numeric input means no ceiling.
func ParseBudget(raw string) decimal.NullDecimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// ParseBool reads a query flag: "true", "1" and "yes" (any case) are true,
// any other present value is false, and an absent value yields def.
func ParseBool(raw string, present bool, def bool) bool {
	if !present {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
