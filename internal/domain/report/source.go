package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Strategy identifies how a Source reaches report rows
type Strategy string

const (
	// StrategyAggregated delegates filtering to the stored in-stock aggregation
	StrategyAggregated Strategy = "aggregated"
	// StrategyCatalogJoin filters the active catalog joined with recommendation scores
	StrategyCatalogJoin Strategy = "catalogJoin"
)

// Source is a report data source: a relation aliased as r exposing the
// Columns row shape, plus the positional parameters its placeholders bind to.
// A Source is immutable and is shared unchanged by the count, page and export queries.
type Source interface {
	Strategy() Strategy
	// Relation is the FROM target, e.g. "logistics.fn_sales_report(?::numeric, ?::jsonb) AS r"
	Relation() string
	// Args returns a copy of the parameters in placeholder order
	Args() []any
}

// BuildSource selects the data source for one report request
func BuildSource(budget decimal.NullDecimal, filters FilterSet, inStockOnly bool) Source {
	if inStockOnly {
		return newAggregatedSource(budget, filters)
	}
	return newCatalogJoinSource(budget, filters)
}

type aggregatedSource struct {
	args []any
}

func newAggregatedSource(budget decimal.NullDecimal, filters FilterSet) *aggregatedSource {
	return &aggregatedSource{args: []any{budget, filters.JSON()}}
}

func (s *aggregatedSource) Strategy() Strategy { return StrategyAggregated }

func (s *aggregatedSource) Relation() string {
	return "logistics.fn_sales_report(?::numeric, ?::jsonb) AS r"
}

func (s *aggregatedSource) Args() []any { return append([]any(nil), s.args...) }

type catalogJoinSource struct {
	relation string
	args     []any
}

// predicateBuilder contributes one optional condition. ok=false omits it.
type predicateBuilder func(budget decimal.NullDecimal, filters FilterSet) (clause string, args []any, ok bool)

// catalogPredicates are folded in this order after the active-product base condition
var catalogPredicates = []predicateBuilder{
	budgetPredicate,
	filterPredicate(FilterCategory, "(p.category = ? OR p.attributes ->> 'category' = ?)"),
	filterPredicate(FilterBrand, "p.attributes ->> 'brand' = ?"),
	filterPredicate(FilterGender, "p.attributes ->> 'gender' = ?"),
	filterPredicate(FilterMaterial, "p.attributes ->> 'material' = ?"),
	filterPredicate(FilterIsGold, "p.attributes ->> 'is_gold' = ?"),
}

func budgetPredicate(budget decimal.NullDecimal, _ FilterSet) (string, []any, bool) {
	if !budget.Valid {
		return "", nil, false
	}
	return "p.list_price IS NOT NULL AND p.list_price <= ?", []any{budget.Decimal}, true
}

// filterPredicate binds the filter value once per placeholder in clause
func filterPredicate(key FilterKey, clause string) predicateBuilder {
	n := strings.Count(clause, "?")
	return func(_ decimal.NullDecimal, filters FilterSet) (string, []any, bool) {
		value := filters.Get(key)
		if value == "" {
			return "", nil, false
		}
		args := make([]any, n)
		for i := range args {
			args[i] = value
		}
		return clause, args, true
	}
}

const catalogJoinSelect = `SELECT
		p.id AS product_id,
		p.sku,
		p.name,
		p.category,
		p.list_price,
		p.currency,
		p.image_url,
		s.available,
		s.recommendation_score AS score
	FROM logistics.products p
	JOIN logistics.v_sales_recommendation_score s ON s.product_id = p.id
	WHERE `

func newCatalogJoinSource(budget decimal.NullDecimal, filters FilterSet) *catalogJoinSource {
	conditions := []string{"p.is_active = TRUE"}
	var args []any
	for _, build := range catalogPredicates {
		clause, clauseArgs, ok := build(budget, filters)
		if !ok {
			continue
		}
		conditions = append(conditions, clause)
		args = append(args, clauseArgs...)
	}

	var b strings.Builder
	b.WriteString("(")
	b.WriteString(catalogJoinSelect)
	b.WriteString(strings.Join(conditions, " AND "))
	b.WriteString(") AS r")

	return &catalogJoinSource{relation: b.String(), args: args}
}

func (s *catalogJoinSource) Strategy() Strategy { return StrategyCatalogJoin }

func (s *catalogJoinSource) Relation() string { return s.relation }

func (s *catalogJoinSource) Args() []any { return append([]any(nil), s.args...) }
