package report

import (
	"github.com/retailops/backend/internal/domain/report"
	"github.com/shopspring/decimal"
)

// ============================================================================
// Request DTOs
// ============================================================================

// SalesReportParams carries the raw report query parameters. Filters is
// either a JSON string or an already structured map.
type SalesReportParams struct {
	Budget             string
	Filters            any
	InStockOnly        string
	InStockOnlyPresent bool
	Sort               string
	Page               string
	PageSize           string
}

// ToQuery normalizes the parameters. Only malformed filters JSON is rejected;
// every other parameter falls back to its default.
func (p SalesReportParams) ToQuery() (report.Query, error) {
	filters, err := report.ParseFilters(p.Filters)
	if err != nil {
		return report.Query{}, err
	}
	return report.Query{
		Budget:      report.ParseBudget(p.Budget),
		Filters:     filters,
		InStockOnly: report.ParseBool(p.InStockOnly, p.InStockOnlyPresent, true),
		Sort:        report.ParseSort(p.Sort),
		Page:        report.ParsePage(p.Page, p.PageSize),
	}, nil
}

// CreatePresetRequest is the body of a preset creation
type CreatePresetRequest struct {
	Name    string              `json:"name" binding:"max=255"`
	Budget  decimal.NullDecimal `json:"budget"`
	Filters any                 `json:"filters"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// AppliedFilters echoes the normalized request back to the client
type AppliedFilters struct {
	Budget      decimal.NullDecimal `json:"budget"`
	Filters     report.FilterSet    `json:"filters"`
	InStockOnly bool                `json:"inStockOnly"`
	Sort        report.SortSpec     `json:"sort"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"pageSize"`
}

// SalesReportResponse is one page of the sales report
type SalesReportResponse struct {
	Rows           []report.Row   `json:"rows"`
	Total          int64          `json:"total"`
	AppliedFilters AppliedFilters `json:"appliedFilters"`
}

// ToAppliedFilters converts a normalized query to its echo
func ToAppliedFilters(q report.Query) AppliedFilters {
	return AppliedFilters{
		Budget:      q.Budget,
		Filters:     q.Filters,
		InStockOnly: q.InStockOnly,
		Sort:        q.Sort,
		Page:        q.Page.Page,
		PageSize:    q.Page.PageSize,
	}
}
