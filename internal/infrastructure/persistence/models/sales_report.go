package models

import (
	"encoding/json"
	"time"

	"github.com/retailops/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ReportRowModel is the scan target for both report sources
type ReportRowModel struct {
	ProductID int64               `gorm:"column:product_id"`
	SKU       string              `gorm:"column:sku"`
	Name      string              `gorm:"column:name"`
	Category  *string             `gorm:"column:category"`
	ListPrice decimal.NullDecimal `gorm:"column:list_price"`
	Currency  *string             `gorm:"column:currency"`
	ImageURL  *string             `gorm:"column:image_url"`
	Available int64               `gorm:"column:available"`
	Score     decimal.NullDecimal `gorm:"column:score"`
}

// ToDomain converts the scanned row to a report Row
func (m *ReportRowModel) ToDomain() report.Row {
	return report.Row{
		ProductID: m.ProductID,
		SKU:       m.SKU,
		Name:      m.Name,
		Category:  m.Category,
		ListPrice: m.ListPrice,
		Currency:  m.Currency,
		ImageURL:  m.ImageURL,
		Available: m.Available,
		Score:     m.Score,
	}
}

// ReportPresetModel maps logistics.sales_report_presets
type ReportPresetModel struct {
	ID        int64               `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string              `gorm:"column:name;not null"`
	Budget    decimal.NullDecimal `gorm:"column:budget;type:numeric(12,2)"`
	Filters   datatypes.JSON      `gorm:"column:filters;type:jsonb;not null"`
	CreatedAt time.Time           `gorm:"column:created_at;not null"`
}

// TableName returns the table name for GORM
func (ReportPresetModel) TableName() string {
	return "logistics.sales_report_presets"
}

// ToDomain converts the model to a domain Preset. Stored filters go through
// the same normalization as request filters.
func (m *ReportPresetModel) ToDomain() (*report.Preset, error) {
	filters, err := report.ParseFilters(string(m.Filters))
	if err != nil {
		return nil, err
	}
	return &report.Preset{
		ID:        m.ID,
		Name:      m.Name,
		Budget:    m.Budget,
		Filters:   filters,
		CreatedAt: m.CreatedAt,
	}, nil
}

// ReportPresetModelFromDomain converts a domain Preset to its model
func ReportPresetModelFromDomain(p *report.Preset) *ReportPresetModel {
	return &ReportPresetModel{
		ID:        p.ID,
		Name:      p.Name,
		Budget:    p.Budget,
		Filters:   datatypes.JSON(json.RawMessage(p.Filters.JSON())),
		CreatedAt: p.CreatedAt,
	}
}
