package models

import (
	"time"

	"github.com/retailops/backend/internal/domain/logistics"
)

// LogisticsConfigModel maps the singleton logistics.logistics_config row
type LogisticsConfigModel struct {
	ID                   bool      `gorm:"column:id;primaryKey"`
	WindowDaysShort      int       `gorm:"column:window_days_short"`
	WindowDaysLong       int       `gorm:"column:window_days_long"`
	ForecastWeightShort  float64   `gorm:"column:forecast_weight_short"`
	ForecastWeightLong   float64   `gorm:"column:forecast_weight_long"`
	SafetyStockStatsDays int       `gorm:"column:safety_stock_stats_days"`
	ServiceLevelZ        float64   `gorm:"column:service_level_z"`
	ReorderCoverageDays  int       `gorm:"column:reorder_coverage_days"`
	RiskHorizonDays      int       `gorm:"column:risk_horizon_days"`
	DeadStockWindowDays  int       `gorm:"column:dead_stock_window_days"`
	DeadStockDropMin     float64   `gorm:"column:dead_stock_drop_min"`
	DeadStockDropMax     float64   `gorm:"column:dead_stock_drop_max"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (LogisticsConfigModel) TableName() string {
	return "logistics.logistics_config"
}

// ToDomain converts the model to a domain Config
func (m *LogisticsConfigModel) ToDomain() *logistics.Config {
	return &logistics.Config{
		ID:                   m.ID,
		WindowDaysShort:      m.WindowDaysShort,
		WindowDaysLong:       m.WindowDaysLong,
		ForecastWeightShort:  m.ForecastWeightShort,
		ForecastWeightLong:   m.ForecastWeightLong,
		SafetyStockStatsDays: m.SafetyStockStatsDays,
		ServiceLevelZ:        m.ServiceLevelZ,
		ReorderCoverageDays:  m.ReorderCoverageDays,
		RiskHorizonDays:      m.RiskHorizonDays,
		DeadStockWindowDays:  m.DeadStockWindowDays,
		DeadStockDropMin:     m.DeadStockDropMin,
		DeadStockDropMax:     m.DeadStockDropMax,
		UpdatedAt:            m.UpdatedAt,
	}
}

// PurchaseOrderModel maps logistics.purchase_orders
type PurchaseOrderModel struct {
	ID              int64      `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID       int64      `gorm:"column:product_id;not null"`
	QtyOrdered      int64      `gorm:"column:qty_ordered;not null"`
	ExpectedArrival *time.Time `gorm:"column:expected_arrival;type:date"`
	Status          string     `gorm:"column:status;not null"`
	CreatedAt       time.Time  `gorm:"column:created_at;not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "logistics.purchase_orders"
}

// ToDomain converts the model to a domain PurchaseOrder
func (m *PurchaseOrderModel) ToDomain() *logistics.PurchaseOrder {
	return &logistics.PurchaseOrder{
		ID:              m.ID,
		ProductID:       m.ProductID,
		QtyOrdered:      m.QtyOrdered,
		ExpectedArrival: m.ExpectedArrival,
		Status:          m.Status,
		CreatedAt:       m.CreatedAt,
	}
}

// PurchaseOrderModelFromDomain converts a domain PurchaseOrder to its model
func PurchaseOrderModelFromDomain(po *logistics.PurchaseOrder) *PurchaseOrderModel {
	return &PurchaseOrderModel{
		ID:              po.ID,
		ProductID:       po.ProductID,
		QtyOrdered:      po.QtyOrdered,
		ExpectedArrival: po.ExpectedArrival,
		Status:          po.Status,
		CreatedAt:       po.CreatedAt,
	}
}

// InventoryLevelModel maps logistics.inventory_levels
type InventoryLevelModel struct {
	ProductID     int64      `gorm:"column:product_id;primaryKey"`
	OnHand        int64      `gorm:"column:on_hand"`
	Reserved      int64      `gorm:"column:reserved"`
	InTransit     int64      `gorm:"column:in_transit"`
	LastCountedAt *time.Time `gorm:"column:last_counted_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (InventoryLevelModel) TableName() string {
	return "logistics.inventory_levels"
}

// ToDomain converts the model to a domain InventoryLevel
func (m *InventoryLevelModel) ToDomain() *logistics.InventoryLevel {
	return &logistics.InventoryLevel{
		ProductID:     m.ProductID,
		OnHand:        m.OnHand,
		Reserved:      m.Reserved,
		InTransit:     m.InTransit,
		LastCountedAt: m.LastCountedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// OverrideModel maps logistics.logistic_overrides
type OverrideModel struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID        int64     `gorm:"column:product_id;not null"`
	OverrideRopUnits *int64    `gorm:"column:override_rop_units"`
	OverrideOrderQty *int64    `gorm:"column:override_order_qty"`
	Reason           *string   `gorm:"column:reason"`
	IsActive         bool      `gorm:"column:is_active;not null"`
	CreatedAt        time.Time `gorm:"column:created_at;not null"`
}

// TableName returns the table name for GORM
func (OverrideModel) TableName() string {
	return "logistics.logistic_overrides"
}

// ToDomain converts the model to a domain Override
func (m *OverrideModel) ToDomain() *logistics.Override {
	return &logistics.Override{
		ID:               m.ID,
		ProductID:        m.ProductID,
		OverrideRopUnits: m.OverrideRopUnits,
		OverrideOrderQty: m.OverrideOrderQty,
		Reason:           m.Reason,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
	}
}

// OverrideModelFromDomain converts a domain Override to its model
func OverrideModelFromDomain(o *logistics.Override) *OverrideModel {
	return &OverrideModel{
		ID:               o.ID,
		ProductID:        o.ProductID,
		OverrideRopUnits: o.OverrideRopUnits,
		OverrideOrderQty: o.OverrideOrderQty,
		Reason:           o.Reason,
		IsActive:         o.IsActive,
		CreatedAt:        o.CreatedAt,
	}
}
