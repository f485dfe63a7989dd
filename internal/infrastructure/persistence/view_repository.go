package persistence

import (
	"context"

	"github.com/retailops/backend/internal/domain/logistics"
	"gorm.io/gorm"
)

// Views provisioned outside this service's migrations
const (
	viewDaily   = "logistics.v_logistics_daily_ext"
	viewRisk60d = "logistics.v_stockout_risk_60d"
	viewReorder = "logistics.v_reorder_recommendations"
)

// GormViewRepository implements logistics.ViewRepository using GORM
type GormViewRepository struct {
	db *gorm.DB
}

// NewGormViewRepository creates a new GormViewRepository
func NewGormViewRepository(db *gorm.DB) *GormViewRepository {
	return &GormViewRepository{db: db}
}

// Daily reads the daily replenishment view, optionally narrowed to one final status
func (r *GormViewRepository) Daily(ctx context.Context, status string) ([]logistics.ViewRow, error) {
	query := r.db.WithContext(ctx).Table(viewDaily)
	if status != "" {
		query = query.Where("final_status = ?", status).Order("rop_units DESC")
	} else {
		query = query.Order("final_status DESC").Order("rop_units DESC")
	}
	return findViewRows(query)
}

// Risk60d reads the 60-day stockout risk view
func (r *GormViewRepository) Risk60d(ctx context.Context) ([]logistics.ViewRow, error) {
	return findViewRows(r.db.WithContext(ctx).
		Table(viewRisk60d).
		Order("at_risk_60d DESC").
		Order("days_until_rop ASC NULLS LAST"))
}

// Reorder reads the reorder recommendation view
func (r *GormViewRepository) Reorder(ctx context.Context) ([]logistics.ViewRow, error) {
	return findViewRows(r.db.WithContext(ctx).
		Table(viewReorder).
		Order("status DESC").
		Order("at_risk_60d DESC").
		Order("recommended_order_qty DESC"))
}

func findViewRows(query *gorm.DB) ([]logistics.ViewRow, error) {
	rows := make([]logistics.ViewRow, 0)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
