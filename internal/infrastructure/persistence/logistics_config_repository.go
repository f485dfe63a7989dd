package persistence

import (
	"context"

	"github.com/retailops/backend/internal/domain/logistics"
	"github.com/retailops/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// configColumns reads the tuning fractions as float8 whatever their stored numeric scale
const configColumns = `id,
	window_days_short,
	window_days_long,
	forecast_weight_short::float8 AS forecast_weight_short,
	forecast_weight_long::float8 AS forecast_weight_long,
	safety_stock_stats_days,
	service_level_z::float8 AS service_level_z,
	reorder_coverage_days,
	risk_horizon_days,
	dead_stock_window_days,
	dead_stock_drop_min::float8 AS dead_stock_drop_min,
	dead_stock_drop_max::float8 AS dead_stock_drop_max,
	updated_at`

// GormLogisticsConfigRepository implements logistics.ConfigRepository using GORM
type GormLogisticsConfigRepository struct {
	db *gorm.DB
}

// NewGormLogisticsConfigRepository creates a new GormLogisticsConfigRepository
func NewGormLogisticsConfigRepository(db *gorm.DB) *GormLogisticsConfigRepository {
	return &GormLogisticsConfigRepository{db: db}
}

// Ensure inserts the singleton row with column defaults unless it already exists
func (r *GormLogisticsConfigRepository) Ensure(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Exec(`INSERT INTO logistics.logistics_config (id) VALUES (TRUE) ON CONFLICT (id) DO NOTHING`).
		Error
}

// Get loads the singleton row
func (r *GormLogisticsConfigRepository) Get(ctx context.Context) (*logistics.Config, error) {
	var model models.LogisticsConfigModel
	result := r.db.WithContext(ctx).
		Raw(`SELECT ` + configColumns + ` FROM logistics.logistics_config WHERE id = TRUE`).
		Scan(&model)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, logistics.ErrConfigNotFound
	}
	return model.ToDomain(), nil
}

// Update overwrites the patch's present fields in one statement; absent fields
// bind as NULL and COALESCE keeps the stored value.
func (r *GormLogisticsConfigRepository) Update(ctx context.Context, patch logistics.ConfigPatch) (*logistics.Config, error) {
	var model models.LogisticsConfigModel
	result := r.db.WithContext(ctx).Raw(`UPDATE logistics.logistics_config SET
			window_days_short = COALESCE(?, window_days_short),
			window_days_long = COALESCE(?, window_days_long),
			forecast_weight_short = COALESCE(?, forecast_weight_short),
			forecast_weight_long = COALESCE(?, forecast_weight_long),
			safety_stock_stats_days = COALESCE(?, safety_stock_stats_days),
			service_level_z = COALESCE(?, service_level_z),
			reorder_coverage_days = COALESCE(?, reorder_coverage_days),
			risk_horizon_days = COALESCE(?, risk_horizon_days),
			dead_stock_window_days = COALESCE(?, dead_stock_window_days),
			dead_stock_drop_min = COALESCE(?, dead_stock_drop_min),
			dead_stock_drop_max = COALESCE(?, dead_stock_drop_max),
			updated_at = now()
		WHERE id = TRUE
		RETURNING `+configColumns,
		patch.WindowDaysShort,
		patch.WindowDaysLong,
		patch.ForecastWeightShort,
		patch.ForecastWeightLong,
		patch.SafetyStockStatsDays,
		patch.ServiceLevelZ,
		patch.ReorderCoverageDays,
		patch.RiskHorizonDays,
		patch.DeadStockWindowDays,
		patch.DeadStockDropMin,
		patch.DeadStockDropMax,
	).Scan(&model)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, logistics.ErrConfigNotFound
	}
	return model.ToDomain(), nil
}
