package logistics

import (
	"math"
	"time"

	"github.com/retailops/backend/internal/domain/shared"
)

// ForecastWeightTolerance is the allowed drift of forecastWeightShort+forecastWeightLong from 1
const ForecastWeightTolerance = 0.001

// Config errors
var (
	ErrConfigNotFound      = shared.NewNotFoundError("Config not found")
	ErrConfigEmptyPatch    = shared.NewValidationError("At least one field is required")
	ErrForecastWeightsSum  = shared.NewValidationError("Forecast weights must sum to 1")
	ErrDeadStockDropBounds = shared.NewValidationError("deadStockDropMin must be <= deadStockDropMax")
)

// Config is the singleton tuning record for replenishment calculations
type Config struct {
	ID                   bool      `json:"id"`
	WindowDaysShort      int       `json:"window_days_short"`
	WindowDaysLong       int       `json:"window_days_long"`
	ForecastWeightShort  float64   `json:"forecast_weight_short"`
	ForecastWeightLong   float64   `json:"forecast_weight_long"`
	SafetyStockStatsDays int       `json:"safety_stock_stats_days"`
	ServiceLevelZ        float64   `json:"service_level_z"`
	ReorderCoverageDays  int       `json:"reorder_coverage_days"`
	RiskHorizonDays      int       `json:"risk_horizon_days"`
	DeadStockWindowDays  int       `json:"dead_stock_window_days"`
	DeadStockDropMin     float64   `json:"dead_stock_drop_min"`
	DeadStockDropMax     float64   `json:"dead_stock_drop_max"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ConfigPatch carries the fields a client asked to change; nil means unchanged
type ConfigPatch struct {
	WindowDaysShort      *int
	WindowDaysLong       *int
	ForecastWeightShort  *float64
	ForecastWeightLong   *float64
	SafetyStockStatsDays *int
	ServiceLevelZ        *float64
	ReorderCoverageDays  *int
	RiskHorizonDays      *int
	DeadStockWindowDays  *int
	DeadStockDropMin     *float64
	DeadStockDropMax     *float64
}

// Apply returns current with the patch's present fields overlaid
func (p ConfigPatch) Apply(current Config) Config {
	merged := current
	overlayInt(&merged.WindowDaysShort, p.WindowDaysShort)
	overlayInt(&merged.WindowDaysLong, p.WindowDaysLong)
	overlayFloat(&merged.ForecastWeightShort, p.ForecastWeightShort)
	overlayFloat(&merged.ForecastWeightLong, p.ForecastWeightLong)
	overlayInt(&merged.SafetyStockStatsDays, p.SafetyStockStatsDays)
	overlayFloat(&merged.ServiceLevelZ, p.ServiceLevelZ)
	overlayInt(&merged.ReorderCoverageDays, p.ReorderCoverageDays)
	overlayInt(&merged.RiskHorizonDays, p.RiskHorizonDays)
	overlayInt(&merged.DeadStockWindowDays, p.DeadStockWindowDays)
	overlayFloat(&merged.DeadStockDropMin, p.DeadStockDropMin)
	overlayFloat(&merged.DeadStockDropMax, p.DeadStockDropMax)
	return merged
}

func overlayInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func overlayFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// ValidateAgainst checks the cross-field invariants on the effective values:
// the patch's value where present, otherwise the persisted one.
func (p ConfigPatch) ValidateAgainst(current Config) error {
	effective := p.Apply(current)
	if effective.DeadStockDropMin > effective.DeadStockDropMax {
		return ErrDeadStockDropBounds
	}
	if math.Abs(effective.ForecastWeightShort+effective.ForecastWeightLong-1) > ForecastWeightTolerance {
		return ErrForecastWeightsSum
	}
	return nil
}
