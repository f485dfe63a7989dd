package report

import (
	"strings"
	"time"

	"github.com/retailops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Preset error messages
var (
	ErrPresetNameRequired = shared.NewValidationError("name is required")
	ErrPresetInvalidID    = shared.NewValidationError("Invalid id")
	ErrPresetNotFound     = shared.NewNotFoundError("Preset not found")
)

// Preset is a saved report query. Presets are created and deleted, never edited.
type Preset struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	Budget    decimal.NullDecimal `json:"budget"`
	Filters   FilterSet           `json:"filters"`
	CreatedAt time.Time           `json:"created_at"`
}

// NewPreset validates and builds a preset ready to be stored
func NewPreset(name string, budget decimal.NullDecimal, filters FilterSet) (*Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrPresetNameRequired
	}
	return &Preset{
		Name:    name,
		Budget:  budget,
		Filters: filters,
	}, nil
}
