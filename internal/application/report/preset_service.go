package report

import (
	"context"

	"github.com/retailops/backend/internal/domain/report"
)

// PresetService manages saved report presets
type PresetService struct {
	repo report.PresetRepository
}

// NewPresetService creates a new PresetService
func NewPresetService(repo report.PresetRepository) *PresetService {
	return &PresetService{repo: repo}
}

// List returns all presets, newest first
func (s *PresetService) List(ctx context.Context) ([]report.Preset, error) {
	presets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if presets == nil {
		presets = []report.Preset{}
	}
	return presets, nil
}

// Create validates and stores a preset. Filters go through the same
// normalization as report requests.
func (s *PresetService) Create(ctx context.Context, req CreatePresetRequest) (*report.Preset, error) {
	filters, err := report.ParseFilters(req.Filters)
	if err != nil {
		return nil, err
	}

	preset, err := report.NewPreset(req.Name, req.Budget, filters)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, preset); err != nil {
		return nil, err
	}
	return preset, nil
}

// Delete removes a preset and returns it
func (s *PresetService) Delete(ctx context.Context, id int64) (*report.Preset, error) {
	if id <= 0 {
		return nil, report.ErrPresetInvalidID
	}
	return s.repo.Delete(ctx, id)
}
