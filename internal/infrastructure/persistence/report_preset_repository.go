package persistence

import (
	"context"

	"github.com/retailops/backend/internal/domain/report"
	"github.com/retailops/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReportPresetRepository implements report.PresetRepository using GORM
type GormReportPresetRepository struct {
	db *gorm.DB
}

// NewGormReportPresetRepository creates a new GormReportPresetRepository
func NewGormReportPresetRepository(db *gorm.DB) *GormReportPresetRepository {
	return &GormReportPresetRepository{db: db}
}

// List returns all presets, newest first
func (r *GormReportPresetRepository) List(ctx context.Context) ([]report.Preset, error) {
	var rows []models.ReportPresetModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	presets := make([]report.Preset, 0, len(rows))
	for i := range rows {
		p, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		presets = append(presets, *p)
	}
	return presets, nil
}

// Create inserts the preset and refreshes it with the stored row
func (r *GormReportPresetRepository) Create(ctx context.Context, preset *report.Preset) error {
	model := models.ReportPresetModelFromDomain(preset)
	if err := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(model).Error; err != nil {
		return err
	}
	stored, err := model.ToDomain()
	if err != nil {
		return err
	}
	*preset = *stored
	return nil
}

// Delete removes the preset and returns the deleted row
func (r *GormReportPresetRepository) Delete(ctx context.Context, id int64) (*report.Preset, error) {
	var model models.ReportPresetModel
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&model)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, report.ErrPresetNotFound
	}
	return model.ToDomain()
}
