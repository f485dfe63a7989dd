package persistence

import (
	"context"

	"github.com/retailops/backend/internal/domain/logistics"
	"github.com/retailops/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOverrideRepository implements logistics.OverrideRepository using GORM
type GormOverrideRepository struct {
	db *gorm.DB
}

// NewGormOverrideRepository creates a new GormOverrideRepository
func NewGormOverrideRepository(db *gorm.DB) *GormOverrideRepository {
	return &GormOverrideRepository{db: db}
}

// Replace deactivates the product's active overrides and inserts o in one
// transaction. The partial unique index on active rows rejects a concurrent
// second active override.
func (r *GormOverrideRepository) Replace(ctx context.Context, o *logistics.Override) error {
	model := models.OverrideModelFromDomain(o)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.OverrideModel{}).
			Where("product_id = ? AND is_active", o.ProductID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.Returning{}).Create(model).Error
	})
	if err != nil {
		return translateProductError(err)
	}
	*o = *model.ToDomain()
	return nil
}

// Disable deactivates the override and returns the updated row
func (r *GormOverrideRepository) Disable(ctx context.Context, id int64) (*logistics.Override, error) {
	var model models.OverrideModel
	result := r.db.WithContext(ctx).
		Model(&model).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, logistics.ErrOverrideNotFound
	}
	return model.ToDomain(), nil
}
