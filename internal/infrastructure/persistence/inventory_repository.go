package persistence

import (
	"context"

	"github.com/retailops/backend/internal/domain/logistics"
	"github.com/retailops/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInventoryRepository implements logistics.InventoryRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Upsert writes the supplied quantities for productID. A new row takes 0 for
// absent quantities; an existing row keeps its stored values for them. Both
// paths stamp last_counted_at and updated_at.
func (r *GormInventoryRepository) Upsert(ctx context.Context, productID int64, patch logistics.InventoryPatch) (*logistics.InventoryLevel, error) {
	var model models.InventoryLevelModel
	result := r.db.WithContext(ctx).Raw(`INSERT INTO logistics.inventory_levels AS il
			(product_id, on_hand, reserved, in_transit, last_counted_at, updated_at)
		VALUES (?, COALESCE(?, 0), COALESCE(?, 0), COALESCE(?, 0), now(), now())
		ON CONFLICT (product_id) DO UPDATE SET
			on_hand = COALESCE(?, il.on_hand),
			reserved = COALESCE(?, il.reserved),
			in_transit = COALESCE(?, il.in_transit),
			last_counted_at = now(),
			updated_at = now()
		RETURNING il.*`,
		productID,
		patch.OnHand, patch.Reserved, patch.InTransit,
		patch.OnHand, patch.Reserved, patch.InTransit,
	).Scan(&model)
	if result.Error != nil {
		return nil, translateProductError(result.Error)
	}
	return model.ToDomain(), nil
}
