package persistence

import (
	"context"
	"errors"

	"github.com/retailops/backend/internal/domain/logistics"
	"github.com/retailops/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPurchaseOrderRepository implements logistics.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// Create inserts the order and refreshes po with the stored row
func (r *GormPurchaseOrderRepository) Create(ctx context.Context, po *logistics.PurchaseOrder) error {
	model := models.PurchaseOrderModelFromDomain(po)
	if err := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(model).Error; err != nil {
		return translateProductError(err)
	}
	*po = *model.ToDomain()
	return nil
}

// ListRecent returns up to limit orders, newest first
func (r *GormPurchaseOrderRepository) ListRecent(ctx context.Context, limit int) ([]logistics.PurchaseOrder, error) {
	var rows []models.PurchaseOrderModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]logistics.PurchaseOrder, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders, nil
}

// GetByID finds an order by its ID
func (r *GormPurchaseOrderRepository) GetByID(ctx context.Context, id int64) (*logistics.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, logistics.ErrPurchaseOrderNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// translateProductError maps a foreign key violation on product_id to
// ErrUnknownProduct. It relies on gorm.Config.TranslateError.
func translateProductError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return logistics.ErrUnknownProduct
	}
	return err
}
