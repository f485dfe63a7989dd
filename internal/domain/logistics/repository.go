package logistics

import "context"

// ViewRow is one row of an externally maintained logistics view, keyed by column name
type ViewRow = map[string]any

// ConfigRepository persists the singleton Config row
type ConfigRepository interface {
	// Ensure creates the singleton row with defaults if it does not exist
	Ensure(ctx context.Context) error
	// Get returns the singleton, or ErrConfigNotFound
	Get(ctx context.Context) (*Config, error)
	// Update overwrites the patch's present fields and refreshes updated_at,
	// returning the merged record or ErrConfigNotFound
	Update(ctx context.Context, patch ConfigPatch) (*Config, error)
}

// PurchaseOrderRepository persists purchase orders
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *PurchaseOrder) error
	// ListRecent returns up to limit orders, newest first
	ListRecent(ctx context.Context, limit int) ([]PurchaseOrder, error)
	// GetByID returns the order or ErrPurchaseOrderNotFound
	GetByID(ctx context.Context, id int64) (*PurchaseOrder, error)
}

// InventoryRepository upserts inventory levels
type InventoryRepository interface {
	Upsert(ctx context.Context, productID int64, patch InventoryPatch) (*InventoryLevel, error)
}

// OverrideRepository persists logistic overrides
type OverrideRepository interface {
	// Replace deactivates the product's active overrides and stores o as the
	// only active one, atomically
	Replace(ctx context.Context, o *Override) error
	// Disable deactivates the override and returns it, or ErrOverrideNotFound
	Disable(ctx context.Context, id int64) (*Override, error)
}

// ViewRepository reads the replenishment views
type ViewRepository interface {
	Daily(ctx context.Context, status string) ([]ViewRow, error)
	Risk60d(ctx context.Context) ([]ViewRow, error)
	Reorder(ctx context.Context) ([]ViewRow, error)
}
