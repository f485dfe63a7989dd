package logistics

import (
	"time"

	"github.com/retailops/backend/internal/domain/shared"
)

// Override errors
var (
	ErrOverrideProductRequired = shared.NewValidationError("productId is required")
	ErrOverrideInvalidID       = shared.NewValidationError("Invalid id")
	ErrOverrideNotFound        = shared.NewNotFoundError("Override not found")
	ErrOverrideNegative        = shared.NewValidationError("overrideRopUnits and overrideOrderQty must be >= 0")
)

// Override replaces the computed reorder point and/or order quantity of a
// product. At most one override per product is active.
type Override struct {
	ID               int64     `json:"id"`
	ProductID        int64     `json:"product_id"`
	OverrideRopUnits *int64    `json:"override_rop_units"`
	OverrideOrderQty *int64    `json:"override_order_qty"`
	Reason           *string   `json:"reason"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewOverride validates and builds an active override
func NewOverride(productID int64, ropUnits, orderQty *int64, reason *string) (*Override, error) {
	if productID == 0 {
		return nil, ErrOverrideProductRequired
	}
	if productID < 0 {
		return nil, ErrInvalidProductID
	}
	if (ropUnits != nil && *ropUnits < 0) || (orderQty != nil && *orderQty < 0) {
		return nil, ErrOverrideNegative
	}
	return &Override{
		ProductID:        productID,
		OverrideRopUnits: ropUnits,
		OverrideOrderQty: orderQty,
		Reason:           reason,
		IsActive:         true,
	}, nil
}
