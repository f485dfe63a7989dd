package logistics

import (
	"time"

	"github.com/retailops/backend/internal/domain/shared"
)

// Product reference errors shared by inventory, overrides and purchase orders
var (
	ErrInvalidProductID = shared.NewValidationError("Invalid productId")
	ErrUnknownProduct   = shared.NewValidationError("Unknown productId")
)

// ErrInventoryNegative is returned when a quantity below zero is supplied
var ErrInventoryNegative = shared.NewValidationError("onHand, reserved and inTransit must be >= 0")

// InventoryLevel is the stock position of one product
type InventoryLevel struct {
	ProductID     int64      `json:"product_id"`
	OnHand        int64      `json:"on_hand"`
	Reserved      int64      `json:"reserved"`
	InTransit     int64      `json:"in_transit"`
	LastCountedAt *time.Time `json:"last_counted_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// InventoryPatch holds the quantities to overwrite; nil keeps the stored value
// (or 0 when the product has no row yet).
type InventoryPatch struct {
	OnHand    *int64
	Reserved  *int64
	InTransit *int64
}

// Validate rejects negative quantities
func (p InventoryPatch) Validate() error {
	for _, v := range []*int64{p.OnHand, p.Reserved, p.InTransit} {
		if v != nil && *v < 0 {
			return ErrInventoryNegative
		}
	}
	return nil
}

// ValidateProductID rejects non-positive product identifiers
func ValidateProductID(id int64) error {
	if id <= 0 {
		return ErrInvalidProductID
	}
	return nil
}
