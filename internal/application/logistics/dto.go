package logistics

import (
	"time"

	"github.com/retailops/backend/internal/domain/logistics"
)

// ============================================================================
// Request DTOs
// ============================================================================

// CreatePurchaseOrderRequest is the body of a purchase order creation.
// Presence and range checks live in the domain so their messages stay stable.
type CreatePurchaseOrderRequest struct {
	ProductID       int64  `json:"productId"`
	QtyOrdered      int64  `json:"qtyOrdered"`
	ExpectedArrival string `json:"expectedArrival"`
}

// UpdateInventoryRequest is the body of an inventory upsert; omitted fields keep their value
type UpdateInventoryRequest struct {
	OnHand    *int64 `json:"onHand" binding:"omitempty,min=0"`
	Reserved  *int64 `json:"reserved" binding:"omitempty,min=0"`
	InTransit *int64 `json:"inTransit" binding:"omitempty,min=0"`
}

// ToPatch converts the request to a domain patch
func (r UpdateInventoryRequest) ToPatch() logistics.InventoryPatch {
	return logistics.InventoryPatch{
		OnHand:    r.OnHand,
		Reserved:  r.Reserved,
		InTransit: r.InTransit,
	}
}

// CreateOverrideRequest is the body of an override creation
type CreateOverrideRequest struct {
	ProductID        int64   `json:"productId"`
	OverrideRopUnits *int64  `json:"overrideRopUnits" binding:"omitempty,min=0"`
	OverrideOrderQty *int64  `json:"overrideOrderQty" binding:"omitempty,min=0"`
	Reason           *string `json:"reason" binding:"omitempty,max=1000"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// PurchaseOrderResponse is the wire form of a purchase order
type PurchaseOrderResponse struct {
	ID              int64     `json:"id"`
	ProductID       int64     `json:"product_id"`
	QtyOrdered      int64     `json:"qty_ordered"`
	ExpectedArrival *string   `json:"expected_arrival"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToPurchaseOrderResponse converts a domain purchase order to its response DTO
func ToPurchaseOrderResponse(po *logistics.PurchaseOrder) PurchaseOrderResponse {
	resp := PurchaseOrderResponse{
		ID:         po.ID,
		ProductID:  po.ProductID,
		QtyOrdered: po.QtyOrdered,
		Status:     po.Status,
		CreatedAt:  po.CreatedAt,
	}
	if po.ExpectedArrival != nil {
		d := po.ExpectedArrival.Format(logistics.DateLayout)
		resp.ExpectedArrival = &d
	}
	return resp
}

// ToPurchaseOrderResponses converts a slice of purchase orders
func ToPurchaseOrderResponses(pos []logistics.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, len(pos))
	for i := range pos {
		responses[i] = ToPurchaseOrderResponse(&pos[i])
	}
	return responses
}
