package logistics

import (
	"time"

	"github.com/retailops/backend/internal/domain/shared"
)

// PurchaseOrderStatusOrdered is the status every new purchase order starts in
const PurchaseOrderStatusOrdered = "ORDERED"

// PurchaseOrderListLimit caps the purchase order listing
const PurchaseOrderListLimit = 200

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// Purchase order errors
var (
	ErrPurchaseOrderRequired     = shared.NewValidationError("productId and qtyOrdered are required")
	ErrPurchaseOrderQtyPositive  = shared.NewValidationError("qtyOrdered must be > 0")
	ErrPurchaseOrderArrivalDate  = shared.NewValidationError("expectedArrival must be a date (YYYY-MM-DD)")
	ErrPurchaseOrderNotFound     = shared.NewNotFoundError("Purchase order not found")
	ErrPurchaseOrderInvalidID    = shared.NewValidationError("Invalid id")
	ErrPurchaseOrderInvalidInput = shared.NewValidationError("Invalid purchase order payload")
)

// PurchaseOrder is an inbound replenishment order. Orders are append-only here.
type PurchaseOrder struct {
	ID              int64
	ProductID       int64
	QtyOrdered      int64
	ExpectedArrival *time.Time
	Status          string
	CreatedAt       time.Time
}

// NewPurchaseOrder validates the request fields and builds an ORDERED order.
// A zero productId or qtyOrdered counts as missing.
func NewPurchaseOrder(productID, qtyOrdered int64, expectedArrival string) (*PurchaseOrder, error) {
	if productID == 0 || qtyOrdered == 0 {
		return nil, ErrPurchaseOrderRequired
	}
	if productID < 0 {
		return nil, ErrInvalidProductID
	}
	if qtyOrdered < 0 {
		return nil, ErrPurchaseOrderQtyPositive
	}

	po := &PurchaseOrder{
		ProductID:  productID,
		QtyOrdered: qtyOrdered,
		Status:     PurchaseOrderStatusOrdered,
	}
	if expectedArrival != "" {
		d, err := time.Parse(DateLayout, expectedArrival)
		if err != nil {
			return nil, ErrPurchaseOrderArrivalDate
		}
		po.ExpectedArrival = &d
	}
	return po, nil
}
