package logistics

import (
	"context"

	"github.com/retailops/backend/internal/domain/logistics"
	"go.uber.org/zap"
)

// PurchaseOrderService creates and lists inbound purchase orders
type PurchaseOrderService struct {
	repo   logistics.PurchaseOrderRepository
	logger *zap.Logger
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(repo logistics.PurchaseOrderRepository, logger *zap.Logger) *PurchaseOrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseOrderService{repo: repo, logger: logger}
}

// Create validates and stores a new ORDERED purchase order
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	po, err := logistics.NewPurchaseOrder(req.ProductID, req.QtyOrdered, req.ExpectedArrival)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, po); err != nil {
		return nil, err
	}

	s.logger.Info("purchase order created",
		zap.Int64("purchase_order_id", po.ID),
		zap.Int64("product_id", po.ProductID),
		zap.Int64("qty_ordered", po.QtyOrdered))

	resp := ToPurchaseOrderResponse(po)
	return &resp, nil
}

// List returns the most recent purchase orders, newest first
func (s *PurchaseOrderService) List(ctx context.Context) ([]PurchaseOrderResponse, error) {
	pos, err := s.repo.ListRecent(ctx, logistics.PurchaseOrderListLimit)
	if err != nil {
		return nil, err
	}
	return ToPurchaseOrderResponses(pos), nil
}

// Get returns one purchase order
func (s *PurchaseOrderService) Get(ctx context.Context, id int64) (*PurchaseOrderResponse, error) {
	if id <= 0 {
		return nil, logistics.ErrPurchaseOrderInvalidID
	}
	po, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToPurchaseOrderResponse(po)
	return &resp, nil
}
