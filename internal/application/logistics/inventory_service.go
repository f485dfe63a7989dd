package logistics

import (
	"context"

	"github.com/retailops/backend/internal/domain/logistics"
)

// InventoryService maintains stock positions
type InventoryService struct {
	repo logistics.InventoryRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(repo logistics.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// Update creates or patches the inventory level of a product
func (s *InventoryService) Update(ctx context.Context, productID int64, req UpdateInventoryRequest) (*logistics.InventoryLevel, error) {
	if err := logistics.ValidateProductID(productID); err != nil {
		return nil, err
	}
	patch := req.ToPatch()
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, productID, patch)
}
