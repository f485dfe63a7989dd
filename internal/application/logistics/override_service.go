package logistics

import (
	"context"

	"github.com/retailops/backend/internal/domain/logistics"
	"go.uber.org/zap"
)

// OverrideService manages manual reorder overrides
type OverrideService struct {
	repo   logistics.OverrideRepository
	logger *zap.Logger
}

// NewOverrideService creates a new OverrideService
func NewOverrideService(repo logistics.OverrideRepository, logger *zap.Logger) *OverrideService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OverrideService{repo: repo, logger: logger}
}

// Create stores a new active override, deactivating the product's previous one
func (s *OverrideService) Create(ctx context.Context, req CreateOverrideRequest) (*logistics.Override, error) {
	o, err := logistics.NewOverride(req.ProductID, req.OverrideRopUnits, req.OverrideOrderQty, req.Reason)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Replace(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("logistic override created",
		zap.Int64("override_id", o.ID),
		zap.Int64("product_id", o.ProductID))
	return o, nil
}

// Disable deactivates an override and returns it
func (s *OverrideService) Disable(ctx context.Context, id int64) (*logistics.Override, error) {
	if id <= 0 {
		return nil, logistics.ErrOverrideInvalidID
	}
	return s.repo.Disable(ctx, id)
}
