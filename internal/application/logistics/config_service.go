package logistics

import (
	"context"

	"github.com/retailops/backend/internal/domain/logistics"
	"go.uber.org/zap"
)

// ConfigService reads and patches the replenishment tuning record
type ConfigService struct {
	repo   logistics.ConfigRepository
	logger *zap.Logger
}

// NewConfigService creates a new ConfigService
func NewConfigService(repo logistics.ConfigRepository, logger *zap.Logger) *ConfigService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigService{repo: repo, logger: logger}
}

// Get returns the config, creating the default row on first access
func (s *ConfigService) Get(ctx context.Context) (*logistics.Config, error) {
	if err := s.repo.Ensure(ctx); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx)
}

// Update validates body, checks the cross-field rules against the stored
// record, and persists the present fields. Nothing is written on failure.
func (s *ConfigService) Update(ctx context.Context, body map[string]any) (*logistics.Config, error) {
	patch, err := logistics.ParseConfigPatch(body)
	if err != nil {
		return nil, err
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := patch.ValidateAgainst(*current); err != nil {
		return nil, err
	}

	cfg, err := s.repo.Update(ctx, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("logistics config updated", zap.Time("updated_at", cfg.UpdatedAt))
	return cfg, nil
}
