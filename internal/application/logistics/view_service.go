package logistics

import (
	"context"
	"strings"

	"github.com/retailops/backend/internal/domain/logistics"
)

// ViewService reads the replenishment views
type ViewService struct {
	repo logistics.ViewRepository
}

// NewViewService creates a new ViewService
func NewViewService(repo logistics.ViewRepository) *ViewService {
	return &ViewService{repo: repo}
}

// Daily returns the daily replenishment rows, optionally narrowed to one final status
func (s *ViewService) Daily(ctx context.Context, status string) ([]logistics.ViewRow, error) {
	return nonNilRows(s.repo.Daily(ctx, strings.TrimSpace(status)))
}

// Risk60d returns the 60 day stockout risk rows
func (s *ViewService) Risk60d(ctx context.Context) ([]logistics.ViewRow, error) {
	return nonNilRows(s.repo.Risk60d(ctx))
}

// Reorder returns the reorder recommendations
func (s *ViewService) Reorder(ctx context.Context) ([]logistics.ViewRow, error) {
	return nonNilRows(s.repo.Reorder(ctx))
}

func nonNilRows(rows []logistics.ViewRow, err error) ([]logistics.ViewRow, error) {
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []logistics.ViewRow{}
	}
	return rows, nil
}
