package logistics

import (
	"context"
	"testing"

	"github.com/retailops/backend/internal/domain/logistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestInventoryService_Update(t *testing.T) {
	t.Run("upserts the present fields", func(t *testing.T) {
		repo := new(mockInventoryRepository)
		svc := NewInventoryService(repo)

		req := UpdateInventoryRequest{OnHand: int64Ptr(12)}
		repo.On("Upsert", mock.Anything, int64(4), req.ToPatch()).
			Return(&logistics.InventoryLevel{ProductID: 4, OnHand: 12}, nil)

		level, err := svc.Update(context.Background(), 4, req)
		require.NoError(t, err)
		assert.Equal(t, int64(12), level.OnHand)
		repo.AssertExpectations(t)
	})

	t.Run("invalid product id", func(t *testing.T) {
		repo := new(mockInventoryRepository)
		svc := NewInventoryService(repo)

		_, err := svc.Update(context.Background(), 0, UpdateInventoryRequest{})
		assert.Equal(t, logistics.ErrInvalidProductID, err)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("negative quantity", func(t *testing.T) {
		repo := new(mockInventoryRepository)
		svc := NewInventoryService(repo)

		_, err := svc.Update(context.Background(), 4, UpdateInventoryRequest{Reserved: int64Ptr(-1)})
		assert.Equal(t, logistics.ErrInventoryNegative, err)
	})
}
