package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	logisticsapp "github.com/retailops/backend/internal/application/logistics"
	"github.com/retailops/backend/internal/domain/logistics"
	"github.com/retailops/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newInventoryRouter(repo *mockInventoryRepository) *gin.Engine {
	h := NewInventoryHandler(logisticsapp.NewInventoryService(repo))
	r := newTestRouter()
	r.PATCH("/inventory/:productId", h.Update)
	return r
}

func TestInventoryHandler_Update(t *testing.T) {
	t.Run("partial patch", func(t *testing.T) {
		repo := new(mockInventoryRepository)
		repo.On("Upsert", mock.Anything, int64(8), mock.MatchedBy(func(p logistics.InventoryPatch) bool {
			return p.OnHand != nil && *p.OnHand == 15 && p.Reserved == nil && p.InTransit == nil
		})).Return(&logistics.InventoryLevel{ProductID: 8, OnHand: 15, Reserved: 2}, nil)

		w := performRequest(newInventoryRouter(repo), http.MethodPatch, "/inventory/8", `{"onHand":15}`)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, float64(15), body["on_hand"])
		assert.Equal(t, float64(2), body["reserved"])
		repo.AssertExpectations(t)
	})

	t.Run("negative quantity", func(t *testing.T) {
		repo := new(mockInventoryRepository)

		w := performRequest(newInventoryRouter(repo), http.MethodPatch, "/inventory/8", `{"reserved":-1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Code)
		assert.Equal(t, "reserved must be at least 0", resp.Error)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	for _, id := range []string{"abc", "0"} {
		t.Run("invalid product id "+id, func(t *testing.T) {
			repo := new(mockInventoryRepository)

			w := performRequest(newInventoryRouter(repo), http.MethodPatch, "/inventory/"+id, `{"onHand":1}`)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid productId", decodeError(t, w).Error)
		})
	}

	t.Run("unknown product", func(t *testing.T) {
		repo := new(mockInventoryRepository)
		repo.On("Upsert", mock.Anything, int64(404), mock.Anything).Return(nil, logistics.ErrUnknownProduct)

		w := performRequest(newInventoryRouter(repo), http.MethodPatch, "/inventory/404", `{"onHand":1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Unknown productId", decodeError(t, w).Error)
	})
}
