package handler

import (
	"github.com/gin-gonic/gin"
	logisticsapp "github.com/retailops/backend/internal/application/logistics"
	"github.com/retailops/backend/internal/domain/logistics"
)

// InventoryHandler updates stock positions
type InventoryHandler struct {
	BaseHandler
	service *logisticsapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service *logisticsapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// Update handles PATCH /inventory/:productId
func (h *InventoryHandler) Update(c *gin.Context) {
	productID, ok := h.ParseID(c, "productId", logistics.ErrInvalidProductID)
	if !ok {
		return
	}

	var req logisticsapp.UpdateInventoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	level, err := h.service.Update(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, level)
}
