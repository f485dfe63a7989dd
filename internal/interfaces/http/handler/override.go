package handler

import (
	"github.com/gin-gonic/gin"
	logisticsapp "github.com/retailops/backend/internal/application/logistics"
	"github.com/retailops/backend/internal/domain/logistics"
)

// OverrideHandler manages manual reorder overrides
type OverrideHandler struct {
	BaseHandler
	service *logisticsapp.OverrideService
}

// NewOverrideHandler creates a new OverrideHandler
func NewOverrideHandler(service *logisticsapp.OverrideService) *OverrideHandler {
	return &OverrideHandler{service: service}
}

// Create handles POST /overrides
func (h *OverrideHandler) Create(c *gin.Context) {
	var req logisticsapp.CreateOverrideRequest
	if !h.BindJSON(c, &req) {
		return
	}

	o, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, o)
}

// Disable handles PATCH /overrides/:id/disable
func (h *OverrideHandler) Disable(c *gin.Context) {
	id, ok := h.ParseID(c, "id", logistics.ErrOverrideInvalidID)
	if !ok {
		return
	}

	o, err := h.service.Disable(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, o)
}
