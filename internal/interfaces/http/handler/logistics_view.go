package handler

import (
	"github.com/gin-gonic/gin"
	logisticsapp "github.com/retailops/backend/internal/application/logistics"
)

// LogisticsViewHandler exposes the replenishment views
type LogisticsViewHandler struct {
	BaseHandler
	service *logisticsapp.ViewService
}

// NewLogisticsViewHandler creates a new LogisticsViewHandler
func NewLogisticsViewHandler(service *logisticsapp.ViewService) *LogisticsViewHandler {
	return &LogisticsViewHandler{service: service}
}

// Daily handles GET /logistics/daily
func (h *LogisticsViewHandler) Daily(c *gin.Context) {
	rows, err := h.service.Daily(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// Risk60d handles GET /logistics/risk60d
func (h *LogisticsViewHandler) Risk60d(c *gin.Context) {
	rows, err := h.service.Risk60d(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// Reorder handles GET /logistics/reorder
func (h *LogisticsViewHandler) Reorder(c *gin.Context) {
	rows, err := h.service.Reorder(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}
