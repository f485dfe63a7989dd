package handler

import (
	"github.com/gin-gonic/gin"
	logisticsapp "github.com/retailops/backend/internal/application/logistics"
)

// LogisticsConfigHandler reads and patches the replenishment settings
type LogisticsConfigHandler struct {
	BaseHandler
	service *logisticsapp.ConfigService
}

// NewLogisticsConfigHandler creates a new LogisticsConfigHandler
func NewLogisticsConfigHandler(service *logisticsapp.ConfigService) *LogisticsConfigHandler {
	return &LogisticsConfigHandler{service: service}
}

// Get handles GET /logistics-config
func (h *LogisticsConfigHandler) Get(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cfg)
}

// Update handles PATCH /logistics-config. The body is kept as a raw object
// so absent, null and mistyped fields can be told apart.
func (h *LogisticsConfigHandler) Update(c *gin.Context) {
	body := map[string]any{}
	if !h.BindJSON(c, &body) {
		return
	}

	cfg, err := h.service.Update(c.Request.Context(), body)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cfg)
}
