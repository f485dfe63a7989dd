package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/retailops/backend/internal/application/report"
	"github.com/retailops/backend/internal/domain/report"
)

// ReportPresetHandler manages saved sales report presets
type ReportPresetHandler struct {
	BaseHandler
	service *reportapp.PresetService
}

// NewReportPresetHandler creates a new ReportPresetHandler
func NewReportPresetHandler(service *reportapp.PresetService) *ReportPresetHandler {
	return &ReportPresetHandler{service: service}
}

// List handles GET /sales/report-presets
func (h *ReportPresetHandler) List(c *gin.Context) {
	presets, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, presets)
}

// Create handles POST /sales/report-presets
func (h *ReportPresetHandler) Create(c *gin.Context) {
	var req reportapp.CreatePresetRequest
	if !h.BindJSON(c, &req) {
		return
	}

	preset, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, preset)
}

// Delete handles DELETE /sales/report-presets/:id
func (h *ReportPresetHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id", report.ErrPresetInvalidID)
	if !ok {
		return
	}

	preset, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, preset)
}
