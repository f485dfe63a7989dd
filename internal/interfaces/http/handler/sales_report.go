package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	reportapp "github.com/retailops/backend/internal/application/report"
	"github.com/retailops/backend/internal/domain/report"
)

// SalesReportHandler serves the sales report, its CSV export and its facets
type SalesReportHandler struct {
	BaseHandler
	service *reportapp.SalesReportService
}

// NewSalesReportHandler creates a new SalesReportHandler
func NewSalesReportHandler(service *reportapp.SalesReportService) *SalesReportHandler {
	return &SalesReportHandler{service: service}
}

// salesReportParams reads the report query string. filters is accepted both
// as a JSON string (filters={"brand":"x"}) and as a map (filters[brand]=x).
func salesReportParams(c *gin.Context) reportapp.SalesReportParams {
	p := reportapp.SalesReportParams{
		Budget:   c.Query("budget"),
		Sort:     c.Query("sort"),
		Page:     c.Query("page"),
		PageSize: c.Query("pageSize"),
	}
	p.InStockOnly, p.InStockOnlyPresent = c.GetQuery("inStockOnly")

	if raw, ok := c.GetQuery("filters"); ok {
		p.Filters = raw
	} else if m, ok := c.GetQueryMap("filters"); ok {
		p.Filters = m
	}
	return p
}

// Report handles GET /sales/report
func (h *SalesReportHandler) Report(c *gin.Context) {
	q, err := salesReportParams(c).ToQuery()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp, err := h.service.Query(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Export handles GET /sales/report/export
func (h *SalesReportHandler) Export(c *gin.Context) {
	if format := strings.ToLower(strings.TrimSpace(c.Query("format"))); format != "" && format != "csv" {
		h.BadRequest(c, "Only csv export is supported")
		return
	}

	q, err := salesReportParams(c).ToQuery()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	csv, err := h.service.Export(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+report.CSVFilename)
	c.Data(http.StatusOK, report.CSVContentType, []byte(csv))
}

// Filters handles GET /sales/report/filters
func (h *SalesReportHandler) Filters(c *gin.Context) {
	facets, err := h.service.Facets(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, facets)
}
