package router

import "github.com/retailops/backend/internal/interfaces/http/handler"

// Handlers bundles the API handlers mounted under /api/v1
type Handlers struct {
	SalesReport     *handler.SalesReportHandler
	ReportPreset    *handler.ReportPresetHandler
	LogisticsConfig *handler.LogisticsConfigHandler
	PurchaseOrder   *handler.PurchaseOrderHandler
	Inventory       *handler.InventoryHandler
	Override        *handler.OverrideHandler
	LogisticsView   *handler.LogisticsViewHandler
}

// SalesRoutes builds the sales report domain group
func SalesRoutes(h Handlers) *DomainGroup {
	sales := NewDomainGroup("sales", "/sales")
	sales.GET("/report", h.SalesReport.Report)
	sales.GET("/report/export", h.SalesReport.Export)
	sales.GET("/report/filters", h.SalesReport.Filters)
	sales.GET("/report-presets", h.ReportPreset.List)
	sales.POST("/report-presets", h.ReportPreset.Create)
	sales.DELETE("/report-presets/:id", h.ReportPreset.Delete)
	return sales
}

// LogisticsRoutes builds the replenishment domain group. Its resources sit
// directly under the API root.
func LogisticsRoutes(h Handlers) *DomainGroup {
	logistics := NewDomainGroup("logistics", "")

	logistics.GET("/logistics/daily", h.LogisticsView.Daily)
	logistics.GET("/logistics/risk60d", h.LogisticsView.Risk60d)
	logistics.GET("/logistics/reorder", h.LogisticsView.Reorder)

	logistics.GET("/logistics-config", h.LogisticsConfig.Get)
	logistics.PATCH("/logistics-config", h.LogisticsConfig.Update)

	logistics.PATCH("/inventory/:productId", h.Inventory.Update)

	logistics.POST("/overrides", h.Override.Create)
	logistics.PATCH("/overrides/:id/disable", h.Override.Disable)

	logistics.GET("/purchase-orders", h.PurchaseOrder.List)
	logistics.GET("/purchase-orders/:id", h.PurchaseOrder.GetByID)
	logistics.POST("/purchase-orders", h.PurchaseOrder.Create)
	return logistics
}
