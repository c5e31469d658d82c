package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bakhaar/internal/domain/reports"
	"bakhaar/internal/infrastructure/http/v1/dto"
	"bakhaar/internal/infrastructure/metrics"
)

// ReportsHandler handles filtered report endpoints.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Query handles GET /reports
func (h *ReportsHandler) Query(c *gin.Context) {
	var q dto.ReportQuery
	if !h.BindQuery(c, &q) {
		return
	}

	report, err := h.service.Query(c.Request.Context(), q.ToRequest())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// Export handles GET /reports/export
func (h *ReportsHandler) Export(c *gin.Context) {
	var q dto.ReportQuery
	if !h.BindQuery(c, &q) {
		return
	}

	data, filename, err := h.service.Export(c.Request.Context(), q.ToRequest())
	if err != nil {
		h.Error(c, err)
		return
	}

	metrics.ReportsExported.WithLabelValues(q.Type).Inc()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Query)
	rg.GET("/export", h.Export)
}
