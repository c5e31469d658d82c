package handlers

import (
	"github.com/gin-gonic/gin"

	"bakhaar/internal/domain/inventory"
	"bakhaar/internal/infrastructure/http/v1/dto"
)

// StockHandler handles reconstructed stock and dashboard endpoints.
type StockHandler struct {
	*BaseHandler
	service *inventory.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *inventory.Service) *StockHandler {
	return &StockHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Stock handles GET /stock
func (h *StockHandler) Stock(c *gin.Context) {
	state, err := h.service.Stock(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromStock(state))
}

// Dashboard handles GET /dashboard
func (h *StockHandler) Dashboard(c *gin.Context) {
	summary, err := h.service.Summarize(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, summary)
}

// RegisterRoutes registers stock routes.
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stock", h.Stock)
	rg.GET("/dashboard", h.Dashboard)
}
