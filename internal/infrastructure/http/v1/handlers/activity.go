package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakhaar/internal/core/apperror"
	"bakhaar/internal/core/id"
	"bakhaar/internal/domain/activity"
	"bakhaar/internal/infrastructure/http/v1/dto"
	"bakhaar/internal/infrastructure/metrics"
)

// ActivityHandler handles movement log endpoints.
type ActivityHandler struct {
	*BaseHandler
	service *activity.Service
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(base *BaseHandler, service *activity.Service) *ActivityHandler {
	return &ActivityHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /activities
func (h *ActivityHandler) List(c *gin.Context) {
	acts, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{Items: dto.FromActivities(acts), Count: len(acts)})
}

// Pending handles GET /activities/pending
func (h *ActivityHandler) Pending(c *gin.Context) {
	acts, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{Items: dto.FromActivities(acts), Count: len(acts)})
}

// Submit handles POST /activities
func (h *ActivityHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SubmitActivityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		h.Error(c, err)
		return
	}

	act, err := h.service.Submit(ctx, draft)
	if err != nil {
		if appErr, ok := apperror.AsAppError(err); ok {
			metrics.MovementsRejected.WithLabelValues(appErr.Code).Inc()
		}
		h.Error(c, err)
		return
	}

	metrics.MovementsSubmitted.WithLabelValues(string(act.Direction), string(act.Status)).Inc()

	response := dto.FromActivity(act)
	h.CompleteIdempotency(c, http.StatusCreated, "application/json", response)
	c.JSON(http.StatusCreated, response)
}

// Approve handles POST /activities/:id/approve
func (h *ActivityHandler) Approve(c *gin.Context) {
	activityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid activity id"))
		return
	}

	act, err := h.service.Approve(c.Request.Context(), activityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	metrics.RequestsDecided.WithLabelValues("approved").Inc()
	h.OK(c, dto.FromActivity(act))
}

// Reject handles POST /activities/:id/reject
func (h *ActivityHandler) Reject(c *gin.Context) {
	activityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid activity id"))
		return
	}

	var req dto.RejectActivityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	act, err := h.service.Reject(c.Request.Context(), activityID, req.Confirm)
	if err != nil {
		h.Error(c, err)
		return
	}

	metrics.RequestsDecided.WithLabelValues("rejected").Inc()
	h.OK(c, dto.FromActivity(act))
}

// RegisterRoutes registers movement log routes.
func (h *ActivityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/pending", h.Pending)
	rg.POST("", h.Submit)
	rg.POST("/:id/approve", h.Approve)
	rg.POST("/:id/reject", h.Reject)
}
