package handlers

import (
	"github.com/gin-gonic/gin"

	"bakhaar/internal/core/apperror"
	"bakhaar/internal/core/id"
	"bakhaar/internal/domain/auth"
	"bakhaar/internal/infrastructure/http/v1/dto"
	"bakhaar/internal/infrastructure/http/v1/middleware"
)

// UsersHandler handles account management endpoints.
type UsersHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(base *BaseHandler, service *auth.Service) *UsersHandler {
	return &UsersHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /users
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = dto.FromUser(&users[i])
	}
	h.OK(c, dto.ListResponse{Items: out, Count: len(out)})
}

// Create handles POST /users
func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, user.ID.String())
}

// Update handles PATCH /users/:id
func (h *UsersHandler) Update(c *gin.Context) {
	userID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid user id"))
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUser(user))
}

// Delete handles DELETE /users/:id
func (h *UsersHandler) Delete(c *gin.Context) {
	userID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid user id"))
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), userID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers account management routes. Listing is open to any
// authenticated user; mutations are gated at the route in addition to the
// capability check inside the service.
func (h *UsersHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)

	manage := middleware.RequireRole(auth.RoleWasiir)
	rg.POST("", manage, h.Create)
	rg.PATCH("/:id", manage, h.Update)
	rg.DELETE("/:id", manage, h.Delete)
}
