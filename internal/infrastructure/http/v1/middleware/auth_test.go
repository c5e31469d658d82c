package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bakhaar/internal/core/appctx"
	"bakhaar/internal/core/apperror"
)

// roleRouter mounts a user-management stand-in behind RequireRole. The caller
// role is injected from a header so tests skip token minting.
func roleRouter(required ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())

	users := router.Group("/users")
	users.Use(func(c *gin.Context) {
		if role := c.GetHeader("X-Test-Role"); role != "" {
			ctx := appctx.WithUser(c.Request.Context(), &appctx.UserContext{UserID: "u1", Role: role})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	})
	users.POST("", RequireRole(required...), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": "u2"})
	})

	return router
}

func postAs(router *gin.Engine, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireRole(t *testing.T) {
	router := roleRouter("wasiir")

	tests := []struct {
		name       string
		role       string
		wantStatus int
		wantCode   string
	}{
		{name: "matching role passes", role: "wasiir", wantStatus: http.StatusCreated},
		{name: "other role forbidden", role: "agaasime", wantStatus: http.StatusForbidden, wantCode: apperror.CodeForbidden},
		{name: "storekeeper forbidden", role: "storekeeper", wantStatus: http.StatusForbidden, wantCode: apperror.CodeForbidden},
		{name: "unauthenticated", role: "", wantStatus: http.StatusUnauthorized, wantCode: apperror.CodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postAs(router, tt.role)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Contains(t, w.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestRequireRoleAcceptsAnyListedRole(t *testing.T) {
	router := roleRouter("agaasime", "wasiir")

	assert.Equal(t, http.StatusCreated, postAs(router, "agaasime").Code)
	assert.Equal(t, http.StatusCreated, postAs(router, "wasiir").Code)
	assert.Equal(t, http.StatusForbidden, postAs(router, "storekeeper").Code)
}
