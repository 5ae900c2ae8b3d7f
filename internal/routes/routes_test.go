package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtop_registry/internal/middleware"
	"mtop_registry/internal/models"
	"mtop_registry/internal/routes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRegistryRoutesRequireAuth(t *testing.T) {
	router := routes.SetupRouter()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/categories"},
		{http.MethodPost, "/assets/list"},
		{http.MethodGet, "/operators/statistics"},
		{http.MethodGet, "/dashboard/stats"},
		{http.MethodGet, "/toda/1/operator-stats"},
	}
	for _, route := range protected {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, nil)
		router.ServeHTTP(w, req)
		assert.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestAuthRoutesArePublic(t *testing.T) {
	router := routes.SetupRouter()

	// No token required; an empty body is a validation failure, not a 401.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteRoutesAreAdminOnly(t *testing.T) {
	router := routes.SetupRouter()

	staffToken, err := middleware.GenerateToken(1, models.RoleStaff)
	require.NoError(t, err)

	for _, path := range []string{"/categories/1", "/drivers/1", "/operators/1"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, path, nil)
		req.Header.Set("Authorization", "Bearer "+staffToken)
		router.ServeHTTP(w, req)
		assert.Equalf(t, http.StatusForbidden, w.Code, "DELETE %s", path)
	}
}
