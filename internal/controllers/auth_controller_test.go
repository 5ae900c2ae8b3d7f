package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtop_registry/internal/controllers"
	"mtop_registry/internal/models"
)

func authRouter() *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", controllers.RegisterUser)
	r.POST("/auth/login", controllers.LoginUser)
	return r
}

func TestRegisterAndLogin(t *testing.T) {
	db := useTestDB(t)
	router := authRouter()

	w := jsonRequest(t, router, http.MethodPost, "/auth/register", gin.H{
		"name":     "Ana Reyes",
		"email":    "ana@example.com",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, models.RoleStaff, user["role"])
	// The hash never leaves the server.
	assert.NotContains(t, user, "password")

	var stored models.User
	require.NoError(t, db.First(&stored).Error)
	assert.NotEqual(t, "correct horse", stored.Password)

	w = jsonRequest(t, router, http.MethodPost, "/auth/login", gin.H{
		"email":    "ana@example.com",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["token"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	useTestDB(t)
	router := authRouter()

	w := jsonRequest(t, router, http.MethodPost, "/auth/register", gin.H{
		"name":     "Ana Reyes",
		"email":    "ana@example.com",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = jsonRequest(t, router, http.MethodPost, "/auth/login", gin.H{
		"email":    "ana@example.com",
		"password": "wrong horse",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = jsonRequest(t, router, http.MethodPost, "/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "correct horse",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	useTestDB(t)
	router := authRouter()

	payload := gin.H{
		"name":     "Ana Reyes",
		"email":    "ana@example.com",
		"password": "correct horse",
	}
	w := jsonRequest(t, router, http.MethodPost, "/auth/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = jsonRequest(t, router, http.MethodPost, "/auth/register", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decodeBody(t, w)["errors"].(map[string]any)
	assert.Contains(t, errs, "email")
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	useTestDB(t)
	router := authRouter()

	w := jsonRequest(t, router, http.MethodPost, "/auth/register", gin.H{
		"name":     "Ana Reyes",
		"email":    "ana@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decodeBody(t, w)["errors"].(map[string]any)
	assert.Contains(t, errs, "password")
}

func TestRegisterAdminRole(t *testing.T) {
	useTestDB(t)
	router := authRouter()

	w := jsonRequest(t, router, http.MethodPost, "/auth/register", gin.H{
		"name":     "Ben Cruz",
		"email":    "ben@example.com",
		"password": "longenough",
		"role":     models.RoleAdmin,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	user := decodeBody(t, w)["user"].(map[string]any)
	assert.Equal(t, models.RoleAdmin, user["role"])
}
