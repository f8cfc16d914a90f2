package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/models"
	"github.com/Sain-orshikh/MAIS-burtgel/pkg/utils"
)

func TestLoginSuccess(t *testing.T) {
	r, db, _ := setupRouter(t)
	require.NoError(t, db.Create(&models.Admin{Username: "admin", Password: "admin123", Email: "admin@example.com"}).Error)

	w := doJSON(r, http.MethodPost, "/api/admin/login", "",
		map[string]string{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])

	admin := body["admin"].(map[string]interface{})
	assert.Equal(t, "admin", admin["username"])
	assert.Equal(t, "admin@example.com", admin["email"])
	assert.NotContains(t, admin, "password")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r, db, _ := setupRouter(t)
	require.NoError(t, db.Create(&models.Admin{Username: "admin", Password: "admin123", Email: "admin@example.com"}).Error)

	wrongPassword := doJSON(r, http.MethodPost, "/api/admin/login", "",
		map[string]string{"username": "admin", "password": "wrong"})
	unknownUser := doJSON(r, http.MethodPost, "/api/admin/login", "",
		map[string]string{"username": "ghost", "password": "admin123"})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
	assert.Equal(t, "Invalid credentials", decodeBody(t, wrongPassword)["error"])
}

func TestLoginValidation(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/admin/login", "", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.ElementsMatch(t, []string{"username", "password"}, fieldNames(t, w))
}

func TestCreateAdminRequiresToken(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/admin/register", "",
		map[string]string{"username": "new", "password": "changeme123", "email": "new@example.com"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Please authenticate.", decodeBody(t, w)["error"])
}

func TestCreateAdminSuccess(t *testing.T) {
	r, db, cfg := setupRouter(t)
	token := adminToken(t, db, cfg)

	w := doJSON(r, http.MethodPost, "/api/admin/register", token,
		map[string]string{"username": "reviewer", "password": "changeme123", "email": "reviewer@example.com"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "Admin created successfully", body["message"])
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "reviewer", body["admin"].(map[string]interface{})["username"])

	// The stored password is hashed, never the plaintext
	var stored models.Admin
	require.NoError(t, db.Where("username = ?", "reviewer").First(&stored).Error)
	assert.True(t, utils.CheckPasswordHash("changeme123", stored.Password))
}

func TestCreateAdminShortPassword(t *testing.T) {
	r, db, cfg := setupRouter(t)
	token := adminToken(t, db, cfg)

	w := doJSON(r, http.MethodPost, "/api/admin/register", token,
		map[string]string{"username": "reviewer", "password": "short", "email": "reviewer@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"password"}, fieldNames(t, w))
}

func TestCreateAdminDuplicate(t *testing.T) {
	r, db, cfg := setupRouter(t)
	token := adminToken(t, db, cfg)

	w := doJSON(r, http.MethodPost, "/api/admin/register", token,
		map[string]string{"username": "admin", "password": "changeme123", "email": "other@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Admin with this username or email already exists", decodeBody(t, w)["error"])
}

func TestProfile(t *testing.T) {
	r, db, cfg := setupRouter(t)
	token := adminToken(t, db, cfg)

	w := doJSON(r, http.MethodGet, "/api/admin/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "admin", body["username"])
	assert.Equal(t, "admin@example.com", body["email"])
	assert.NotContains(t, body, "password")
}

func TestProfileRequiresToken(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/admin/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Server is running", body["message"])
}
