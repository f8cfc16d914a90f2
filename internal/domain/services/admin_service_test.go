package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/models"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/infrastructure/config"
)

func newTestAdminService(t *testing.T) *AdminService {
	t.Helper()
	return NewAdminService(newTestDB(t), &config.Config{})
}

func TestCreateAdminHashesPassword(t *testing.T) {
	svc := newTestAdminService(t)

	admin := &models.Admin{Username: "admin", Password: "admin123", Email: "admin@example.com"}
	require.NoError(t, svc.CreateAdmin(admin))

	stored, err := svc.GetAdminByID(admin.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", stored.Password)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))
}

func TestCreateAdminLowercasesEmail(t *testing.T) {
	svc := newTestAdminService(t)

	admin := &models.Admin{Username: "admin", Password: "admin123", Email: "Admin@Example.COM"}
	require.NoError(t, svc.CreateAdmin(admin))

	stored, err := svc.GetAdminByID(admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", stored.Email)
}

func TestCreateAdminRejectsDuplicateUsername(t *testing.T) {
	svc := newTestAdminService(t)
	require.NoError(t, svc.CreateAdmin(&models.Admin{Username: "admin", Password: "admin123", Email: "a@example.com"}))

	err := svc.CreateAdmin(&models.Admin{Username: "admin", Password: "other456", Email: "b@example.com"})
	assert.ErrorIs(t, err, ErrAdminExists)
}

func TestCreateAdminRejectsDuplicateEmail(t *testing.T) {
	svc := newTestAdminService(t)
	require.NoError(t, svc.CreateAdmin(&models.Admin{Username: "admin", Password: "admin123", Email: "a@example.com"}))

	err := svc.CreateAdmin(&models.Admin{Username: "other", Password: "other456", Email: "A@example.com"})
	assert.ErrorIs(t, err, ErrAdminExists)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestAdminService(t)
	require.NoError(t, svc.CreateAdmin(&models.Admin{Username: "admin", Password: "admin123", Email: "a@example.com"}))

	admin, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := newTestAdminService(t)
	require.NoError(t, svc.CreateAdmin(&models.Admin{Username: "admin", Password: "admin123", Email: "a@example.com"}))

	_, err := svc.Authenticate("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUsername(t *testing.T) {
	svc := newTestAdminService(t)

	_, err := svc.Authenticate("ghost", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCount(t *testing.T) {
	svc := newTestAdminService(t)

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, svc.CreateAdmin(&models.Admin{Username: "admin", Password: "admin123", Email: "a@example.com"}))

	count, err = svc.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
