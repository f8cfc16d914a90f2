package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Sain-orshikh/MAIS-burtgel/internal/app/middleware"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/app/routes"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/models"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/services"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupRouter builds a router over a fresh in-memory database. The
// response cache is global, so it is purged between tests.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.Registration{}))

	cfg := &config.Config{
		JWTSecretKey: "test-secret",
		UploadDir:    t.TempDir(),
		ServerPort:   "5000",
	}

	middleware.PurgeCache()
	return routes.SetupRouter(db, cfg), db, cfg
}

// adminToken seeds an admin account and returns a token for it
func adminToken(t *testing.T, db *gorm.DB, cfg *config.Config) string {
	t.Helper()

	admin := &models.Admin{Username: "admin", Password: "admin123", Email: "admin@example.com"}
	require.NoError(t, db.Create(admin).Error)

	token, err := services.NewJWTService(cfg).GenerateToken(admin.ID)
	require.NoError(t, err)
	return token
}

func validForm(i int) map[string]string {
	return map[string]string{
		"name":                       fmt.Sprintf("Applicant %d", i),
		"email":                      fmt.Sprintf("applicant%d@example.com", i),
		"phoneNumber":                fmt.Sprintf("+9769%07d", i),
		"nationalRegistrationNumber": fmt.Sprintf("MN%08d", i),
		"school[name]":               "International School of Ulaanbaatar",
		"school[averageGrade]":       "85.5",
		"essay":                      strings.Repeat("Education matters. ", 10),
	}
}

// multipartBody builds a registration form body. An empty fileName skips
// the file part.
func multipartBody(t *testing.T, fields map[string]string, fileName, fileType string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}

	if fileName != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="paymentConfirmation"; filename="%s"`, fileName))
		header.Set("Content-Type", fileType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func submitRegistration(t *testing.T, r *gin.Engine, fields map[string]string, fileName, fileType string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, fields, fileName, fileType)
	req := httptest.NewRequest(http.MethodPost, "/api/registration/register", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// fieldNames extracts the field list of a validation error response
func fieldNames(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()

	var body struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	names := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		names = append(names, e.Field)
	}
	return names
}
