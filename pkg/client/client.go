// Package client is a Go client for the registration API. It covers the
// public intake endpoint and the authenticated admin endpoints, and ships
// the form wizard and browse helpers used by regctl.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Client calls the registration API
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a client for the API at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Submission is a prepared application form
type Submission struct {
	Name                       string
	Email                      string
	PhoneNumber                string
	NationalRegistrationNumber string
	SchoolName                 string
	SchoolAverageGrade         float64
	Essay                      string
	PaymentImagePath           string
}

// Applicant is an application record as returned by the API
type Applicant struct {
	ID                         uint                `json:"id"`
	RegistrationNumber         int                 `json:"registrationNumber"`
	Name                       string              `json:"name"`
	Email                      string              `json:"email"`
	PhoneNumber                string              `json:"phoneNumber"`
	NationalRegistrationNumber string              `json:"nationalRegistrationNumber"`
	School                     School              `json:"school"`
	PaymentConfirmation        PaymentConfirmation `json:"paymentConfirmation"`
	Essay                      string              `json:"essay,omitempty"`
	Status                     string              `json:"status"`
	CreatedAt                  time.Time           `json:"createdAt"`
	UpdatedAt                  time.Time           `json:"updatedAt"`
}

// School is the applicant's school block
type School struct {
	Name         string  `json:"name"`
	AverageGrade float64 `json:"averageGrade"`
}

// PaymentConfirmation references the uploaded payment image
type PaymentConfirmation struct {
	ImageURL   string    `json:"imageUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// SubmitResult is the summary returned by intake and status endpoints
type SubmitResult struct {
	Message string `json:"message"`
	User    struct {
		ID                 uint   `json:"id"`
		RegistrationNumber int    `json:"registrationNumber"`
		Name               string `json:"name"`
		Email              string `json:"email"`
		Status             string `json:"status"`
	} `json:"user"`
}

// LoginResult is the login response
type LoginResult struct {
	Message string `json:"message"`
	Admin   struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"admin"`
	Token string `json:"token"`
}

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode int
	Message    string           `json:"error"`
	Fields     []FieldViolation `json:"errors"`
}

// FieldViolation is one entry of a validation error response
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Fields[0].Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Login authenticates an admin and stores the returned token on the client
func (c *Client) Login(username, password string) (*LoginResult, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := c.do(http.MethodPost, "/api/admin/login", "application/json", bytes.NewReader(body), &result); err != nil {
		return nil, err
	}

	c.Token = result.Token
	return &result, nil
}

// SubmitRegistration sends a prepared application as multipart form data
func (c *Client) SubmitRegistration(sub *Submission) (*SubmitResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":                       sub.Name,
		"email":                      sub.Email,
		"phoneNumber":                sub.PhoneNumber,
		"nationalRegistrationNumber": sub.NationalRegistrationNumber,
		"school[name]":               sub.SchoolName,
		"school[averageGrade]":       strconv.FormatFloat(sub.SchoolAverageGrade, 'f', -1, 64),
		"essay":                      sub.Essay,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, err
		}
	}

	file, err := os.Open(sub.PaymentImagePath)
	if err != nil {
		return nil, fmt.Errorf("opening payment image: %w", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("paymentConfirmation", filepath.Base(sub.PaymentImagePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	var result SubmitResult
	if err := c.do(http.MethodPost, "/api/registration/register", writer.FormDataContentType(), &buf, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Registrations lists all applications. The essay field is not included.
func (c *Client) Registrations() ([]Applicant, error) {
	var applicants []Applicant
	if err := c.do(http.MethodGet, "/api/registration/registrations", "", nil, &applicants); err != nil {
		return nil, err
	}
	return applicants, nil
}

// Registration fetches one full application by id
func (c *Client) Registration(id uint) (*Applicant, error) {
	var applicant Applicant
	path := fmt.Sprintf("/api/registration/registrations/%d", id)
	if err := c.do(http.MethodGet, path, "", nil, &applicant); err != nil {
		return nil, err
	}
	return &applicant, nil
}

// UpdateStatus sets an application's review status. Reason is optional and
// only included in rejection emails.
func (c *Client) UpdateStatus(id uint, status, reason string) (*SubmitResult, error) {
	payload := map[string]string{"status": status}
	if reason != "" {
		payload["reason"] = reason
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	var result SubmitResult
	path := fmt.Sprintf("/api/registration/registrations/%d/status", id)
	if err := c.do(http.MethodPatch, path, "application/json", bytes.NewReader(body), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do sends one request and decodes the response into out
func (c *Client) do(method, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Error bodies are JSON; keep the status code if they are not
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}
