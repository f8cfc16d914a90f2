package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Sain-orshikh/MAIS-burtgel/internal/app/middleware"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/models"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/services"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/services/container"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/error/code"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/error/response"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/infrastructure/config"
	"github.com/Sain-orshikh/MAIS-burtgel/pkg/logger"
)

// MaxPaymentFileSize caps the uploaded payment-proof image at 5MB
const MaxPaymentFileSize = 5 << 20

// allowed payment-proof image MIME types
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// InterfaceRegistrationController defines the registration controller surface
type InterfaceRegistrationController interface {
	Register()
	GetRegistrations()
	GetRegistrationByID()
	UpdateStatus()
}

// RegistrationController handles application intake and review requests
type RegistrationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRegistrationController creates a new registration controller
func NewRegistrationController(ctx *gin.Context, container *container.ServiceContainer) *RegistrationController {
	return &RegistrationController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest is the multipart application form. The file part
// (paymentConfirmation) is validated separately.
type RegisterRequest struct {
	Name                       string   `form:"name" binding:"required"`
	Email                      string   `form:"email" binding:"required,email"`
	PhoneNumber                string   `form:"phoneNumber" binding:"required"`
	NationalRegistrationNumber string   `form:"nationalRegistrationNumber" binding:"required"`
	SchoolName                 string   `form:"school[name]" binding:"required"`
	SchoolAverageGrade         *float64 `form:"school[averageGrade]" binding:"required,gte=0,lte=100"`
	Essay                      string   `form:"essay" binding:"required,min=100,max=5000"`
}

// UpdateStatusRequest is the status transition body
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"approved"`
	Reason string `json:"reason" example:"Incomplete payment confirmation"`
}

// registrationFieldErrors maps form struct fields to the public field name
// and validation message of the API contract
var registrationFieldErrors = map[string]response.FieldError{
	"Name":                       {Field: "name", Message: "Name is required"},
	"Email":                      {Field: "email", Message: "Valid email is required"},
	"PhoneNumber":                {Field: "phoneNumber", Message: "Phone number is required"},
	"NationalRegistrationNumber": {Field: "nationalRegistrationNumber", Message: "National registration number is required"},
	"SchoolName":                 {Field: "school[name]", Message: "School name is required"},
	"SchoolAverageGrade":         {Field: "school[averageGrade]", Message: "Average grade must be between 0 and 100"},
	"Essay":                      {Field: "essay", Message: "Essay must be between 100 and 5000 characters"},
}

// HandleRegistrationFunc returns a Gin handler dispatching to the named
// registration controller method
func HandleRegistrationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRegistrationController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "getRegistrations":
			controller.GetRegistrations()
		case "getRegistrationByID":
			controller.GetRegistrationByID()
		case "updateStatus":
			controller.UpdateStatus()
		default:
			response.Error(ctx, code.ErrBind)
		}
	}
}

// 1. Register accepts a public application submission
// @Summary      Submit a registration
// @Description  Accepts the multipart application form with the payment confirmation image and stores it with status pending
// @Tags         Registration
// @Accept       multipart/form-data
// @Produce      json
// @Param        name formData string true "Applicant name"
// @Param        email formData string true "Applicant email"
// @Param        phoneNumber formData string true "Phone number"
// @Param        nationalRegistrationNumber formData string true "National registration number"
// @Param        school[name] formData string true "School name"
// @Param        school[averageGrade] formData number true "Average grade (0-100)"
// @Param        essay formData string true "Essay (100-5000 characters)"
// @Param        paymentConfirmation formData file true "Payment confirmation image (JPEG/PNG/GIF, max 5MB)"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /registration/register [post]
func (c *RegistrationController) Register() {
	var req RegisterRequest
	var fieldErrs []response.FieldError

	if err := c.Ctx.ShouldBind(&req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			response.Error(c.Ctx, code.ErrBind)
			return
		}
		for _, fe := range verrs {
			if msg, ok := registrationFieldErrors[fe.StructField()]; ok {
				fieldErrs = append(fieldErrs, msg)
			}
		}
	}

	file, err := c.Ctx.FormFile("paymentConfirmation")
	if err != nil {
		fieldErrs = append(fieldErrs, response.FieldError{
			Field:   "paymentConfirmation",
			Message: code.GetMessage(code.ErrPaymentFileMissing),
		})
	}

	if len(fieldErrs) > 0 {
		response.ValidationError(c.Ctx, fieldErrs)
		return
	}

	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		response.Error(c.Ctx, code.ErrPaymentFileInvalid)
		return
	}
	if file.Size > MaxPaymentFileSize {
		response.ErrorWithMessage(c.Ctx, code.ErrPaymentFileInvalid, "File too large. Maximum size is 5MB.")
		return
	}

	cfg := c.Container.GetService("config").(*config.Config)
	storedName := paymentFilename(file.Filename)
	storedPath := filepath.Join(cfg.UploadDir, storedName)
	if err := c.Ctx.SaveUploadedFile(file, storedPath); err != nil {
		logger.Error("saving payment confirmation failed: %v", err)
		response.Error(c.Ctx, code.ErrRegistrationFailed)
		return
	}

	reg := &models.Registration{
		Name:                       req.Name,
		Email:                      req.Email,
		PhoneNumber:                req.PhoneNumber,
		NationalRegistrationNumber: req.NationalRegistrationNumber,
		School: models.SchoolInfo{
			Name:         req.SchoolName,
			AverageGrade: *req.SchoolAverageGrade,
		},
		PaymentConfirmation: models.PaymentConfirmation{
			ImageURL:   storedPath,
			UploadedAt: time.Now(),
		},
		Essay: req.Essay,
	}

	regService := c.Container.GetService("registration").(services.InterfaceRegistrationService)
	if err := regService.Create(reg); err != nil {
		if errors.Is(err, services.ErrRegistrationExists) {
			response.Error(c.Ctx, code.ErrRegistrationAlreadyExist)
			return
		}
		logger.Error("registration failed: %v", err)
		response.Error(c.Ctx, code.ErrRegistrationFailed)
		return
	}

	middleware.PurgeCache()

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user": gin.H{
			"id":                 reg.ID,
			"registrationNumber": reg.RegistrationNumber,
			"name":               reg.Name,
			"email":              reg.Email,
			"status":             reg.Status,
		},
	})
}

// 2. GetRegistrations lists all applications without the essay field
// @Summary      List registrations
// @Description  Returns all applications without the essay field, ordered by registration number ascending
// @Tags         Registration
// @Produce      json
// @Success      200  {array}   models.Registration
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /registration/registrations [get]
// @Security     BearerAuth
func (c *RegistrationController) GetRegistrations() {
	regService := c.Container.GetService("registration").(services.InterfaceRegistrationService)
	regs, err := regService.List()
	if err != nil {
		logger.Error("listing registrations failed: %v", err)
		response.ErrorWithMessage(c.Ctx, code.ErrDatabase, "Failed to fetch registrations")
		return
	}

	c.Ctx.JSON(http.StatusOK, regs)
}

// 3. GetRegistrationByID returns one full application
// @Summary      Get a registration
// @Description  Returns the full application record including essay and payment image reference
// @Tags         Registration
// @Produce      json
// @Param        userId path int true "Applicant ID"
// @Success      200  {object}  models.Registration
// @Failure      401  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /registration/registrations/{userId} [get]
// @Security     BearerAuth
func (c *RegistrationController) GetRegistrationByID() {
	id, ok := c.userIDParam()
	if !ok {
		return
	}

	regService := c.Container.GetService("registration").(services.InterfaceRegistrationService)
	reg, err := regService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRegistrationNotFound) {
			response.Error(c.Ctx, code.ErrRegistrationNotFound)
			return
		}
		logger.Error("fetching registration failed: %v", err)
		response.ErrorWithMessage(c.Ctx, code.ErrDatabase, "Failed to fetch registration")
		return
	}

	c.Ctx.JSON(http.StatusOK, reg)
}

// 4. UpdateStatus overwrites an application's review status
// @Summary      Update registration status
// @Description  Sets the application's status and sends the matching notification email
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Param        userId path int true "Applicant ID"
// @Param        request body UpdateStatusRequest true "New status and optional reason"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /registration/registrations/{userId}/status [patch]
// @Security     BearerAuth
func (c *RegistrationController) UpdateStatus() {
	id, ok := c.userIDParam()
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Error(c.Ctx, code.ErrInvalidStatus)
		return
	}

	regService := c.Container.GetService("registration").(services.InterfaceRegistrationService)
	reg, err := regService.UpdateStatus(id, models.Status(req.Status), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			response.Error(c.Ctx, code.ErrInvalidStatus)
		case errors.Is(err, services.ErrRegistrationNotFound):
			response.Error(c.Ctx, code.ErrRegistrationNotFound)
		default:
			logger.Error("status update failed: %v", err)
			response.Error(c.Ctx, code.ErrStatusUpdateFailed)
		}
		return
	}

	middleware.PurgeCache()

	c.Ctx.JSON(http.StatusOK, gin.H{
		"message": "Status updated successfully",
		"user": gin.H{
			"id":                 reg.ID,
			"registrationNumber": reg.RegistrationNumber,
			"name":               reg.Name,
			"email":              reg.Email,
			"status":             reg.Status,
		},
	})
}

// userIDParam parses the :userId path parameter; an unparsable id is
// indistinguishable from an unknown applicant
func (c *RegistrationController) userIDParam() (uint, bool) {
	id, err := strconv.ParseUint(c.Ctx.Param("userId"), 10, 32)
	if err != nil {
		response.Error(c.Ctx, code.ErrRegistrationNotFound)
		return 0, false
	}
	return uint(id), true
}

// paymentFilename builds a unique stored name for an uploaded image
func paymentFilename(original string) string {
	return "paymentConfirmation-" + time.Now().Format("20060102150405") + "-" + uuid.NewString() + filepath.Ext(original)
}
