package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/models"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/services"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/services/container"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/error/code"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/error/response"
	"github.com/Sain-orshikh/MAIS-burtgel/pkg/logger"
)

// InterfaceAdminController defines the admin controller surface
type InterfaceAdminController interface {
	Login()
	Register()
	GetProfile()
}

// AdminController handles admin authentication and account requests
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the admin login body
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// CreateAdminRequest is the admin creation body
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required" example:"reviewer"`
	Password string `json:"password" binding:"required,min=8" example:"changeme123"`
	Email    string `json:"email" binding:"required,email" example:"reviewer@example.com"`
}

var loginFieldErrors = map[string]response.FieldError{
	"Username": {Field: "username", Message: "Username is required"},
	"Password": {Field: "password", Message: "Password is required"},
}

var createAdminFieldErrors = map[string]response.FieldError{
	"Username": {Field: "username", Message: "Username is required"},
	"Password": {Field: "password", Message: "Password must be at least 8 characters long"},
	"Email":    {Field: "email", Message: "Valid email is required"},
}

// HandleAdminFunc returns a Gin handler dispatching to the named admin
// controller method
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		case "getProfile":
			controller.GetProfile()
		default:
			response.Error(ctx, code.ErrBind)
		}
	}
}

// 1. Login authenticates an admin and issues a token
// @Summary      Admin login
// @Description  Verifies credentials and returns a signed access token
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /admin/login [post]
func (c *AdminController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		respondFieldErrors(c.Ctx, err, loginFieldErrors)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Error(c.Ctx, code.ErrInvalidCredentials)
			return
		}
		logger.Error("admin login failed: %v", err)
		response.Error(c.Ctx, code.ErrLoginFailed)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(admin.ID)
	if err != nil {
		logger.Error("token generation failed: %v", err)
		response.Error(c.Ctx, code.ErrLoginFailed)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin":   adminPayload(admin),
		"token":   token,
	})
}

// 2. Register creates a new admin account
// @Summary      Create admin
// @Description  Creates a new admin account and returns a token for it
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body CreateAdminRequest true "New admin account"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /admin/register [post]
// @Security     BearerAuth
func (c *AdminController) Register() {
	var req CreateAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		respondFieldErrors(c.Ctx, err, createAdminFieldErrors)
		return
	}

	admin := &models.Admin{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.CreateAdmin(admin); err != nil {
		if errors.Is(err, services.ErrAdminExists) {
			response.Error(c.Ctx, code.ErrAdminAlreadyExist)
			return
		}
		logger.Error("admin creation failed: %v", err)
		response.ErrorWithMessage(c.Ctx, code.ErrDatabase, "Failed to create admin")
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(admin.ID)
	if err != nil {
		logger.Error("token generation failed: %v", err)
		response.ErrorWithMessage(c.Ctx, code.ErrDatabase, "Failed to create admin")
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"message": "Admin created successfully",
		"admin":   adminPayload(admin),
		"token":   token,
	})
}

// 3. GetProfile returns the authenticated admin's account
// @Summary      Admin profile
// @Description  Returns the account of the admin identified by the access token
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  models.Admin
// @Failure      401  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /admin/profile [get]
// @Security     BearerAuth
func (c *AdminController) GetProfile() {
	adminID, exists := c.Ctx.Get("adminID")
	if !exists {
		response.AbortError(c.Ctx, code.ErrTokenInvalid)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(adminID.(uint))
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			response.Error(c.Ctx, code.ErrAdminNotFound)
			return
		}
		logger.Error("fetching admin profile failed: %v", err)
		response.ErrorWithMessage(c.Ctx, code.ErrDatabase, "Failed to fetch profile")
		return
	}

	c.Ctx.JSON(http.StatusOK, admin)
}

// adminPayload shapes the account fields exposed by auth responses
func adminPayload(admin *models.Admin) gin.H {
	return gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"email":    admin.Email,
	}
}

// respondFieldErrors translates binding failures into the per-field
// validation error list
func respondFieldErrors(ctx *gin.Context, err error, messages map[string]response.FieldError) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		response.Error(ctx, code.ErrBind)
		return
	}

	var fieldErrs []response.FieldError
	for _, fe := range verrs {
		if msg, ok := messages[fe.StructField()]; ok {
			fieldErrs = append(fieldErrs, msg)
		}
	}
	response.ValidationError(ctx, fieldErrs)
}
