package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/services/container"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/error/code"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/error/response"
)

// HealthController answers liveness probes
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a Gin handler dispatching to the named health
// controller method
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.Error(ctx, code.ErrBind)
		}
	}
}

// Ping reports that the HTTP server is up
// @Summary      Health check
// @Description  Reports that the server is accepting requests
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (c *HealthController) Ping() {
	c.Ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Server is running",
	})
}

// Status additionally verifies database connectivity
// @Summary      Service status
// @Description  Reports server and database health
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /status [get]
func (c *HealthController) Status() {
	sqlDB, err := c.Container.GetDB().DB()
	if err != nil {
		response.ErrorWithMessage(c.Ctx, code.ErrDatabase, "Database unreachable")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		response.ErrorWithMessage(c.Ctx, code.ErrDatabase, "Database unreachable")
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "Server is running",
		"database": "ok",
	})
}
