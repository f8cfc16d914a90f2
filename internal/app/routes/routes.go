package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/Sain-orshikh/MAIS-burtgel/docs"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/app/controllers"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/app/middleware"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/services/container"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/infrastructure/config"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS middleware, open to any origin like the public intake form expects
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg, nil)
	middleware.InitAuthMiddleware(cfg)

	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded payment confirmation images
	r.Static("/uploads", cfg.UploadDir)

	// Liveness probe outside the /api group for load balancer checks
	r.GET("/health", controllers.HandleHealthFunc(serviceContainer, "ping"))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes reachable without a token
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/status", controllers.HandleHealthFunc(container, "status"))

	// Public application intake, rate limited per client IP
	registrationGroup := api.Group("/registration")
	registrationGroup.Use(middleware.IPRateLimiter(20, 50))
	registrationGroup.POST("/register", controllers.HandleRegistrationFunc(container, "register"))

	api.POST("/admin/login", controllers.HandleAdminFunc(container, "login"))
}

// registerAuthenticatedRoutes registers routes behind admin authentication
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	registrationGroup := auth.Group("/registration")
	registrationGroup.GET("/registrations",
		middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}),
		controllers.HandleRegistrationFunc(container, "getRegistrations"))
	registrationGroup.GET("/registrations/:userId", controllers.HandleRegistrationFunc(container, "getRegistrationByID"))
	registrationGroup.PATCH("/registrations/:userId/status", controllers.HandleRegistrationFunc(container, "updateStatus"))

	adminGroup := auth.Group("/admin")
	adminGroup.POST("/register", controllers.HandleAdminFunc(container, "register"))
	adminGroup.GET("/profile", controllers.HandleAdminFunc(container, "getProfile"))
}
