package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/services"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/infrastructure/config"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// Base services
	jwtService   services.InterfaceJWTService
	emailService services.InterfaceEmailService

	// Business services
	adminService        services.InterfaceAdminService
	registrationService services.InterfaceRegistrationService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container. A nil email service
// selects the SMTP implementation when configured, console otherwise.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, email services.InterfaceEmailService) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices(email)
	return container
}

// initializeServices wires up all services
func (c *ServiceContainer) initializeServices(email services.InterfaceEmailService) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)

	if email != nil {
		c.emailService = email
	} else if c.config.MailEnabled() {
		c.emailService = services.NewSMTPEmailService(c.config)
	} else {
		c.emailService = services.NewConsoleEmailService()
	}

	c.adminService = services.NewAdminService(c.db, c.config)
	c.registrationService = services.NewRegistrationService(c.db, c.config, c.emailService)
}

// GetService returns the service registered under name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "email":
		return c.emailService
	case "admin":
		return c.adminService
	case "registration":
		return c.registrationService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
