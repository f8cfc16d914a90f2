package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/models"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/infrastructure/config"
	"github.com/Sain-orshikh/MAIS-burtgel/pkg/utils"
)

var (
	// ErrAdminNotFound is returned when no admin matches the id
	ErrAdminNotFound = errors.New("admin not found")
	// ErrAdminExists is returned when the username or email is taken
	ErrAdminExists = errors.New("admin with this username or email already exists")
	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so the response never reveals which factor failed
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// InterfaceAdminService provides administrator account operations
type InterfaceAdminService interface {
	CreateAdmin(admin *models.Admin) error
	Authenticate(username, password string) (*models.Admin, error)
	GetAdminByID(id uint) (*models.Admin, error)
	Count() (int64, error)
}

// AdminService provides administrator account operations
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(db *gorm.DB, cfg *config.Config) *AdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// CreateAdmin stores a new administrator. The username or email being
// taken yields ErrAdminExists; the BeforeSave hook hashes the password.
func (s *AdminService) CreateAdmin(admin *models.Admin) error {
	email := strings.ToLower(strings.TrimSpace(admin.Email))

	var count int64
	if err := s.DB.Model(&models.Admin{}).
		Where("username = ? OR email = ?", admin.Username, email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAdminExists
	}

	return s.DB.Create(admin).Error
}

// Authenticate verifies the username/password pair. The username lookup is
// case-sensitive; both failure factors map to ErrInvalidCredentials.
func (s *AdminService) Authenticate(username, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}

	return &admin, nil
}

// GetAdminByID fetches one administrator by id
func (s *AdminService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// Count returns the number of administrator accounts
func (s *AdminService) Count() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Admin{}).Count(&count).Error
	return count, err
}
