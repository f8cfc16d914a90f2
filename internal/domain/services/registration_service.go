package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/models"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/infrastructure/config"
	"github.com/Sain-orshikh/MAIS-burtgel/pkg/logger"
)

var (
	// ErrRegistrationNotFound is returned when no applicant matches the id
	ErrRegistrationNotFound = errors.New("user not found")
	// ErrRegistrationExists is returned when the email or national
	// registration number is already taken
	ErrRegistrationExists = errors.New("user with this email or national registration number already exists")
	// ErrInvalidStatus is returned for a status value outside the known set
	ErrInvalidStatus = errors.New("invalid status value")
)

// InterfaceRegistrationService provides applicant record operations
type InterfaceRegistrationService interface {
	Create(reg *models.Registration) error
	List() ([]models.Registration, error)
	GetByID(id uint) (*models.Registration, error)
	UpdateStatus(id uint, status models.Status, reason string) (*models.Registration, error)
}

// RegistrationService provides applicant record operations
type RegistrationService struct {
	DB     *gorm.DB
	Config *config.Config
	Email  InterfaceEmailService
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(db *gorm.DB, cfg *config.Config, email InterfaceEmailService) *RegistrationService {
	return &RegistrationService{
		DB:     db,
		Config: cfg,
		Email:  email,
	}
}

// Create stores a new application with status pending and the next
// registration number. The uniqueness pre-check is not serialized against
// concurrent inserts; the unique indexes are the final arbiter and a lost
// race surfaces as a database error.
func (s *RegistrationService) Create(reg *models.Registration) error {
	email := strings.ToLower(strings.TrimSpace(reg.Email))

	var count int64
	if err := s.DB.Model(&models.Registration{}).
		Where("email = ? OR national_registration_number = ?", email, reg.NationalRegistrationNumber).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrRegistrationExists
	}

	reg.Status = models.StatusPending

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var maxNumber int
		if err := tx.Model(&models.Registration{}).
			Select("COALESCE(MAX(registration_number), 0)").
			Scan(&maxNumber).Error; err != nil {
			return err
		}
		reg.RegistrationNumber = maxNumber + 1
		return tx.Create(reg).Error
	})
}

// List returns all applications without the essay column, ordered by
// registration number ascending
func (s *RegistrationService) List() ([]models.Registration, error) {
	var regs []models.Registration
	if err := s.DB.Omit("essay").
		Order("registration_number ASC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// GetByID fetches one full application by id
func (s *RegistrationService) GetByID(id uint) (*models.Registration, error) {
	var reg models.Registration
	if err := s.DB.First(&reg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// UpdateStatus overwrites the application's status and fires the matching
// notification email. The overwrite is unconditional: an already-decided
// record can be re-decided. Email failures are logged and swallowed; the
// status change is never rolled back for them.
func (s *RegistrationService) UpdateStatus(id uint, status models.Status, reason string) (*models.Registration, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	reg, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	reg.Status = status
	if err := s.DB.Save(reg).Error; err != nil {
		return nil, err
	}

	switch status {
	case models.StatusApproved:
		if err := s.Email.SendApprovalEmail(reg.Email, reg.Name); err != nil {
			logger.Error("approval email to %s failed: %v", reg.Email, err)
		}
	case models.StatusRejected:
		if err := s.Email.SendRejectionEmail(reg.Email, reg.Name, reason); err != nil {
			logger.Error("rejection email to %s failed: %v", reg.Email, err)
		}
	}

	return reg, nil
}
