package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Status is an applicant's review outcome
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValid reports whether s is one of the three known statuses
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// SchoolInfo holds the applicant's school details
type SchoolInfo struct {
	Name         string  `gorm:"column:school_name;type:varchar(255);not null" json:"name"`
	AverageGrade float64 `gorm:"column:school_average_grade;not null" json:"averageGrade"`
}

// PaymentConfirmation references the uploaded payment-proof image
type PaymentConfirmation struct {
	ImageURL   string    `gorm:"column:payment_image_url;type:varchar(255)" json:"imageUrl"`
	UploadedAt time.Time `gorm:"column:payment_uploaded_at" json:"uploadedAt"`
}

// Registration represents a submitted application and its review status.
// Essay is tagged omitempty so that list projections loaded without the
// column serialize without the field.
type Registration struct {
	ID                         uint                `gorm:"primaryKey" json:"id"`
	RegistrationNumber         int                 `gorm:"uniqueIndex;not null" json:"registrationNumber"`
	Name                       string              `gorm:"type:varchar(100);not null" json:"name"`
	Email                      string              `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PhoneNumber                string              `gorm:"type:varchar(30);not null" json:"phoneNumber"`
	NationalRegistrationNumber string              `gorm:"type:varchar(50);uniqueIndex;not null" json:"nationalRegistrationNumber"`
	School                     SchoolInfo          `gorm:"embedded" json:"school"`
	PaymentConfirmation        PaymentConfirmation `gorm:"embedded" json:"paymentConfirmation"`
	Essay                      string              `gorm:"type:text" json:"essay,omitempty"`
	Status                     Status              `gorm:"type:varchar(10);default:pending;index" json:"status"`
	CreatedAt                  time.Time           `json:"createdAt"`
	UpdatedAt                  time.Time           `json:"updatedAt"`
}

// BeforeSave is a GORM hook that normalizes the applicant's email
func (r *Registration) BeforeSave(tx *gorm.DB) error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return nil
}
