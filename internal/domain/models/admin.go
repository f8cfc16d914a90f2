package models

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Sain-orshikh/MAIS-burtgel/pkg/utils"
)

// Admin represents an administrator account able to review applications
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeSave is a GORM hook that normalizes the email and hashes the
// password when it is not already a bcrypt hash
func (a *Admin) BeforeSave(tx *gorm.DB) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))

	if a.Password != "" && !strings.HasPrefix(a.Password, "$2") {
		hashedPassword, err := utils.HashPassword(a.Password)
		if err != nil {
			return err
		}
		a.Password = hashedPassword
	}
	return nil
}
