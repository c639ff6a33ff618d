package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"not null" json:"username"`
	PasswordHash string    `json:"-"` // empty for Google-auth users
	GoogleID     *string   `gorm:"uniqueIndex" json:"-"`
	AuthProvider string    `gorm:"default:email" json:"auth_provider"` // email, google
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	IsVerified   bool      `gorm:"default:false" json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	UserCourses   []UserCourse   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	StudySessions []StudySession `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
