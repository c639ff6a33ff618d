package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserCourses   []UserCourse   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	StudySessions []StudySession `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// UserCourse links a user to a course and carries the derived study
// aggregates. The (user_id, course_id) pair is unique at the database
// level so concurrent logs cannot create a second link.
type UserCourse struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_course" json:"user_id"`
	CourseID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_course" json:"course_id"`
	LastStudiedAt  *time.Time `json:"last_studied_at"`
	TotalStudyDays int        `gorm:"default:0" json:"total_study_days"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (uc *UserCourse) BeforeCreate(tx *gorm.DB) error {
	if uc.ID == uuid.Nil {
		uc.ID = uuid.New()
	}
	return nil
}
