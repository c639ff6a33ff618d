package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudySession is an immutable fact: this user studied this course at
// this timestamp. The logging flow guarantees at most one row per
// (user, course, calendar day); the row itself keeps the full timestamp.
type StudySession struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Date     time.Time `gorm:"not null;index" json:"date"`
}

func (s *StudySession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
