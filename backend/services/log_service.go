package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trak/backend/models"
)

// dayFormat is the calendar-day representation used everywhere a
// timestamp is compared by its date portion.
const dayFormat = "2006-01-02"

type LogService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewLogService(db *gorm.DB) *LogService {
	return &LogService{DB: db, Now: time.Now}
}

type LogResult struct {
	LoggedCourses []string `json:"logged_courses"`
}

// LogStudySessions records one study session per course name for today.
// A second log for the same (user, course, day) is a no-op apart from
// bumping the link's last_studied_at. The whole batch commits atomically:
// an unknown course name rolls back every mutation made for the batch.
func (s *LogService) LogStudySessions(userID uuid.UUID, courseNames []string) (*LogResult, error) {
	if len(courseNames) == 0 {
		return nil, &ValidationError{Message: "course_names must not be empty"}
	}

	now := s.Now().UTC()
	today := now.Format(dayFormat)
	result := &LogResult{LoggedCourses: []string{}}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, raw := range courseNames {
			name := strings.TrimSpace(raw)

			var course models.Course
			if err := tx.Where("name = ?", name).First(&course).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Resource: "Course", Name: name}
				}
				return &StorageError{Err: err}
			}

			var link models.UserCourse
			err := tx.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&link).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Self-healing: recreate a missing link rather than fail.
				link = models.UserCourse{UserID: userID, CourseID: course.ID}
				if err := tx.Create(&link).Error; err != nil {
					return &StorageError{Err: err}
				}
			} else if err != nil {
				return &StorageError{Err: err}
			}

			var sameDay int64
			if err := tx.Model(&models.StudySession{}).
				Where("user_id = ? AND course_id = ? AND DATE(date) = ?", userID, course.ID, today).
				Count(&sameDay).Error; err != nil {
				return &StorageError{Err: err}
			}

			if sameDay == 0 {
				session := models.StudySession{UserID: userID, CourseID: course.ID, Date: now}
				if err := tx.Create(&session).Error; err != nil {
					return &StorageError{Err: err}
				}
				link.TotalStudyDays++
				result.LoggedCourses = append(result.LoggedCourses, name)
			}

			// Repeated same-day logs still bump the last-studied timestamp.
			studiedAt := now
			link.LastStudiedAt = &studiedAt
			if err := tx.Save(&link).Error; err != nil {
				return &StorageError{Err: err}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
