package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trak/backend/models"
)

type CourseService struct {
	DB *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{DB: db}
}

// CreateCourses creates a course row plus a user link for every non-empty
// trimmed name. Courses live in a global catalog; uniqueness is checked
// per user through the UserCourse link. The batch is atomic: a duplicate
// name rolls back every course created before it.
func (s *CourseService) CreateCourses(userID uuid.UUID, names []string) ([]models.Course, error) {
	created := []models.Course{}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, raw := range names {
			name := strings.TrimSpace(raw)
			if name == "" {
				continue
			}

			var linked int64
			if err := tx.Model(&models.Course{}).
				Joins("JOIN user_courses ON user_courses.course_id = courses.id").
				Where("courses.name = ? AND user_courses.user_id = ?", name, userID).
				Count(&linked).Error; err != nil {
				return &StorageError{Err: err}
			}
			if linked > 0 {
				return &ConflictError{Resource: "Course", Name: name}
			}

			course := models.Course{Name: name}
			if err := tx.Create(&course).Error; err != nil {
				return &StorageError{Err: err}
			}
			link := models.UserCourse{UserID: userID, CourseID: course.ID}
			if err := tx.Create(&link).Error; err != nil {
				return &StorageError{Err: err}
			}
			created = append(created, course)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RetrieveUserCourses lists the courses linked to the user, ordered by name.
func (s *CourseService) RetrieveUserCourses(userID uuid.UUID) ([]models.Course, error) {
	courses := []models.Course{}
	if err := s.DB.
		Joins("JOIN user_courses ON user_courses.course_id = courses.id").
		Where("user_courses.user_id = ?", userID).
		Order("courses.name").
		Find(&courses).Error; err != nil {
		return nil, &StorageError{Err: err}
	}
	return courses, nil
}
