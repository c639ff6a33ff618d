package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trak/backend/models"
)

type AnalyticsService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db, Now: time.Now}
}

type CourseStudyDays struct {
	CourseName string `json:"course_name"`
	StudyDays  int    `json:"study_days"`
}

type AnalyticsReport struct {
	CourseStudyData []CourseStudyDays `json:"course_study_data"`
	RangeInDays     int               `json:"range_in_days"`
	StartDate       string            `json:"start_date"`
	EndDate         string            `json:"end_date"`
}

// CourseStudyDays counts, per course, the distinct calendar days the user
// studied within the inclusive range ending today. Courses without a
// session in range are omitted; results are ordered by day count
// descending.
func (s *AnalyticsService) CourseStudyDays(userID uuid.UUID, rangeInDays int) (*AnalyticsReport, error) {
	if rangeInDays < 1 {
		return nil, &ValidationError{Message: "range must be at least one day"}
	}

	endDate := s.Now().UTC()
	startDate := endDate.AddDate(0, 0, -(rangeInDays - 1))

	rows := []CourseStudyDays{}
	if err := s.DB.Model(&models.StudySession{}).
		Select("courses.name AS course_name, COUNT(DISTINCT DATE(study_sessions.date)) AS study_days").
		Joins("JOIN courses ON courses.id = study_sessions.course_id").
		Where("study_sessions.user_id = ?", userID).
		Where("DATE(study_sessions.date) BETWEEN ? AND ?", startDate.Format(dayFormat), endDate.Format(dayFormat)).
		Group("courses.name").
		Order("study_days DESC").
		Scan(&rows).Error; err != nil {
		return nil, &StorageError{Err: err}
	}

	return &AnalyticsReport{
		CourseStudyData: rows,
		RangeInDays:     rangeInDays,
		StartDate:       startDate.Format(dayFormat),
		EndDate:         endDate.Format(dayFormat),
	}, nil
}
