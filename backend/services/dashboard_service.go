package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trak/backend/models"
)

type DashboardService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db, Now: time.Now}
}

// TotalStudyDays counts the distinct calendar days with at least one
// study session, across all of the user's courses.
func (s *DashboardService) TotalStudyDays(userID uuid.UUID) (int, error) {
	var total int64
	if err := s.DB.Model(&models.StudySession{}).
		Where("user_id = ?", userID).
		Select("COUNT(DISTINCT DATE(date))").
		Scan(&total).Error; err != nil {
		return 0, &StorageError{Err: err}
	}
	return int(total), nil
}

// CurrentStreak walks backward from today (or yesterday, when today has
// nothing logged yet) counting consecutive studied days. Both today and
// yesterday missing means the streak is broken.
func (s *DashboardService) CurrentStreak(userID uuid.UUID) (int, error) {
	var stamps []time.Time
	if err := s.DB.Model(&models.StudySession{}).
		Where("user_id = ?", userID).
		Pluck("date", &stamps).Error; err != nil {
		return 0, &StorageError{Err: err}
	}
	if len(stamps) == 0 {
		return 0, nil
	}

	studied := make(map[string]bool, len(stamps))
	for _, ts := range stamps {
		studied[ts.UTC().Format(dayFormat)] = true
	}

	cursor := s.Now().UTC()
	if !studied[cursor.Format(dayFormat)] {
		cursor = cursor.AddDate(0, 0, -1)
		if !studied[cursor.Format(dayFormat)] {
			return 0, nil
		}
	}

	streak := 0
	for studied[cursor.Format(dayFormat)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak, nil
}

type MostStudied struct {
	Name string `json:"name"`
	Days int    `json:"days"`
}

// MostStudiedCourse returns the user's course with the highest
// total_study_days, or nil when nothing has been studied yet. Ties fall
// to whichever row the datastore returns first.
func (s *DashboardService) MostStudiedCourse(userID uuid.UUID) (*MostStudied, error) {
	var row MostStudied
	res := s.DB.Model(&models.UserCourse{}).
		Select("courses.name AS name, user_courses.total_study_days AS days").
		Joins("JOIN courses ON courses.id = user_courses.course_id").
		Where("user_courses.user_id = ? AND user_courses.total_study_days > 0", userID).
		Order("user_courses.total_study_days DESC").
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, &StorageError{Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

type ChecklistItem struct {
	CourseName    string     `json:"course_name"`
	LastStudiedAt *time.Time `json:"last_studied_at"`
}

// ChecklistItems lists the user's courses with their denormalized
// last-studied timestamp, ordered by course name.
func (s *DashboardService) ChecklistItems(userID uuid.UUID) ([]ChecklistItem, error) {
	items := []ChecklistItem{}
	if err := s.DB.Model(&models.UserCourse{}).
		Select("courses.name AS course_name, user_courses.last_studied_at").
		Joins("JOIN courses ON courses.id = user_courses.course_id").
		Where("user_courses.user_id = ?", userID).
		Order("courses.name").
		Scan(&items).Error; err != nil {
		return nil, &StorageError{Err: err}
	}
	return items, nil
}

type RecentSession struct {
	Date       time.Time `json:"date"`
	CourseName string    `json:"course_name"`
}

// RecentSessions returns the user's most recent study sessions, newest
// first. A non-positive limit falls back to 5.
func (s *DashboardService) RecentSessions(userID uuid.UUID, limit int) ([]RecentSession, error) {
	if limit <= 0 {
		limit = 5
	}
	sessions := []RecentSession{}
	if err := s.DB.Model(&models.StudySession{}).
		Select("study_sessions.date, courses.name AS course_name").
		Joins("JOIN courses ON courses.id = study_sessions.course_id").
		Where("study_sessions.user_id = ?", userID).
		Order("study_sessions.date DESC").
		Limit(limit).
		Scan(&sessions).Error; err != nil {
		return nil, &StorageError{Err: err}
	}
	return sessions, nil
}
