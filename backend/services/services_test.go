package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trak/backend/models"
)

// testNow is the reference "today" used by every clock-sensitive test.
var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.UserCourse{},
		&models.StudySession{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	user := models.User{
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()),
		Username: "testuser",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// createLinkedCourse creates a course plus its UserCourse link, the state
// left behind by course registration.
func createLinkedCourse(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) models.Course {
	t.Helper()

	course := models.Course{Name: name}
	require.NoError(t, db.Create(&course).Error)
	link := models.UserCourse{UserID: userID, CourseID: course.ID}
	require.NoError(t, db.Create(&link).Error)
	return course
}

// addSession inserts a raw study session some days before the reference
// date, bypassing the logging flow.
func addSession(t *testing.T, db *gorm.DB, userID, courseID uuid.UUID, daysAgo int) {
	t.Helper()

	session := models.StudySession{
		UserID:   userID,
		CourseID: courseID,
		Date:     testNow.AddDate(0, 0, -daysAgo),
	}
	require.NoError(t, db.Create(&session).Error)
}
