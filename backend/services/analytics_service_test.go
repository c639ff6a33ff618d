package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseStudyDaysAggregatesRange(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	math := createLinkedCourse(t, db, user.ID, "Math")
	history := createLinkedCourse(t, db, user.ID, "History")
	old := createLinkedCourse(t, db, user.ID, "Latin")

	// Math on three distinct days in range, History on one.
	addSession(t, db, user.ID, math.ID, 0)
	addSession(t, db, user.ID, math.ID, 1)
	addSession(t, db, user.ID, math.ID, 3)
	addSession(t, db, user.ID, history.ID, 2)
	// A course studied only outside the range is omitted entirely.
	addSession(t, db, user.ID, old.ID, 10)

	svc := &AnalyticsService{DB: db, Now: fixedClock}

	report, err := svc.CourseStudyDays(user.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, report.RangeInDays)
	assert.Equal(t, testNow.Format(dayFormat), report.EndDate)
	assert.Equal(t, testNow.AddDate(0, 0, -6).Format(dayFormat), report.StartDate)

	require.Len(t, report.CourseStudyData, 2)
	assert.Equal(t, "Math", report.CourseStudyData[0].CourseName)
	assert.Equal(t, 3, report.CourseStudyData[0].StudyDays)
	assert.Equal(t, "History", report.CourseStudyData[1].CourseName)
	assert.Equal(t, 1, report.CourseStudyData[1].StudyDays)
}

func TestCourseStudyDaysCountsDistinctDaysNotSessions(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	math := createLinkedCourse(t, db, user.ID, "Math")

	// Two sessions on the same calendar day count once.
	addSession(t, db, user.ID, math.ID, 0)
	addSession(t, db, user.ID, math.ID, 0)

	svc := &AnalyticsService{DB: db, Now: fixedClock}

	report, err := svc.CourseStudyDays(user.ID, 7)
	require.NoError(t, err)
	require.Len(t, report.CourseStudyData, 1)
	assert.Equal(t, 1, report.CourseStudyData[0].StudyDays)
}

func TestCourseStudyDaysRangeBoundaryInclusive(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	math := createLinkedCourse(t, db, user.ID, "Math")

	// Exactly on the start of a 7-day range (today minus 6) is included;
	// one day earlier is not.
	addSession(t, db, user.ID, math.ID, 6)
	addSession(t, db, user.ID, math.ID, 7)

	svc := &AnalyticsService{DB: db, Now: fixedClock}

	report, err := svc.CourseStudyDays(user.ID, 7)
	require.NoError(t, err)
	require.Len(t, report.CourseStudyData, 1)
	assert.Equal(t, 1, report.CourseStudyData[0].StudyDays)
}

func TestCourseStudyDaysRejectsBadRange(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)

	svc := &AnalyticsService{DB: db, Now: fixedClock}

	_, err := svc.CourseStudyDays(user.ID, 0)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCourseStudyDaysEmpty(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)

	svc := &AnalyticsService{DB: db, Now: fixedClock}

	report, err := svc.CourseStudyDays(user.ID, 30)
	require.NoError(t, err)
	assert.Empty(t, report.CourseStudyData)
}
