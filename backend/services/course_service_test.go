package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trak/backend/models"
)

func TestCreateCoursesLinksUser(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)

	svc := NewCourseService(db)

	created, err := svc.CreateCourses(user.ID, []string{"Math", "History"})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "Math", created[0].Name)
	assert.Equal(t, "History", created[1].Name)

	var links int64
	db.Model(&models.UserCourse{}).Where("user_id = ?", user.ID).Count(&links)
	assert.EqualValues(t, 2, links)
}

func TestCreateCoursesSkipsBlankNames(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)

	svc := NewCourseService(db)

	created, err := svc.CreateCourses(user.ID, []string{"  ", "", "Physics"})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "Physics", created[0].Name)
}

func TestCreateCoursesDuplicateConflict(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	createLinkedCourse(t, db, user.ID, "Physics")

	svc := NewCourseService(db)

	_, err := svc.CreateCourses(user.ID, []string{"Physics"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Physics", conflict.Name)

	// No second link may exist.
	var links int64
	db.Model(&models.UserCourse{}).Where("user_id = ?", user.ID).Count(&links)
	assert.EqualValues(t, 1, links)
}

func TestCreateCoursesConflictRollsBackBatch(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	createLinkedCourse(t, db, user.ID, "Physics")

	svc := NewCourseService(db)

	_, err := svc.CreateCourses(user.ID, []string{"Chemistry", "Physics"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	// Chemistry was created before the conflict but must be rolled back.
	var count int64
	db.Model(&models.Course{}).Where("name = ?", "Chemistry").Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateCoursesSameNameDifferentUsers(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)
	createLinkedCourse(t, db, alice.ID, "Physics")

	svc := NewCourseService(db)

	// The catalog is global but uniqueness is per user, so another user
	// may register the same name.
	created, err := svc.CreateCourses(bob.ID, []string{"Physics"})
	require.NoError(t, err)
	require.Len(t, created, 1)
}

func TestRetrieveUserCoursesScopedAndOrdered(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)
	createLinkedCourse(t, db, alice.ID, "Physics")
	createLinkedCourse(t, db, alice.ID, "Art")
	createLinkedCourse(t, db, bob.ID, "Biology")

	svc := NewCourseService(db)

	courses, err := svc.RetrieveUserCourses(alice.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Art", courses[0].Name)
	assert.Equal(t, "Physics", courses[1].Name)
}
