package certificates

import (
	"internhub/models"
	internshipModels "internhub/models/internship"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&internshipModels.Certificate{}))
	return db
}

func TestIssueForInternship(t *testing.T) {
	db := newTestDB(t)

	marks := 42
	grade := "A"
	certificate, err := IssueForInternship(db, 7, "Asha", 3, "Backend Internship", &marks, &grade, 1)
	require.NoError(t, err)

	assert.Equal(t, uint(7), certificate.UserID)
	assert.Equal(t, "Asha", certificate.StudentName)
	require.NotNil(t, certificate.InternshipID)
	assert.Equal(t, uint(3), *certificate.InternshipID)
	assert.Nil(t, certificate.CourseID)
	assert.NotEmpty(t, certificate.VerificationCode)
	assert.False(t, certificate.IssueDate.IsZero())

	second, err := IssueForInternship(db, 8, "Ravi", 3, "Backend Internship", &marks, &grade, 1)
	require.NoError(t, err)
	assert.NotEqual(t, certificate.VerificationCode, second.VerificationCode)
}

func TestFindByCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	marks := 30
	grade := "B"
	issued, err := IssueForInternship(db, 7, "Asha", 3, "Backend Internship", &marks, &grade, 1)
	require.NoError(t, err)

	found, err := svc.FindByCode(issued.VerificationCode)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, found.ID)

	_, err = svc.FindByCode("no-such-code")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListForUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	marks := 40
	grade := "A"
	_, err := IssueForInternship(db, 7, "Asha", 3, "Backend Internship", &marks, &grade, 1)
	require.NoError(t, err)
	_, err = IssueForInternship(db, 7, "Asha", 4, "Frontend Internship", &marks, &grade, 1)
	require.NoError(t, err)
	_, err = IssueForInternship(db, 9, "Ravi", 3, "Backend Internship", &marks, &grade, 1)
	require.NoError(t, err)

	list, err := svc.ListForUser(7)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
