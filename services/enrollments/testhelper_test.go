package enrollments

import (
	"internhub/models"
	internshipModels "internhub/models/internship"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database. A single connection
// keeps the database alive and serializes concurrent transactions.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Notification{},
		&internshipModels.Internship{},
		&internshipModels.Task{},
		&internshipModels.Submission{},
		&internshipModels.EnrollmentRequest{},
		&internshipModels.Certificate{},
	))

	return db
}

func seedStudent(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    email,
		Role:     "STUDENT",
		Password: "hashed",
		College:  "Test College",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedAdmin(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:     "Admin",
		Email:    email,
		Role:     "ADMIN",
		Password: "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedInternship(t *testing.T, db *gorm.DB, title string, maxStudents, durationWeeks int) *internshipModels.Internship {
	t.Helper()
	program := internshipModels.Internship{
		Title:         title,
		Company:       "Acme Corp",
		DurationWeeks: durationWeeks,
		MaxStudents:   maxStudents,
		Status:        internshipModels.InternshipActive,
	}
	require.NoError(t, db.Create(&program).Error)
	return &program
}

func seedTask(t *testing.T, db *gorm.DB, internshipID uint, points int) *internshipModels.Task {
	t.Helper()
	task := internshipModels.Task{
		InternshipID: internshipID,
		Title:        "Task",
		Points:       points,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&task).Error)
	return &task
}

func seedApprovedSubmission(t *testing.T, db *gorm.DB, taskID, internshipID, userID uint, points int) {
	t.Helper()
	submission := internshipModels.Submission{
		TaskID:        taskID,
		InternshipID:  internshipID,
		UserID:        userID,
		Content:       "done",
		Status:        internshipModels.SubmissionApproved,
		AwardedPoints: points,
	}
	require.NoError(t, db.Create(&submission).Error)
}

// approvedEnrollment runs the request+approve path and returns the approved
// record.
func approvedEnrollment(t *testing.T, svc *Service, student *models.User, program *internshipModels.Internship, adminID uint) *internshipModels.EnrollmentRequest {
	t.Helper()
	enrollment, err := svc.Request(student.ID, program.ID)
	require.NoError(t, err)
	approved, err := svc.Approve(enrollment.ID, adminID, "welcome aboard")
	require.NoError(t, err)
	return approved
}
