package utils

import (
	"fmt"
	"internhub/database"
	"internhub/models"
	internshipModels "internhub/models/internship"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

func logScheduler(format string, args ...interface{}) {
	log.Printf("[ENROLLMENT-SCHEDULER] "+format, args...)
}

// StartEnrollmentScheduler registers the daily sweeps. Runs at 09:00 server
// time.
func StartEnrollmentScheduler() {
	c := cron.New()

	_, err := c.AddFunc("0 9 * * *", func() {
		remindStalePendingReviews()
		remindExpiredEnrollments()
	})
	if err != nil {
		logScheduler("Failed to register daily sweep: %v", err)
		return
	}

	c.Start()
	logScheduler("Enrollment scheduler started (daily at 09:00)")
}

// remindStalePendingReviews notifies admins about completion requests that
// have been waiting in review for more than 3 days.
func remindStalePendingReviews() {
	db := database.Database.Db
	cutoff := time.Now().Add(-3 * 24 * time.Hour)

	var stale []internshipModels.EnrollmentRequest
	if err := db.Where("completion_status = ? AND completion_requested_at < ? AND is_deleted = ?",
		internshipModels.CompletionPendingReview, cutoff, false).
		Find(&stale).Error; err != nil {
		logScheduler("Failed to list stale pending reviews: %v", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	var adminIDs []uint
	if err := db.Model(&models.User{}).
		Where("role = ? AND is_deleted = ?", "ADMIN", false).
		Pluck("id", &adminIDs).Error; err != nil {
		logScheduler("Failed to list admins: %v", err)
		return
	}

	message := fmt.Sprintf("%d completion request(s) have been pending review for more than 3 days.", len(stale))
	for _, adminID := range adminIDs {
		notification := models.Notification{
			UserID:  adminID,
			Title:   "Pending Reviews Waiting",
			Message: message,
			Kind:    models.NotificationCompletion,
			Link:    "/admin/enrollments/pending-review",
		}
		if err := db.Create(&notification).Error; err != nil {
			logScheduler("Failed to notify admin %d: %v", adminID, err)
		}
	}

	logScheduler("Reminded %d admin(s) about %d stale pending review(s)", len(adminIDs), len(stale))
}

// remindExpiredEnrollments nudges students whose internship window has
// passed without a completion request.
func remindExpiredEnrollments() {
	db := database.Database.Db
	now := time.Now()

	var expired []internshipModels.EnrollmentRequest
	if err := db.Where("status = ? AND completion_status = ? AND end_date < ? AND is_deleted = ?",
		internshipModels.StatusApproved, internshipModels.CompletionNotRequested, now, false).
		Find(&expired).Error; err != nil {
		logScheduler("Failed to list expired enrollments: %v", err)
		return
	}

	for _, enrollment := range expired {
		notification := models.Notification{
			UserID:  enrollment.UserID,
			Title:   "Internship Period Ended",
			Message: "Your internship " + enrollment.InternshipTitle + " has ended. Request completion review to receive your documents.",
			Kind:    models.NotificationCompletion,
			Link:    fmt.Sprintf("/internships/%d", enrollment.InternshipID),
		}
		if err := db.Create(&notification).Error; err != nil {
			logScheduler("Failed to notify user %d: %v", enrollment.UserID, err)
		}
	}

	if len(expired) > 0 {
		logScheduler("Nudged %d student(s) with ended internship windows", len(expired))
	}
}
