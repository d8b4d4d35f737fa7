package internship

import (
	"internhub/database"
	"internhub/middleware"
	internshipModels "internhub/models/internship"
	internshipValidators "internhub/validators/internship"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SubmitTask records a student's answer to a task. Requires an APPROVED
// enrollment; rejected submissions may be resubmitted, pending ones may
// not.
func SubmitTask(c *fiber.Ctx) error {
	userID := currentUserID(c)
	internshipID := c.Locals("internshipId").(uint)
	taskID := c.Locals("taskId").(uint)
	body := c.Locals("submissionBody").(*internshipValidators.SubmissionRequest)
	db := database.Database.Db

	enrollment, err := enrollmentService().GetStatus(userID, internshipID)
	if err != nil {
		return respondEngineError(c, err)
	}
	if enrollment.Status != internshipModels.StatusApproved {
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			"You are not actively enrolled in this internship!", nil)
	}

	var task internshipModels.Task
	if err := db.Where("id = ? AND internship_id = ? AND is_active = ? AND is_deleted = ?",
		taskID, internshipID, true, false).First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	var existing internshipModels.Submission
	err = db.Where("task_id = ? AND user_id = ? AND status IN ? AND is_deleted = ?",
		taskID, userID,
		[]string{internshipModels.SubmissionPending, internshipModels.SubmissionApproved},
		false).First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			"You already have a submission for this task!", existing)
	}

	submission := internshipModels.Submission{
		TaskID:       taskID,
		InternshipID: internshipID,
		UserID:       userID,
		Content:      body.Content,
		Status:       internshipModels.SubmissionPending,
	}
	if err := db.Create(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit task!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Task submitted!", submission)
}

// PendingSubmissions lists submissions awaiting admin review.
func PendingSubmissions(c *fiber.Ctx) error {
	var list []internshipModels.Submission
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = ?", internshipModels.SubmissionPending, false).
		Order("created_at asc").
		Find(&list).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending submissions fetched successfully!", list)
}

// ReviewSubmission approves or rejects a pending submission. Awarded
// points are capped by the task's points and feed the progress snapshot on
// the next completion transition.
func ReviewSubmission(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	submissionID := c.Locals("submissionId").(uint)
	body := c.Locals("submissionReviewBody").(*internshipValidators.SubmissionReviewRequest)
	db := database.Database.Db

	var submission internshipModels.Submission
	if err := db.Where("id = ? AND is_deleted = ?", submissionID, false).
		First(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	var task internshipModels.Task
	if err := db.Where("id = ?", submission.TaskID).First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	awarded := 0
	if body.Status == internshipModels.SubmissionApproved {
		awarded = body.AwardedPoints
		if awarded > task.Points {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
				"Awarded points exceed the task's points!", nil)
		}
	}

	now := time.Now()
	result := db.Model(&internshipModels.Submission{}).
		Where("id = ? AND status = ?", submission.ID, internshipModels.SubmissionPending).
		Updates(map[string]interface{}{
			"status":         body.Status,
			"awarded_points": awarded,
			"review_note":    body.Note,
			"reviewed_by":    adminID,
			"reviewed_at":    now,
		})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			"Submission has already been reviewed!", nil)
	}

	db.First(&submission, submission.ID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission reviewed!", submission)
}
