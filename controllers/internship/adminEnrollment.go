package internship

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	internshipModels "internhub/models/internship"
	"internhub/utils"
	internshipValidators "internhub/validators/internship"

	"github.com/gofiber/fiber/v2"
)

// PendingEnrollments lists enrollment requests awaiting an admin decision.
func PendingEnrollments(c *fiber.Ctx) error {
	var list []internshipModels.EnrollmentRequest
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = ?", internshipModels.StatusPending, false).
		Order("created_at asc").
		Find(&list).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending enrollments fetched successfully!", list)
}

// PendingReviews lists completion requests awaiting review.
func PendingReviews(c *fiber.Ctx) error {
	var list []internshipModels.EnrollmentRequest
	if err := database.Database.Db.
		Where("completion_status = ? AND is_deleted = ?", internshipModels.CompletionPendingReview, false).
		Order("completion_requested_at asc").
		Find(&list).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending reviews fetched successfully!", list)
}

// PendingWithdrawals lists withdrawal requests awaiting a decision.
func PendingWithdrawals(c *fiber.Ctx) error {
	var list []internshipModels.EnrollmentRequest
	if err := database.Database.Db.
		Where("withdrawal_status = ? AND is_deleted = ?", internshipModels.WithdrawalPending, false).
		Order("withdrawal_requested_at asc").
		Find(&list).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending withdrawals fetched successfully!", list)
}

// GetEnrollment fetches one enrollment record for the admin detail view.
func GetEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentId").(uint)

	enrollment, err := enrollmentService().GetByID(enrollmentID)
	if err != nil {
		return respondEngineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

// ApproveEnrollment approves a pending request, sets the internship window
// and releases the offer letter and MOU.
func ApproveEnrollment(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	enrollmentID := c.Locals("enrollmentId").(uint)
	body := c.Locals("noteBody").(*internshipValidators.NoteRequest)

	enrollment, err := enrollmentService().Approve(enrollmentID, adminID, body.Note)
	if err != nil {
		return respondEngineError(c, err)
	}

	var student models.User
	if err := database.Database.Db.First(&student, enrollment.UserID).Error; err == nil &&
		enrollment.StartDate != nil && enrollment.EndDate != nil {
		go utils.SendEnrollmentApprovedEmail(student.Email, student.Name,
			enrollment.InternshipTitle,
			enrollment.StartDate.Format("02 Jan 2006"),
			enrollment.EndDate.Format("02 Jan 2006"))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment approved!", enrollment)
}

// RejectEnrollment rejects a pending request. Terminal.
func RejectEnrollment(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	enrollmentID := c.Locals("enrollmentId").(uint)
	body := c.Locals("noteBody").(*internshipValidators.NoteRequest)

	enrollment, err := enrollmentService().Reject(enrollmentID, adminID, body.Note)
	if err != nil {
		return respondEngineError(c, err)
	}

	var student models.User
	if err := database.Database.Db.First(&student, enrollment.UserID).Error; err == nil {
		go utils.SendEnrollmentRejectedEmail(student.Email, student.Name,
			enrollment.InternshipTitle, enrollment.AdminNote)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment rejected!", enrollment)
}

// DashboardStats returns headline counts for the admin dashboard.
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db
	stats := fiber.Map{}

	type countQuery struct {
		key   string
		model interface{}
		where string
		args  []interface{}
	}

	queries := []countQuery{
		{"total_students", &models.User{}, "role = ? AND is_deleted = ?", []interface{}{"STUDENT", false}},
		{"active_internships", &internshipModels.Internship{}, "status = ? AND is_deleted = ?", []interface{}{internshipModels.InternshipActive, false}},
		{"pending_enrollments", &internshipModels.EnrollmentRequest{}, "status = ? AND is_deleted = ?", []interface{}{internshipModels.StatusPending, false}},
		{"active_enrollments", &internshipModels.EnrollmentRequest{}, "status = ? AND is_deleted = ?", []interface{}{internshipModels.StatusApproved, false}},
		{"pending_reviews", &internshipModels.EnrollmentRequest{}, "completion_status = ? AND is_deleted = ?", []interface{}{internshipModels.CompletionPendingReview, false}},
		{"pending_withdrawals", &internshipModels.EnrollmentRequest{}, "withdrawal_status = ? AND is_deleted = ?", []interface{}{internshipModels.WithdrawalPending, false}},
		{"pending_submissions", &internshipModels.Submission{}, "status = ? AND is_deleted = ?", []interface{}{internshipModels.SubmissionPending, false}},
		{"certificates_issued", &internshipModels.Certificate{}, "is_deleted = ?", []interface{}{false}},
	}

	for _, q := range queries {
		var count int64
		if err := db.Model(q.model).Where(q.where, q.args...).Count(&count).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
		}
		stats[q.key] = count
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", stats)
}
