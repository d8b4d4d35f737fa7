package internship

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"internhub/utils"
	internshipValidators "internhub/validators/internship"

	"github.com/gofiber/fiber/v2"
)

// RequestWithdrawal handles the student's early-exit request.
func RequestWithdrawal(c *fiber.Ctx) error {
	userID := currentUserID(c)
	internshipID := c.Locals("internshipId").(uint)
	body := c.Locals("withdrawalBody").(*internshipValidators.WithdrawalRequest)

	enrollment, err := enrollmentService().RequestWithdrawal(userID, internshipID, body.Reason)
	if err != nil {
		return respondEngineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal requested!", enrollment)
}

// ApproveWithdrawal finalizes the student's exit. The enrollment becomes
// WITHDRAWN and the exit documents become available.
func ApproveWithdrawal(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	enrollmentID := c.Locals("enrollmentId").(uint)
	body := c.Locals("noteBody").(*internshipValidators.NoteRequest)

	enrollment, err := enrollmentService().ApproveWithdrawal(enrollmentID, adminID, body.Note)
	if err != nil {
		return respondEngineError(c, err)
	}

	var student models.User
	if err := database.Database.Db.First(&student, enrollment.UserID).Error; err == nil {
		go utils.SendWithdrawalDecisionEmail(student.Email, student.Name,
			enrollment.InternshipTitle, true, enrollment.AdminNote)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal approved!", enrollment)
}

// RejectWithdrawal declines the exit request; the student stays enrolled
// and may request again.
func RejectWithdrawal(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	enrollmentID := c.Locals("enrollmentId").(uint)
	body := c.Locals("noteBody").(*internshipValidators.NoteRequest)

	enrollment, err := enrollmentService().RejectWithdrawal(enrollmentID, adminID, body.Note)
	if err != nil {
		return respondEngineError(c, err)
	}

	var student models.User
	if err := database.Database.Db.First(&student, enrollment.UserID).Error; err == nil {
		go utils.SendWithdrawalDecisionEmail(student.Email, student.Name,
			enrollment.InternshipTitle, false, enrollment.AdminNote)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal rejected!", enrollment)
}
