package internship

import (
	"errors"
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"internhub/utils"
	internshipValidators "internhub/validators/internship"

	"github.com/gofiber/fiber/v2"
)

// RequestCompletion handles the student's completion review request.
func RequestCompletion(c *fiber.Ctx) error {
	userID := currentUserID(c)
	internshipID := c.Locals("internshipId").(uint)

	enrollment, err := enrollmentService().RequestCompletion(userID, internshipID)
	if err != nil {
		return respondEngineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion review requested!", enrollment)
}

// InitiateCompletion lets an admin start the completion pipeline for a
// student who has not requested it.
func InitiateCompletion(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	enrollmentID := c.Locals("enrollmentId").(uint)

	enrollment, err := enrollmentService().AdminInitiateCompletion(enrollmentID, adminID)
	if err != nil {
		return respondEngineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion review initiated!", enrollment)
}

// ReviewCompletion records the admin's marks and feedback and derives the
// grade.
func ReviewCompletion(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	enrollmentID := c.Locals("enrollmentId").(uint)
	body := c.Locals("reviewBody").(*internshipValidators.ReviewRequest)

	enrollment, err := enrollmentService().Review(enrollmentID, adminID, *body.Marks, body.Feedback)
	if err != nil {
		return respondEngineError(c, err)
	}

	var student models.User
	if err := database.Database.Db.First(&student, enrollment.UserID).Error; err == nil && enrollment.Marks != nil && enrollment.Grade != nil {
		go utils.SendCompletionReviewedEmail(student.Email, student.Name,
			enrollment.InternshipTitle, *enrollment.Marks, *enrollment.Grade)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion reviewed!", enrollment)
}

// ReopenReview sends a reviewed completion back for correction. Blocked
// once a certificate exists.
func ReopenReview(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	enrollmentID := c.Locals("enrollmentId").(uint)

	enrollment, err := enrollmentService().ReopenReview(enrollmentID, adminID)
	if err != nil {
		return respondEngineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review reopened!", enrollment)
}

// IssueCertificate issues the certificate for a reviewed completion. A
// repeat call reports the existing certificate instead of failing.
func IssueCertificate(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	enrollmentID := c.Locals("enrollmentId").(uint)

	enrollment, certificate, err := enrollmentService().IssueCertificate(enrollmentID, adminID)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) && certificate != nil {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate was already issued!", fiber.Map{
				"enrollment":  enrollment,
				"certificate": certificate,
			})
		}
		return respondEngineError(c, err)
	}

	var student models.User
	if err := database.Database.Db.First(&student, enrollment.UserID).Error; err == nil {
		go utils.SendCertificateIssuedEmail(student.Email, student.Name,
			enrollment.InternshipTitle, certificate.VerificationCode)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued!", fiber.Map{
		"enrollment":  enrollment,
		"certificate": certificate,
	})
}

// CompleteDirectly runs initiate, review and optional issuance as one
// admin action.
func CompleteDirectly(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	enrollmentID := c.Locals("enrollmentId").(uint)
	body := c.Locals("completeDirectBody").(*internshipValidators.CompleteDirectRequest)

	enrollment, certificate, err := enrollmentService().CompleteDirectly(
		enrollmentID, adminID, *body.Marks, body.Feedback, body.IssueCertificate)
	if err != nil {
		return respondEngineError(c, err)
	}

	var student models.User
	if err := database.Database.Db.First(&student, enrollment.UserID).Error; err == nil && enrollment.Marks != nil && enrollment.Grade != nil {
		go utils.SendCompletionReviewedEmail(student.Email, student.Name,
			enrollment.InternshipTitle, *enrollment.Marks, *enrollment.Grade)
		if certificate != nil {
			go utils.SendCertificateIssuedEmail(student.Email, student.Name,
				enrollment.InternshipTitle, certificate.VerificationCode)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internship marked complete!", fiber.Map{
		"enrollment":  enrollment,
		"certificate": certificate,
	})
}
