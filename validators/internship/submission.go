package internship

import (
	"internhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmissionRequest is the student's task submission body.
type SubmissionRequest struct {
	Content string `json:"content" validate:"required,min=1,max=10000"`
}

// SubmissionReviewRequest is the admin review body for a task submission.
type SubmissionReviewRequest struct {
	Status        string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	AwardedPoints int    `json:"awarded_points" validate:"min=0,max=1000"`
	Note          string `json:"note" validate:"max=2000"`
}

// ValidateSubmissionBody parses and validates the submission payload.
func ValidateSubmissionBody(c *fiber.Ctx) error {
	var body SubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if err := validate.Struct(&body); err != nil {
		return middleware.ValidationErrorResponse(c, validationErrors(err))
	}
	c.Locals("submissionBody", &body)
	return c.Next()
}

// ValidateSubmissionReviewBody parses and validates the submission review
// payload.
func ValidateSubmissionReviewBody(c *fiber.Ctx) error {
	var body SubmissionReviewRequest
	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if err := validate.Struct(&body); err != nil {
		return middleware.ValidationErrorResponse(c, validationErrors(err))
	}
	c.Locals("submissionReviewBody", &body)
	return c.Next()
}
