package internship

import (
	"internhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// ReviewRequest is the admin review body. The engine re-checks the marks
// range; this just rejects malformed requests at the edge.
type ReviewRequest struct {
	Marks    *int   `json:"marks" validate:"required,min=0,max=50"`
	Feedback string `json:"feedback" validate:"max=2000"`
}

// CompleteDirectRequest is the compound complete-and-optionally-certify
// admin body.
type CompleteDirectRequest struct {
	Marks            *int   `json:"marks" validate:"required,min=0,max=50"`
	Feedback         string `json:"feedback" validate:"max=2000"`
	IssueCertificate bool   `json:"issue_certificate"`
}

// ValidateReviewBody parses and validates the review payload.
func ValidateReviewBody(c *fiber.Ctx) error {
	var body ReviewRequest
	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if err := validate.Struct(&body); err != nil {
		return middleware.ValidationErrorResponse(c, validationErrors(err))
	}
	c.Locals("reviewBody", &body)
	return c.Next()
}

// ValidateCompleteDirectBody parses and validates the direct-completion
// payload.
func ValidateCompleteDirectBody(c *fiber.Ctx) error {
	var body CompleteDirectRequest
	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if err := validate.Struct(&body); err != nil {
		return middleware.ValidationErrorResponse(c, validationErrors(err))
	}
	c.Locals("completeDirectBody", &body)
	return c.Next()
}
