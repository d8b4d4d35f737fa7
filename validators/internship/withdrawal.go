package internship

import (
	"internhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// WithdrawalRequest carries the student's reason for leaving early.
type WithdrawalRequest struct {
	Reason string `json:"reason" validate:"required,min=5,max=2000"`
}

// NoteRequest is the optional admin note attached to decisions.
type NoteRequest struct {
	Note string `json:"note" validate:"max=2000"`
}

// ValidateWithdrawalBody parses and validates the withdrawal payload.
func ValidateWithdrawalBody(c *fiber.Ctx) error {
	var body WithdrawalRequest
	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if err := validate.Struct(&body); err != nil {
		return middleware.ValidationErrorResponse(c, validationErrors(err))
	}
	c.Locals("withdrawalBody", &body)
	return c.Next()
}

// ValidateNoteBody parses the optional note payload. An empty body is
// allowed.
func ValidateNoteBody(c *fiber.Ctx) error {
	body := NoteRequest{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(&body); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}
	}
	c.Locals("noteBody", &body)
	return c.Next()
}
