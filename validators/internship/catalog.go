package internship

import (
	"internhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// InternshipRequest is the admin create/update body for an internship
// program.
type InternshipRequest struct {
	Title         string `json:"title" validate:"required,min=3,max=200"`
	Company       string `json:"company" validate:"required,min=2,max=200"`
	Description   string `json:"description" validate:"max=5000"`
	DurationWeeks int    `json:"duration_weeks" validate:"required,min=1,max=52"`
	MaxStudents   int    `json:"max_students" validate:"min=0"`
	Status        string `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE INACTIVE"`
}

// TaskRequest is the admin create body for an internship task.
type TaskRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Points      int    `json:"points" validate:"min=0,max=1000"`
}

// ValidateInternshipBody parses and validates the internship payload.
func ValidateInternshipBody(c *fiber.Ctx) error {
	var body InternshipRequest
	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if err := validate.Struct(&body); err != nil {
		return middleware.ValidationErrorResponse(c, validationErrors(err))
	}
	c.Locals("internshipBody", &body)
	return c.Next()
}

// ValidateTaskBody parses and validates the task payload.
func ValidateTaskBody(c *fiber.Ctx) error {
	var body TaskRequest
	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if err := validate.Struct(&body); err != nil {
		return middleware.ValidationErrorResponse(c, validationErrors(err))
	}
	c.Locals("taskBody", &body)
	return c.Next()
}
