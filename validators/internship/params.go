package internship

import (
	"internhub/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func validationErrors(err error) map[string]string {
	errs := map[string]string{}
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range fieldErrors {
			errs[strings.ToLower(fieldError.Field())] = "failed on '" + fieldError.Tag() + "' rule"
		}
	}
	return errs
}

func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// InternshipIDParam validates the :id route param and stashes it as
// internshipId.
func InternshipIDParam(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid internship id!", nil)
	}
	c.Locals("internshipId", id)
	return c.Next()
}

// EnrollmentIDParam validates the :id route param on admin enrollment routes
// and stashes it as enrollmentId.
func EnrollmentIDParam(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}
	c.Locals("enrollmentId", id)
	return c.Next()
}

// TaskIDParam validates the :task_id route param.
func TaskIDParam(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "task_id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid task id!", nil)
	}
	c.Locals("taskId", id)
	return c.Next()
}

// SubmissionIDParam validates the :id route param on submission review
// routes.
func SubmissionIDParam(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission id!", nil)
	}
	c.Locals("submissionId", id)
	return c.Next()
}

// NotificationIDParam validates the :id route param on notification routes.
func NotificationIDParam(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification id!", nil)
	}
	c.Locals("notificationId", id)
	return c.Next()
}
