package internship

import (
	"errors"
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"internhub/services/certificates"
	"internhub/services/enrollments"

	"github.com/gofiber/fiber/v2"
)

func enrollmentService() *enrollments.Service {
	return enrollments.NewService(database.Database.Db)
}

func certificateService() *certificates.Service {
	return certificates.NewService(database.Database.Db)
}

func currentUserID(c *fiber.Ctx) uint {
	return c.Locals("userId").(uint)
}

// respondEngineError maps the engine's sentinel errors onto HTTP statuses.
// Conflicting transitions are 409, bad values 400, missing records 404.
func respondEngineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Record not found!", nil)
	case errors.Is(err, models.ErrInvalidState):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Operation not allowed in the current state!", nil)
	case errors.Is(err, models.ErrAlreadyExists):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Record already exists!", nil)
	case errors.Is(err, models.ErrOutOfRange):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Value out of allowed range!", nil)
	case errors.Is(err, models.ErrCapacityExceeded):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Internship capacity reached!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
