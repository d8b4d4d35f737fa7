package internship

import (
	"errors"
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	internshipModels "internhub/models/internship"
	"internhub/services/enrollments"

	"github.com/gofiber/fiber/v2"
)

// RequestEnrollment handles the student's enrollment request for an
// internship.
func RequestEnrollment(c *fiber.Ctx) error {
	userID := currentUserID(c)
	internshipID := c.Locals("internshipId").(uint)

	enrollment, err := enrollmentService().Request(userID, internshipID)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false,
				"You already have an active request for this internship!", enrollment)
		}
		return respondEngineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment request submitted!", enrollment)
}

// GetEnrollmentStatus returns the full composite state of the student's
// enrollment plus the documents it currently entitles them to.
func GetEnrollmentStatus(c *fiber.Ctx) error {
	userID := currentUserID(c)
	internshipID := c.Locals("internshipId").(uint)

	enrollment, err := enrollmentService().GetStatus(userID, internshipID)
	if err != nil {
		return respondEngineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched successfully!", fiber.Map{
		"enrollment": enrollment,
		"documents":  enrollments.AvailableDocuments(enrollment),
	})
}

// GetProgress returns a freshly computed task progress snapshot.
func GetProgress(c *fiber.Ctx) error {
	userID := currentUserID(c)
	internshipID := c.Locals("internshipId").(uint)

	snapshot, err := enrollmentService().ComputeProgress(userID, internshipID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", snapshot)
}

// MyEnrollments lists all of the student's enrollment records, newest
// first.
func MyEnrollments(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var list []internshipModels.EnrollmentRequest
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", list)
}
