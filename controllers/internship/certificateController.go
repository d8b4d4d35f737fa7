package internship

import (
	"internhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// MyCertificates lists all certificates issued to the logged-in student.
func MyCertificates(c *fiber.Ctx) error {
	userID := currentUserID(c)

	list, err := certificateService().ListForUser(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", list)
}

// VerifyCertificate is the public lookup by verification code. Only the
// fields a third party needs are exposed.
func VerifyCertificate(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification code is required!", nil)
	}

	certificate, err := certificateService().FindByCode(code)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	title := certificate.InternshipTitle
	if title == "" {
		title = certificate.CourseTitle
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate is valid!", fiber.Map{
		"student_name":      certificate.StudentName,
		"program_title":     title,
		"grade":             certificate.Grade,
		"issue_date":        certificate.IssueDate,
		"verification_code": certificate.VerificationCode,
	})
}
