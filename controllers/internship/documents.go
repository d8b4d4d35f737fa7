package internship

import (
	"internhub/middleware"
	"internhub/services/enrollments"
	"internhub/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ListDocuments returns the document kinds the student's enrollment
// currently entitles them to.
func ListDocuments(c *fiber.Ctx) error {
	userID := currentUserID(c)
	internshipID := c.Locals("internshipId").(uint)

	kinds, err := enrollmentService().GetDocumentsForStudent(userID, internshipID)
	if err != nil {
		return respondEngineError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Documents fetched successfully!", kinds)
}

// DownloadDocument assembles the payload for one document and streams the
// rendered PDF. Documents are never stored; every download renders fresh
// from the current record.
func DownloadDocument(c *fiber.Ctx) error {
	userID := currentUserID(c)
	internshipID := c.Locals("internshipId").(uint)

	kind, err := enrollments.ParseDocumentKind(c.Params("kind"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unknown document kind!", nil)
	}

	payload, err := enrollmentService().BuildDocument(userID, internshipID, kind)
	if err != nil {
		return respondEngineError(c, err)
	}

	pdf, err := utils.RenderDocument(payload)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Document rendering failed!", nil)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+strings.ToLower(string(kind))+`.pdf"`)
	return c.Send(pdf)
}
