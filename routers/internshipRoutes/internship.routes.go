package internshipRoutes

import (
	internshipController "internhub/controllers/internship"
	"internhub/middleware"
	internshipValidators "internhub/validators/internship"

	"github.com/gofiber/fiber/v2"
)

// SetupInternshipRoutes registers the student-facing and public routes.
func SetupInternshipRoutes(app *fiber.App) {
	// Public
	app.Get("/certificate/verify/:code", internshipController.VerifyCertificate)

	// Student
	internship := app.Group("/internship", middleware.JWTMiddleware)

	internship.Get("/list", internshipController.ListInternships)

	internship.Post("/:id/request",
		internshipValidators.InternshipIDParam,
		internshipController.RequestEnrollment)

	internship.Get("/:id/status",
		internshipValidators.InternshipIDParam,
		internshipController.GetEnrollmentStatus)

	internship.Get("/:id/progress",
		internshipValidators.InternshipIDParam,
		internshipController.GetProgress)

	internship.Get("/:id/tasks",
		internshipValidators.InternshipIDParam,
		internshipController.ListTasks)

	internship.Post("/:id/task/:task_id/submit",
		internshipValidators.InternshipIDParam,
		internshipValidators.TaskIDParam,
		internshipValidators.ValidateSubmissionBody,
		internshipController.SubmitTask)

	internship.Post("/:id/completion/request",
		internshipValidators.InternshipIDParam,
		internshipController.RequestCompletion)

	internship.Post("/:id/withdrawal/request",
		internshipValidators.InternshipIDParam,
		internshipValidators.ValidateWithdrawalBody,
		internshipController.RequestWithdrawal)

	internship.Get("/:id/documents",
		internshipValidators.InternshipIDParam,
		internshipController.ListDocuments)

	internship.Get("/:id/document/:kind",
		internshipValidators.InternshipIDParam,
		internshipController.DownloadDocument)

	// Student account views
	user := app.Group("/user", middleware.JWTMiddleware)
	user.Get("/enrollments", internshipController.MyEnrollments)
	user.Get("/certificates", internshipController.MyCertificates)
	user.Get("/notifications", internshipController.MyNotifications)
	user.Patch("/notifications/:id/read",
		internshipValidators.NotificationIDParam,
		internshipController.MarkNotificationRead)
}
