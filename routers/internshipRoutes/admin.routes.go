package internshipRoutes

import (
	internshipController "internhub/controllers/internship"
	"internhub/middleware"
	internshipValidators "internhub/validators/internship"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes registers the admin-only routes.
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	admin.Get("/dashboard", internshipController.DashboardStats)

	// Catalog
	admin.Get("/internships", internshipController.AdminListInternships)
	admin.Post("/internship",
		internshipValidators.ValidateInternshipBody,
		internshipController.CreateInternship)
	admin.Patch("/internship/:id",
		internshipValidators.InternshipIDParam,
		internshipValidators.ValidateInternshipBody,
		internshipController.UpdateInternship)
	admin.Post("/internship/:id/task",
		internshipValidators.InternshipIDParam,
		internshipValidators.ValidateTaskBody,
		internshipController.CreateTask)
	admin.Patch("/task/:task_id/deactivate",
		internshipValidators.TaskIDParam,
		internshipController.DeactivateTask)

	// Enrollment decisions
	admin.Get("/enrollments/pending", internshipController.PendingEnrollments)
	admin.Get("/enrollments/pending-review", internshipController.PendingReviews)
	admin.Get("/enrollments/pending-withdrawal", internshipController.PendingWithdrawals)
	admin.Get("/enrollment/:id",
		internshipValidators.EnrollmentIDParam,
		internshipController.GetEnrollment)
	admin.Post("/enrollment/:id/approve",
		internshipValidators.EnrollmentIDParam,
		internshipValidators.ValidateNoteBody,
		internshipController.ApproveEnrollment)
	admin.Post("/enrollment/:id/reject",
		internshipValidators.EnrollmentIDParam,
		internshipValidators.ValidateNoteBody,
		internshipController.RejectEnrollment)

	// Completion pipeline
	admin.Post("/enrollment/:id/completion/initiate",
		internshipValidators.EnrollmentIDParam,
		internshipController.InitiateCompletion)
	admin.Post("/enrollment/:id/completion/review",
		internshipValidators.EnrollmentIDParam,
		internshipValidators.ValidateReviewBody,
		internshipController.ReviewCompletion)
	admin.Post("/enrollment/:id/completion/reopen",
		internshipValidators.EnrollmentIDParam,
		internshipController.ReopenReview)
	admin.Post("/enrollment/:id/certificate/issue",
		internshipValidators.EnrollmentIDParam,
		internshipController.IssueCertificate)
	admin.Post("/enrollment/:id/complete",
		internshipValidators.EnrollmentIDParam,
		internshipValidators.ValidateCompleteDirectBody,
		internshipController.CompleteDirectly)

	// Withdrawal decisions
	admin.Post("/enrollment/:id/withdrawal/approve",
		internshipValidators.EnrollmentIDParam,
		internshipValidators.ValidateNoteBody,
		internshipController.ApproveWithdrawal)
	admin.Post("/enrollment/:id/withdrawal/reject",
		internshipValidators.EnrollmentIDParam,
		internshipValidators.ValidateNoteBody,
		internshipController.RejectWithdrawal)

	// Task submissions
	admin.Get("/submissions/pending", internshipController.PendingSubmissions)
	admin.Post("/submission/:id/review",
		internshipValidators.SubmissionIDParam,
		internshipValidators.ValidateSubmissionReviewBody,
		internshipController.ReviewSubmission)
}
