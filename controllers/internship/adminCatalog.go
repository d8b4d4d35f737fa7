package internship

import (
	"internhub/database"
	"internhub/middleware"
	internshipModels "internhub/models/internship"
	internshipValidators "internhub/validators/internship"

	"github.com/gofiber/fiber/v2"
)

// ListInternships lists active internships for students.
func ListInternships(c *fiber.Ctx) error {
	var list []internshipModels.Internship
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = ?", internshipModels.InternshipActive, false).
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internships fetched successfully!", list)
}

// AdminListInternships lists every internship regardless of status.
func AdminListInternships(c *fiber.Ctx) error {
	var list []internshipModels.Internship
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internships fetched successfully!", list)
}

// CreateInternship creates a new internship program. New programs start in
// the status the admin sets, DRAFT by default.
func CreateInternship(c *fiber.Ctx) error {
	body := c.Locals("internshipBody").(*internshipValidators.InternshipRequest)

	status := body.Status
	if status == "" {
		status = internshipModels.InternshipDraft
	}

	program := internshipModels.Internship{
		Title:         body.Title,
		Company:       body.Company,
		Description:   body.Description,
		DurationWeeks: body.DurationWeeks,
		MaxStudents:   body.MaxStudents,
		Status:        status,
	}
	if err := database.Database.Db.Create(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create internship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Internship created!", program)
}

// UpdateInternship updates an internship's catalog fields. The enrolled
// counter is never writable here.
func UpdateInternship(c *fiber.Ctx) error {
	internshipID := c.Locals("internshipId").(uint)
	body := c.Locals("internshipBody").(*internshipValidators.InternshipRequest)

	updates := map[string]interface{}{
		"title":          body.Title,
		"company":        body.Company,
		"description":    body.Description,
		"duration_weeks": body.DurationWeeks,
		"max_students":   body.MaxStudents,
	}
	if body.Status != "" {
		updates["status"] = body.Status
	}

	result := database.Database.Db.Model(&internshipModels.Internship{}).
		Where("id = ? AND is_deleted = ?", internshipID, false).
		Updates(updates)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update internship!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	var program internshipModels.Internship
	database.Database.Db.First(&program, internshipID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internship updated!", program)
}

// ListTasks lists the active tasks of an internship.
func ListTasks(c *fiber.Ctx) error {
	internshipID := c.Locals("internshipId").(uint)

	var list []internshipModels.Task
	if err := database.Database.Db.
		Where("internship_id = ? AND is_active = ? AND is_deleted = ?", internshipID, true, false).
		Order("created_at asc").
		Find(&list).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tasks fetched successfully!", list)
}

// CreateTask adds a task to an internship.
func CreateTask(c *fiber.Ctx) error {
	internshipID := c.Locals("internshipId").(uint)
	body := c.Locals("taskBody").(*internshipValidators.TaskRequest)

	var program internshipModels.Internship
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", internshipID, false).
		First(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	task := internshipModels.Task{
		InternshipID: internshipID,
		Title:        body.Title,
		Description:  body.Description,
		Points:       body.Points,
		IsActive:     true,
	}
	if err := database.Database.Db.Create(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create task!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Task created!", task)
}

// DeactivateTask retires a task so it stops counting toward progress.
func DeactivateTask(c *fiber.Ctx) error {
	taskID := c.Locals("taskId").(uint)

	result := database.Database.Db.Model(&internshipModels.Task{}).
		Where("id = ? AND is_deleted = ?", taskID, false).
		Update("is_active", false)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task deactivated!", nil)
}
