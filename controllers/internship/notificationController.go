package internship

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"

	"github.com/gofiber/fiber/v2"
)

// MyNotifications lists the user's notifications, newest first, with the
// unread count.
func MyNotifications(c *fiber.Ctx) error {
	userID := currentUserID(c)
	db := database.Database.Db

	var list []models.Notification
	if err := db.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(100).
		Find(&list).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	var unread int64
	if err := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", fiber.Map{
		"notifications": list,
		"unread_count":  unread,
	})
}

// MarkNotificationRead marks one of the user's notifications as read.
func MarkNotificationRead(c *fiber.Ctx) error {
	userID := currentUserID(c)
	notificationID := c.Locals("notificationId").(uint)

	result := database.Database.Db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", nil)
}
