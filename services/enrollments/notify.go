package enrollments

import (
	"internhub/models"
	"log"
	"strconv"

	"gorm.io/gorm"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// createNotification queues an in-app notification. Notification failures
// are logged and never fail the transition that produced them.
func createNotification(tx *gorm.DB, userID uint, title, message, kind, link string) {
	notification := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Kind:    kind,
		Link:    link,
	}
	if err := tx.Create(&notification).Error; err != nil {
		log.Printf("Failed to create notification for user %d: %v", userID, err)
	}
}

// notifyAdmins queues the same notification for every active admin.
func notifyAdmins(tx *gorm.DB, title, message, kind, link string) {
	var adminIDs []uint
	if err := tx.Model(&models.User{}).
		Where("role = ? AND is_deleted = ?", "ADMIN", false).
		Pluck("id", &adminIDs).Error; err != nil {
		log.Printf("Failed to list admins for notification: %v", err)
		return
	}

	for _, adminID := range adminIDs {
		createNotification(tx, adminID, title, message, kind, link)
	}
}
