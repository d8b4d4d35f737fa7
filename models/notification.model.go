package models

import "gorm.io/gorm"

// Notification kinds used by the enrollment lifecycle
const (
	NotificationEnrollment  = "ENROLLMENT"
	NotificationCompletion  = "COMPLETION"
	NotificationWithdrawal  = "WITHDRAWAL"
	NotificationCertificate = "CERTIFICATE"
)

// Notification is a queued in-app notification. Delivery (email/push) is
// handled outside the lifecycle engine; a failed delivery never rolls back
// the transition that produced the notification.
type Notification struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	Title     string `gorm:"not null" json:"title"`
	Message   string `gorm:"type:text" json:"message"`
	Kind      string `gorm:"type:varchar(20)" json:"kind"`
	Link      string `json:"link"`
	IsRead    bool   `gorm:"default:false" json:"is_read"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
