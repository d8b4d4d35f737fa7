package internship

import (
	"time"

	"gorm.io/gorm"
)

// SubmissionStatus enum values
const (
	SubmissionPending  = "PENDING"
	SubmissionApproved = "APPROVED"
	SubmissionRejected = "REJECTED"
)

// Submission is a student's answer to a task, reviewed by an admin.
type Submission struct {
	gorm.Model
	TaskID        uint       `gorm:"index;not null" json:"task_id"`
	InternshipID  uint       `gorm:"index;not null" json:"internship_id"`
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	Content       string     `gorm:"type:text" json:"content"`
	Status        string     `gorm:"type:varchar(20);default:'PENDING'" json:"status"` // PENDING, APPROVED, REJECTED
	AwardedPoints int        `gorm:"default:0" json:"awarded_points"`
	ReviewNote    string     `json:"review_note"`
	ReviewedBy    *uint      `json:"reviewed_by"`
	ReviewedAt    *time.Time `json:"reviewed_at"`
	IsDeleted     bool       `gorm:"default:false" json:"-"`
}
