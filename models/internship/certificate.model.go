package internship

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is an immutable proof-of-completion record. Exactly one of
// InternshipID/CourseID is set. At most one certificate exists per
// (student, program) pair.
type Certificate struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	StudentName string `json:"student_name"` // snapshot at issue time

	InternshipID    *uint  `gorm:"index" json:"internship_id"`
	InternshipTitle string `json:"internship_title"`
	CourseID        *uint  `gorm:"index" json:"course_id"`
	CourseTitle     string `json:"course_title"`

	Marks *int    `json:"marks"`
	Grade *string `json:"grade"`

	IssueDate time.Time `json:"issue_date"`
	IssuedBy  uint      `json:"issued_by"`

	// Globally unique, unguessable code for public verification.
	VerificationCode string `gorm:"unique;not null" json:"verification_code"`

	IsDeleted bool `gorm:"default:false" json:"-"`
}
