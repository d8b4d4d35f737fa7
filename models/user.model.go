package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage string `gorm:"default:''" json:"profile_image"`
	Name         string `gorm:"default:''" json:"name"`
	Email        string `gorm:"unique;not null" json:"email"`
	Mobile       string `gorm:"default:''" json:"mobile"`
	Role         string `gorm:"default:'STUDENT'" json:"role"` // STUDENT, ADMIN
	Password     string `gorm:"not null" json:"-"`

	// Student profile
	College   string `json:"college"`
	Degree    string `json:"degree"`
	Branch    string `json:"branch"`
	ResumeURL string `json:"resume_url"`

	// Internship IDs the student is currently enrolled in. Written only by the
	// enrollment lifecycle (approval adds, approved withdrawal removes).
	EnrolledInternships datatypes.JSON `gorm:"default:'[]'" json:"enrolled_internships"`

	IsEmailVerified bool       `gorm:"default:false" json:"is_email_verified"`
	LastLogin       *time.Time `json:"last_login"`
	IsDeleted       bool       `gorm:"default:false" json:"-"`
}
