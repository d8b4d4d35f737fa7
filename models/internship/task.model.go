package internship

import "gorm.io/gorm"

// Task is a unit of work inside an internship. Only active tasks count
// toward a student's progress.
type Task struct {
	gorm.Model
	InternshipID uint   `gorm:"index;not null" json:"internship_id"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Points       int    `gorm:"default:0" json:"points"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	IsDeleted    bool   `gorm:"default:false" json:"-"`
}
