package internship

import "gorm.io/gorm"

// InternshipStatus enum values
const (
	InternshipDraft    = "DRAFT"
	InternshipActive   = "ACTIVE"
	InternshipInactive = "INACTIVE"
)

// Internship represents an internship program offered on the platform
type Internship struct {
	gorm.Model
	Title         string `gorm:"not null" json:"title"`
	Company       string `json:"company"`
	Description   string `gorm:"type:text" json:"description"`
	DurationWeeks int    `gorm:"default:0" json:"duration_weeks"`
	MaxStudents   int    `gorm:"default:0" json:"max_students"`
	// Enrolled is mutated only through guarded atomic updates in the
	// enrollment service, never by read-modify-write.
	Enrolled  int    `gorm:"default:0" json:"enrolled"`
	Status    string `gorm:"type:varchar(20);default:'DRAFT'" json:"status"` // DRAFT, ACTIVE, INACTIVE
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
