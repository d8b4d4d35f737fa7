package internship

import (
	"time"

	"gorm.io/gorm"
)

// Status is the primary enrollment status.
//
//	PENDING ──► APPROVED ──► WITHDRAWN
//	    │
//	    └─────► REJECTED
//
// REJECTED and WITHDRAWN are terminal.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusWithdrawn Status = "WITHDRAWN"
)

// CompletionStatus tracks the completion review pipeline. It only moves
// while the primary status is APPROVED; an approved withdrawal freezes it
// at whatever value it had.
type CompletionStatus string

const (
	CompletionNotRequested      CompletionStatus = "NOT_REQUESTED"
	CompletionPendingReview     CompletionStatus = "PENDING_REVIEW"
	CompletionReviewed          CompletionStatus = "REVIEWED"
	CompletionCertificateIssued CompletionStatus = "CERTIFICATE_ISSUED"
)

// WithdrawalStatus tracks the early-exit request pipeline. A rejected
// withdrawal may be re-requested.
type WithdrawalStatus string

const (
	WithdrawalNotRequested WithdrawalStatus = "NOT_REQUESTED"
	WithdrawalPending      WithdrawalStatus = "PENDING"
	WithdrawalApproved     WithdrawalStatus = "APPROVED"
	WithdrawalRejected     WithdrawalStatus = "REJECTED"
)

// MaxMarks is the upper bound for completion review marks.
const MaxMarks = 50

// EnrollmentRequest is the permanent record of the relationship between one
// student and one internship. It is never deleted, only transitioned; all
// mutations go through the enrollment service's guarded updates.
type EnrollmentRequest struct {
	gorm.Model
	UserID       uint `gorm:"index;not null;uniqueIndex:uniq_live_enrollment,priority:1" json:"user_id"`
	InternshipID uint `gorm:"index;not null;uniqueIndex:uniq_live_enrollment,priority:2" json:"internship_id"`

	// Live is set while this record holds the pair's single live slot
	// (PENDING or APPROVED) and NULL once the record is terminal. The
	// composite unique index turns the one-live-request-per-pair rule into a
	// database constraint; NULLs never collide, so any number of terminal
	// records may exist for the same pair.
	Live *bool `gorm:"uniqueIndex:uniq_live_enrollment,priority:3" json:"-"`

	// Write-time snapshots, kept as historical facts even if the live
	// student/internship records change later.
	StudentName     string `json:"student_name"`
	InternshipTitle string `json:"internship_title"`

	Status           Status           `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	CompletionStatus CompletionStatus `gorm:"type:varchar(30);default:'NOT_REQUESTED'" json:"completion_status"`
	WithdrawalStatus WithdrawalStatus `gorm:"type:varchar(20);default:'NOT_REQUESTED'" json:"withdrawal_status"`

	// Progress snapshot, recomputed from tasks/submissions each time a
	// completion-affecting transition runs.
	TasksCompleted int `gorm:"default:0" json:"tasks_completed"`
	TotalTasks     int `gorm:"default:0" json:"total_tasks"`
	TotalPoints    int `gorm:"default:0" json:"total_points"`

	// Evaluation. Marks is set iff completion status is REVIEWED or
	// CERTIFICATE_ISSUED; grade is derived from marks.
	Marks         *int    `json:"marks"`
	Grade         *string `json:"grade"`
	AdminFeedback string  `gorm:"type:text" json:"admin_feedback"`

	// Set at approval time from the internship duration.
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	// Document availability flags. Documents are rendered on demand from
	// stored data, never cached as binaries.
	MouGenerated              bool `gorm:"default:false" json:"mou_generated"`
	OfferLetterGenerated      bool `gorm:"default:false" json:"offer_letter_generated"`
	CompletionLetterGenerated bool `gorm:"default:false" json:"completion_letter_generated"`

	WithdrawalReason string `gorm:"type:text" json:"withdrawal_reason"`
	AdminNote        string `gorm:"type:text" json:"admin_note"`

	// Audit trail
	ApprovedAt            *time.Time `json:"approved_at"`
	ApprovedBy            *uint      `json:"approved_by"`
	RejectedAt            *time.Time `json:"rejected_at"`
	RejectedBy            *uint      `json:"rejected_by"`
	CompletionRequestedAt *time.Time `json:"completion_requested_at"`
	ReviewedAt            *time.Time `json:"reviewed_at"`
	ReviewedBy            *uint      `json:"reviewed_by"`
	WithdrawalRequestedAt *time.Time `json:"withdrawal_requested_at"`
	WithdrawalApprovedAt  *time.Time `json:"withdrawal_approved_at"`
	WithdrawalApprovedBy  *uint      `json:"withdrawal_approved_by"`

	CertificateID *uint `gorm:"index" json:"certificate_id"`
	IsDeleted     bool  `gorm:"default:false" json:"-"`
}
