package enrollments

import (
	"errors"
	"internhub/models"
	internshipModels "internhub/models/internship"
	"internhub/services/certificates"
	"time"

	"gorm.io/gorm"
)

// Service owns the enrollment lifecycle. Every transition validates the
// expected composite state with a conditional update (compare-and-set) so
// concurrent admin/student actions on the same record leave exactly one
// winner; the loser observes ErrInvalidState. All side-effect records of a
// transition commit in the same transaction.
type Service struct {
	DB *gorm.DB
}

// NewService creates an enrollment lifecycle service
func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// GetByID fetches one enrollment request by id
func (s *Service) GetByID(enrollmentID uint) (*internshipModels.EnrollmentRequest, error) {
	var enrollment internshipModels.EnrollmentRequest
	if err := s.DB.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return nil, models.ErrNotFound
	}
	return &enrollment, nil
}

// GetStatus fetches the enrollment record for a (student, internship) pair
func (s *Service) GetStatus(userID, internshipID uint) (*internshipModels.EnrollmentRequest, error) {
	var enrollment internshipModels.EnrollmentRequest
	if err := s.DB.Where("user_id = ? AND internship_id = ? AND is_deleted = ?",
		userID, internshipID, false).
		Order("created_at desc").
		First(&enrollment).Error; err != nil {
		return nil, models.ErrNotFound
	}
	return &enrollment, nil
}

// Request creates a new enrollment request in (PENDING, NOT_REQUESTED,
// NOT_REQUESTED). A student may hold at most one non-terminal request per
// internship; the lookup below is a friendly pre-check, the unique index
// over (user_id, internship_id, live) enforces the rule when two requests
// race on separate connections. Capacity is pre-checked here and enforced
// again at approval.
func (s *Service) Request(userID, internshipID uint) (*internshipModels.EnrollmentRequest, error) {
	var user models.User
	if err := s.DB.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, models.ErrNotFound
	}

	var program internshipModels.Internship
	if err := s.DB.Where("id = ? AND status = ? AND is_deleted = ?",
		internshipID, internshipModels.InternshipActive, false).First(&program).Error; err != nil {
		return nil, models.ErrNotFound
	}

	// One live request per (student, internship)
	var existing internshipModels.EnrollmentRequest
	err := s.DB.Where("user_id = ? AND internship_id = ? AND status IN ? AND is_deleted = ?",
		userID, internshipID,
		[]internshipModels.Status{internshipModels.StatusPending, internshipModels.StatusApproved},
		false).First(&existing).Error
	if err == nil {
		return &existing, models.ErrAlreadyExists
	}

	if program.MaxStudents > 0 && program.Enrolled >= program.MaxStudents {
		return nil, models.ErrCapacityExceeded
	}

	live := true
	enrollment := internshipModels.EnrollmentRequest{
		UserID:           userID,
		InternshipID:     internshipID,
		StudentName:      user.Name,
		InternshipTitle:  program.Title,
		Status:           internshipModels.StatusPending,
		CompletionStatus: internshipModels.CompletionNotRequested,
		WithdrawalStatus: internshipModels.WithdrawalNotRequested,
		Live:             &live,
	}
	if err := s.DB.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a simultaneous request for the same pair
			var winner internshipModels.EnrollmentRequest
			if lookupErr := s.DB.Where("user_id = ? AND internship_id = ? AND live = ?",
				userID, internshipID, true).First(&winner).Error; lookupErr == nil {
				return &winner, models.ErrAlreadyExists
			}
			return nil, models.ErrAlreadyExists
		}
		return nil, err
	}

	return &enrollment, nil
}

// Approve moves PENDING -> APPROVED, sets the internship window from the
// program duration, makes the offer letter and MOU available, increments the
// internship's enrolled counter (capacity-guarded) and adds the internship
// to the student's enrolled list.
func (s *Service) Approve(enrollmentID, adminID uint, note string) (*internshipModels.EnrollmentRequest, error) {
	enrollment, err := s.GetByID(enrollmentID)
	if err != nil {
		return nil, err
	}

	var program internshipModels.Internship
	if err := s.DB.Where("id = ? AND is_deleted = ?", enrollment.InternshipID, false).First(&program).Error; err != nil {
		return nil, models.ErrNotFound
	}

	now := time.Now()
	endDate := now.Add(time.Duration(program.DurationWeeks) * 7 * 24 * time.Hour)

	tx := s.DB.Begin()

	result := tx.Model(&internshipModels.EnrollmentRequest{}).
		Where("id = ? AND status = ?", enrollment.ID, internshipModels.StatusPending).
		Updates(map[string]interface{}{
			"status":                 internshipModels.StatusApproved,
			"approved_at":            now,
			"approved_by":            adminID,
			"admin_note":             note,
			"start_date":             now,
			"end_date":               endDate,
			"mou_generated":          true,
			"offer_letter_generated": true,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, models.ErrInvalidState
	}

	// Atomic, capacity-guarded counter increment. MaxStudents 0 means
	// unlimited seats.
	result = tx.Model(&internshipModels.Internship{}).
		Where("id = ? AND (max_students = 0 OR enrolled < max_students)", program.ID).
		Update("enrolled", gorm.Expr("enrolled + 1"))
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, models.ErrCapacityExceeded
	}

	if err := addEnrolledInternship(tx, enrollment.UserID, enrollment.InternshipID); err != nil {
		tx.Rollback()
		return nil, err
	}

	createNotification(tx, enrollment.UserID,
		"Enrollment Approved",
		"Your enrollment for "+enrollment.InternshipTitle+" has been approved. Check your documents for the offer letter and MOU.",
		models.NotificationEnrollment,
		"/internships/"+itoa(enrollment.InternshipID))

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetByID(enrollment.ID)
}

// Reject moves PENDING -> REJECTED. Terminal.
func (s *Service) Reject(enrollmentID, adminID uint, note string) (*internshipModels.EnrollmentRequest, error) {
	enrollment, err := s.GetByID(enrollmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tx := s.DB.Begin()

	result := tx.Model(&internshipModels.EnrollmentRequest{}).
		Where("id = ? AND status = ?", enrollment.ID, internshipModels.StatusPending).
		Updates(map[string]interface{}{
			"status":      internshipModels.StatusRejected,
			"rejected_at": now,
			"rejected_by": adminID,
			"admin_note":  note,
			"live":        nil,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, models.ErrInvalidState
	}

	createNotification(tx, enrollment.UserID,
		"Enrollment Rejected",
		"Your enrollment request for "+enrollment.InternshipTitle+" was rejected.",
		models.NotificationEnrollment, "")

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetByID(enrollment.ID)
}

// RequestCompletion moves (APPROVED, NOT_REQUESTED) -> (APPROVED,
// PENDING_REVIEW) with a fresh progress snapshot. Student-initiated, so all
// admins are notified.
func (s *Service) RequestCompletion(userID, internshipID uint) (*internshipModels.EnrollmentRequest, error) {
	enrollment, err := s.GetStatus(userID, internshipID)
	if err != nil {
		return nil, err
	}
	return s.startCompletion(enrollment, true)
}

// AdminInitiateCompletion is the admin-side counterpart of
// RequestCompletion, keyed by enrollment id and without the admin
// broadcast.
func (s *Service) AdminInitiateCompletion(enrollmentID, adminID uint) (*internshipModels.EnrollmentRequest, error) {
	enrollment, err := s.GetByID(enrollmentID)
	if err != nil {
		return nil, err
	}
	return s.startCompletion(enrollment, false)
}

func (s *Service) startCompletion(enrollment *internshipModels.EnrollmentRequest, notifyAdminSide bool) (*internshipModels.EnrollmentRequest, error) {
	snapshot, err := computeProgress(s.DB, enrollment.UserID, enrollment.InternshipID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tx := s.DB.Begin()

	result := tx.Model(&internshipModels.EnrollmentRequest{}).
		Where("id = ? AND status = ? AND completion_status = ?",
			enrollment.ID, internshipModels.StatusApproved, internshipModels.CompletionNotRequested).
		Updates(map[string]interface{}{
			"completion_status":       internshipModels.CompletionPendingReview,
			"tasks_completed":         snapshot.TasksCompleted,
			"total_tasks":             snapshot.TotalTasks,
			"total_points":            snapshot.TotalPoints,
			"completion_requested_at": now,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, models.ErrInvalidState
	}

	if notifyAdminSide {
		notifyAdmins(tx,
			"Completion Review Requested",
			enrollment.StudentName+" has requested completion review for "+enrollment.InternshipTitle+".",
			models.NotificationCompletion,
			"/admin/enrollments/"+itoa(enrollment.ID))
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetByID(enrollment.ID)
}

// Review moves (APPROVED, PENDING_REVIEW) -> (APPROVED, REVIEWED), storing
// marks, feedback and the derived grade, and makes the completion letter
// available. Marks outside 0..50 are rejected before any mutation. A record
// already REVIEWED conflicts; corrections go through ReopenReview.
func (s *Service) Review(enrollmentID, adminID uint, marks int, feedback string) (*internshipModels.EnrollmentRequest, error) {
	if marks < 0 || marks > internshipModels.MaxMarks {
		return nil, models.ErrOutOfRange
	}

	enrollment, err := s.GetByID(enrollmentID)
	if err != nil {
		return nil, err
	}

	grade := GradeForMarks(marks)
	now := time.Now()
	tx := s.DB.Begin()

	result := tx.Model(&internshipModels.EnrollmentRequest{}).
		Where("id = ? AND status = ? AND completion_status = ?",
			enrollment.ID, internshipModels.StatusApproved, internshipModels.CompletionPendingReview).
		Updates(map[string]interface{}{
			"completion_status":           internshipModels.CompletionReviewed,
			"marks":                       marks,
			"grade":                       grade,
			"admin_feedback":              feedback,
			"reviewed_at":                 now,
			"reviewed_by":                 adminID,
			"completion_letter_generated": true,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, models.ErrInvalidState
	}

	createNotification(tx, enrollment.UserID,
		"Completion Reviewed",
		"Your internship "+enrollment.InternshipTitle+" has been reviewed. Grade: "+grade+".",
		models.NotificationCompletion, "")

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetByID(enrollment.ID)
}

// ReopenReview moves (APPROVED, REVIEWED) back to (APPROVED,
// PENDING_REVIEW) so marks can be corrected. Refused once a certificate has
// been issued. Marks and grade are cleared so they are only ever set on a
// reviewed record.
func (s *Service) ReopenReview(enrollmentID, adminID uint) (*internshipModels.EnrollmentRequest, error) {
	enrollment, err := s.GetByID(enrollmentID)
	if err != nil {
		return nil, err
	}

	tx := s.DB.Begin()

	result := tx.Model(&internshipModels.EnrollmentRequest{}).
		Where("id = ? AND status = ? AND completion_status = ? AND certificate_id IS NULL",
			enrollment.ID, internshipModels.StatusApproved, internshipModels.CompletionReviewed).
		Updates(map[string]interface{}{
			"completion_status":           internshipModels.CompletionPendingReview,
			"marks":                       nil,
			"grade":                       nil,
			"reviewed_at":                 nil,
			"reviewed_by":                 nil,
			"completion_letter_generated": false,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, models.ErrInvalidState
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetByID(enrollment.ID)
}

// IssueCertificate moves (APPROVED, REVIEWED) -> (APPROVED,
// CERTIFICATE_ISSUED), creating the immutable certificate exactly once. A
// repeat call returns the existing certificate with ErrAlreadyExists; the
// caller treats that as "already done", not as a fault.
func (s *Service) IssueCertificate(enrollmentID, adminID uint) (*internshipModels.EnrollmentRequest, *internshipModels.Certificate, error) {
	enrollment, err := s.GetByID(enrollmentID)
	if err != nil {
		return nil, nil, err
	}

	if enrollment.CertificateID != nil {
		var existing internshipModels.Certificate
		if err := s.DB.Where("id = ?", *enrollment.CertificateID).First(&existing).Error; err != nil {
			return enrollment, nil, models.ErrAlreadyExists
		}
		return enrollment, &existing, models.ErrAlreadyExists
	}

	if enrollment.CompletionStatus != internshipModels.CompletionReviewed {
		return enrollment, nil, models.ErrInvalidState
	}

	tx := s.DB.Begin()

	certificate, err := s.issueCertificateTx(tx, enrollment, adminID)
	if err != nil {
		tx.Rollback()
		if err == models.ErrAlreadyExists {
			return enrollment, certificate, err
		}
		return enrollment, nil, err
	}

	createNotification(tx, enrollment.UserID,
		"Certificate Issued",
		"Your certificate for "+enrollment.InternshipTitle+" has been issued. Verification code: "+certificate.VerificationCode,
		models.NotificationCertificate,
		"/certificates/"+certificate.VerificationCode)

	if err := tx.Commit().Error; err != nil {
		return enrollment, nil, err
	}

	updated, err := s.GetByID(enrollment.ID)
	if err != nil {
		return enrollment, certificate, nil
	}
	return updated, certificate, nil
}

// issueCertificateTx performs the existence-checked certificate insert and
// the guarded enrollment update inside the caller's transaction.
func (s *Service) issueCertificateTx(tx *gorm.DB, enrollment *internshipModels.EnrollmentRequest, adminID uint) (*internshipModels.Certificate, error) {
	// Lookup-before-create: at most one certificate per (student, internship)
	var existing internshipModels.Certificate
	err := tx.Where("user_id = ? AND internship_id = ? AND is_deleted = ?",
		enrollment.UserID, enrollment.InternshipID, false).First(&existing).Error
	if err == nil {
		return &existing, models.ErrAlreadyExists
	}

	certificate, err := certificates.IssueForInternship(tx,
		enrollment.UserID, enrollment.StudentName,
		enrollment.InternshipID, enrollment.InternshipTitle,
		enrollment.Marks, enrollment.Grade, adminID)
	if err != nil {
		return nil, err
	}

	result := tx.Model(&internshipModels.EnrollmentRequest{}).
		Where("id = ? AND status = ? AND completion_status = ? AND certificate_id IS NULL",
			enrollment.ID, internshipModels.StatusApproved, internshipModels.CompletionReviewed).
		Updates(map[string]interface{}{
			"completion_status": internshipModels.CompletionCertificateIssued,
			"certificate_id":    certificate.ID,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Lost the race. If another issuance got there first the record now
		// points at its certificate; surface that one so the caller sees the
		// same "already issued" outcome as a serial repeat.
		var current internshipModels.EnrollmentRequest
		if err := tx.Where("id = ?", enrollment.ID).First(&current).Error; err == nil && current.CertificateID != nil {
			var winner internshipModels.Certificate
			if err := tx.First(&winner, *current.CertificateID).Error; err == nil {
				return &winner, models.ErrAlreadyExists
			}
		}
		return nil, models.ErrInvalidState
	}

	return certificate, nil
}

// CompleteDirectly is the compound admin action: start completion if not
// yet requested, review with the given marks, and optionally issue the
// certificate, all in one transaction. It applies the same preconditions as
// the composed steps and cannot run once a certificate has been issued.
func (s *Service) CompleteDirectly(enrollmentID, adminID uint, marks int, feedback string, issueCert bool) (*internshipModels.EnrollmentRequest, *internshipModels.Certificate, error) {
	if marks < 0 || marks > internshipModels.MaxMarks {
		return nil, nil, models.ErrOutOfRange
	}

	enrollment, err := s.GetByID(enrollmentID)
	if err != nil {
		return nil, nil, err
	}
	if enrollment.CompletionStatus == internshipModels.CompletionCertificateIssued ||
		enrollment.CompletionStatus == internshipModels.CompletionReviewed {
		return enrollment, nil, models.ErrInvalidState
	}

	grade := GradeForMarks(marks)
	now := time.Now()
	tx := s.DB.Begin()

	// Step 1: start completion with a fresh snapshot, unless the student
	// already requested it.
	if enrollment.CompletionStatus == internshipModels.CompletionNotRequested {
		snapshot, err := computeProgress(tx, enrollment.UserID, enrollment.InternshipID)
		if err != nil {
			tx.Rollback()
			return nil, nil, err
		}

		result := tx.Model(&internshipModels.EnrollmentRequest{}).
			Where("id = ? AND status = ? AND completion_status = ?",
				enrollment.ID, internshipModels.StatusApproved, internshipModels.CompletionNotRequested).
			Updates(map[string]interface{}{
				"completion_status":       internshipModels.CompletionPendingReview,
				"tasks_completed":         snapshot.TasksCompleted,
				"total_tasks":             snapshot.TotalTasks,
				"total_points":            snapshot.TotalPoints,
				"completion_requested_at": now,
			})
		if result.Error != nil {
			tx.Rollback()
			return nil, nil, result.Error
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			return nil, nil, models.ErrInvalidState
		}
	}

	// Step 2: review
	result := tx.Model(&internshipModels.EnrollmentRequest{}).
		Where("id = ? AND status = ? AND completion_status = ?",
			enrollment.ID, internshipModels.StatusApproved, internshipModels.CompletionPendingReview).
		Updates(map[string]interface{}{
			"completion_status":           internshipModels.CompletionReviewed,
			"marks":                       marks,
			"grade":                       grade,
			"admin_feedback":              feedback,
			"reviewed_at":                 now,
			"reviewed_by":                 adminID,
			"completion_letter_generated": true,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, nil, models.ErrInvalidState
	}

	// Step 3: optional certificate
	var certificate *internshipModels.Certificate
	if issueCert {
		reviewed := *enrollment
		reviewed.Marks = &marks
		reviewed.Grade = &grade

		certificate, err = s.issueCertificateTx(tx, &reviewed, adminID)
		if err != nil {
			tx.Rollback()
			return nil, nil, err
		}
	}

	createNotification(tx, enrollment.UserID,
		"Internship Completed",
		"Your internship "+enrollment.InternshipTitle+" has been marked complete. Grade: "+grade+".",
		models.NotificationCompletion, "")

	// Same side effects as the standalone issuance path
	if certificate != nil {
		createNotification(tx, enrollment.UserID,
			"Certificate Issued",
			"Your certificate for "+enrollment.InternshipTitle+" has been issued. Verification code: "+certificate.VerificationCode,
			models.NotificationCertificate,
			"/certificates/"+certificate.VerificationCode)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, nil, err
	}

	updated, err := s.GetByID(enrollment.ID)
	if err != nil {
		return enrollment, certificate, nil
	}
	return updated, certificate, nil
}

// RequestWithdrawal moves the withdrawal sub-status to PENDING on an
// APPROVED enrollment. A previously rejected withdrawal may be re-requested;
// a withdrawal already pending conflicts with ErrAlreadyExists.
func (s *Service) RequestWithdrawal(userID, internshipID uint, reason string) (*internshipModels.EnrollmentRequest, error) {
	enrollment, err := s.GetStatus(userID, internshipID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tx := s.DB.Begin()

	result := tx.Model(&internshipModels.EnrollmentRequest{}).
		Where("id = ? AND status = ? AND withdrawal_status IN ?",
			enrollment.ID, internshipModels.StatusApproved,
			[]internshipModels.WithdrawalStatus{
				internshipModels.WithdrawalNotRequested,
				internshipModels.WithdrawalRejected,
			}).
		Updates(map[string]interface{}{
			"withdrawal_status":       internshipModels.WithdrawalPending,
			"withdrawal_reason":       reason,
			"withdrawal_requested_at": now,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		current, err := s.GetByID(enrollment.ID)
		if err == nil && current.Status == internshipModels.StatusApproved &&
			current.WithdrawalStatus == internshipModels.WithdrawalPending {
			return current, models.ErrAlreadyExists
		}
		return nil, models.ErrInvalidState
	}

	notifyAdmins(tx,
		"Withdrawal Requested",
		enrollment.StudentName+" has requested withdrawal from "+enrollment.InternshipTitle+". Reason: "+reason,
		models.NotificationWithdrawal,
		"/admin/enrollments/"+itoa(enrollment.ID))

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetByID(enrollment.ID)
}

// ApproveWithdrawal moves withdrawal PENDING -> APPROVED and the primary
// status APPROVED -> WITHDRAWN. The internship leaves the student's enrolled
// list, the enrolled counter decrements exactly once (floor-guarded at
// zero), and the completion sub-status freezes as-is. Partial-completion and
// relieving documents become available; offer letter and MOU remain as
// history.
func (s *Service) ApproveWithdrawal(enrollmentID, adminID uint, note string) (*internshipModels.EnrollmentRequest, error) {
	enrollment, err := s.GetByID(enrollmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tx := s.DB.Begin()

	result := tx.Model(&internshipModels.EnrollmentRequest{}).
		Where("id = ? AND status = ? AND withdrawal_status = ?",
			enrollment.ID, internshipModels.StatusApproved, internshipModels.WithdrawalPending).
		Updates(map[string]interface{}{
			"status":                 internshipModels.StatusWithdrawn,
			"withdrawal_status":      internshipModels.WithdrawalApproved,
			"withdrawal_approved_at": now,
			"withdrawal_approved_by": adminID,
			"admin_note":             note,
			"live":                   nil,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, models.ErrInvalidState
	}

	// Floor-guarded decrement; zero rows means the counter was already at
	// the floor.
	result = tx.Model(&internshipModels.Internship{}).
		Where("id = ? AND enrolled > 0", enrollment.InternshipID).
		Update("enrolled", gorm.Expr("enrolled - 1"))
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}

	if err := removeEnrolledInternship(tx, enrollment.UserID, enrollment.InternshipID); err != nil {
		tx.Rollback()
		return nil, err
	}

	createNotification(tx, enrollment.UserID,
		"Withdrawal Approved",
		"Your withdrawal from "+enrollment.InternshipTitle+" has been approved. Your relieving letter is now available.",
		models.NotificationWithdrawal, "")

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetByID(enrollment.ID)
}

// RejectWithdrawal moves withdrawal PENDING -> REJECTED. The primary status
// is untouched and the student may request again.
func (s *Service) RejectWithdrawal(enrollmentID, adminID uint, note string) (*internshipModels.EnrollmentRequest, error) {
	enrollment, err := s.GetByID(enrollmentID)
	if err != nil {
		return nil, err
	}

	tx := s.DB.Begin()

	result := tx.Model(&internshipModels.EnrollmentRequest{}).
		Where("id = ? AND status = ? AND withdrawal_status = ?",
			enrollment.ID, internshipModels.StatusApproved, internshipModels.WithdrawalPending).
		Updates(map[string]interface{}{
			"withdrawal_status": internshipModels.WithdrawalRejected,
			"admin_note":        note,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, models.ErrInvalidState
	}

	createNotification(tx, enrollment.UserID,
		"Withdrawal Rejected",
		"Your withdrawal request for "+enrollment.InternshipTitle+" was not approved.",
		models.NotificationWithdrawal, "")

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetByID(enrollment.ID)
}
