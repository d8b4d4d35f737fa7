package enrollments

import (
	"internhub/models"
	internshipModels "internhub/models/internship"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)

	enrollment, err := svc.Request(student.ID, program.ID)
	require.NoError(t, err)
	assert.Equal(t, internshipModels.StatusPending, enrollment.Status)
	assert.Equal(t, internshipModels.CompletionNotRequested, enrollment.CompletionStatus)
	assert.Equal(t, internshipModels.WithdrawalNotRequested, enrollment.WithdrawalStatus)
	assert.Equal(t, "Asha", enrollment.StudentName)
	assert.Equal(t, "Backend Internship", enrollment.InternshipTitle)

	// A second request while one is live conflicts
	duplicate, err := svc.Request(student.ID, program.ID)
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
	require.NotNil(t, duplicate)
	assert.Equal(t, enrollment.ID, duplicate.ID)
}

func TestRequestEnrollmentConcurrent(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Request(student.ID, program.ID)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, models.ErrAlreadyExists)
		}
	}
	assert.Equal(t, 1, wins, "exactly one request must win")

	// The unique index holds: one live record for the pair
	var liveCount int64
	require.NoError(t, db.Model(&internshipModels.EnrollmentRequest{}).
		Where("user_id = ? AND internship_id = ? AND live = ?", student.ID, program.ID, true).
		Count(&liveCount).Error)
	assert.Equal(t, int64(1), liveCount)
}

func TestRequestEnrollmentUniqueLiveSlot(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)

	first, err := svc.Request(student.ID, program.ID)
	require.NoError(t, err)

	// A direct insert that slips past the lookup still hits the index and
	// surfaces the live record
	live := true
	duplicate := internshipModels.EnrollmentRequest{
		UserID:           student.ID,
		InternshipID:     program.ID,
		StudentName:      student.Name,
		InternshipTitle:  program.Title,
		Status:           internshipModels.StatusPending,
		CompletionStatus: internshipModels.CompletionNotRequested,
		WithdrawalStatus: internshipModels.WithdrawalNotRequested,
		Live:             &live,
	}
	err = db.Create(&duplicate).Error
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&internshipModels.EnrollmentRequest{}).
		Where("user_id = ? AND internship_id = ?", student.ID, program.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	winner, err := svc.Request(student.ID, program.ID)
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
	require.NotNil(t, winner)
	assert.Equal(t, first.ID, winner.ID)
}

func TestRequestEnrollmentRejectedAllowsRetry(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)

	first, err := svc.Request(student.ID, program.ID)
	require.NoError(t, err)
	_, err = svc.Reject(first.ID, admin.ID, "incomplete profile")
	require.NoError(t, err)

	second, err := svc.Request(student.ID, program.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRequestEnrollmentCapacityFull(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	program := seedInternship(t, db, "Tiny Internship", 1, 4)
	require.NoError(t, db.Model(program).Update("enrolled", 1).Error)

	_, err := svc.Request(student.ID, program.ID)
	assert.ErrorIs(t, err, models.ErrCapacityExceeded)
}

func TestRequestEnrollmentInactiveProgram(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	program := seedInternship(t, db, "Paused Internship", 5, 4)
	require.NoError(t, db.Model(program).Update("status", internshipModels.InternshipInactive).Error)

	_, err := svc.Request(student.ID, program.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestApprove(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)

	enrollment, err := svc.Request(student.ID, program.ID)
	require.NoError(t, err)

	approved, err := svc.Approve(enrollment.ID, admin.ID, "welcome")
	require.NoError(t, err)
	assert.Equal(t, internshipModels.StatusApproved, approved.Status)
	assert.True(t, approved.MouGenerated)
	assert.True(t, approved.OfferLetterGenerated)
	require.NotNil(t, approved.ApprovedAt)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, admin.ID, *approved.ApprovedBy)

	// End date is start date plus the program duration
	require.NotNil(t, approved.StartDate)
	require.NotNil(t, approved.EndDate)
	expectedEnd := approved.StartDate.Add(8 * 7 * 24 * time.Hour)
	assert.WithinDuration(t, expectedEnd, *approved.EndDate, time.Second)

	// Counter incremented exactly once
	var fresh internshipModels.Internship
	require.NoError(t, db.First(&fresh, program.ID).Error)
	assert.Equal(t, 1, fresh.Enrolled)

	// Internship added to the student's enrolled list
	var freshUser models.User
	require.NoError(t, db.First(&freshUser, student.ID).Error)
	ids, err := decodeEnrolledList(freshUser.EnrolledInternships)
	require.NoError(t, err)
	assert.Equal(t, []uint{program.ID}, ids)

	// Student notified in the same transaction
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND kind = ?", student.ID, models.NotificationEnrollment).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Approving twice conflicts
	_, err = svc.Approve(enrollment.ID, admin.ID, "again")
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestApproveConcurrent(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)

	enrollment, err := svc.Request(student.ID, program.ID)
	require.NoError(t, err)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Approve(enrollment.ID, admin.ID, "race")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, models.ErrInvalidState)
		}
	}
	assert.Equal(t, 1, wins, "exactly one approval must win")

	var fresh internshipModels.Internship
	require.NoError(t, db.First(&fresh, program.ID).Error)
	assert.Equal(t, 1, fresh.Enrolled, "counter incremented exactly once")
}

func TestApproveCapacityGuard(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Tiny Internship", 1, 4)

	first := seedStudent(t, db, "Asha", "asha@test.dev")
	second := seedStudent(t, db, "Ravi", "ravi@test.dev")

	e1, err := svc.Request(first.ID, program.ID)
	require.NoError(t, err)
	e2, err := svc.Request(second.ID, program.ID)
	require.NoError(t, err)

	_, err = svc.Approve(e1.ID, admin.ID, "")
	require.NoError(t, err)

	// The second approval trips the guarded increment and rolls back fully
	_, err = svc.Approve(e2.ID, admin.ID, "")
	assert.ErrorIs(t, err, models.ErrCapacityExceeded)

	fresh, err := svc.GetByID(e2.ID)
	require.NoError(t, err)
	assert.Equal(t, internshipModels.StatusPending, fresh.Status, "failed approval must not leave a partial state")

	var program2 internshipModels.Internship
	require.NoError(t, db.First(&program2, program.ID).Error)
	assert.Equal(t, 1, program2.Enrolled)
}

func TestRejectIsTerminal(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)

	enrollment, err := svc.Request(student.ID, program.ID)
	require.NoError(t, err)

	rejected, err := svc.Reject(enrollment.ID, admin.ID, "not a fit")
	require.NoError(t, err)
	assert.Equal(t, internshipModels.StatusRejected, rejected.Status)
	assert.Equal(t, "not a fit", rejected.AdminNote)

	_, err = svc.Approve(enrollment.ID, admin.ID, "")
	assert.ErrorIs(t, err, models.ErrInvalidState)
	_, err = svc.Reject(enrollment.ID, admin.ID, "")
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestCompletionFlow(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)
	enrollment := approvedEnrollment(t, svc, student, program, admin.ID)

	task := seedTask(t, db, program.ID, 100)
	seedApprovedSubmission(t, db, task.ID, program.ID, student.ID, 80)

	// Completion cannot be requested twice
	pending, err := svc.RequestCompletion(student.ID, program.ID)
	require.NoError(t, err)
	assert.Equal(t, internshipModels.CompletionPendingReview, pending.CompletionStatus)
	assert.Equal(t, 1, pending.TasksCompleted)
	assert.Equal(t, 1, pending.TotalTasks)
	assert.Equal(t, 80, pending.TotalPoints)
	require.NotNil(t, pending.CompletionRequestedAt)

	_, err = svc.RequestCompletion(student.ID, program.ID)
	assert.ErrorIs(t, err, models.ErrInvalidState)

	// Marks bounds checked before any mutation
	_, err = svc.Review(enrollment.ID, admin.ID, 51, "")
	assert.ErrorIs(t, err, models.ErrOutOfRange)
	_, err = svc.Review(enrollment.ID, admin.ID, -1, "")
	assert.ErrorIs(t, err, models.ErrOutOfRange)

	reviewed, err := svc.Review(enrollment.ID, admin.ID, 42, "solid work")
	require.NoError(t, err)
	assert.Equal(t, internshipModels.CompletionReviewed, reviewed.CompletionStatus)
	require.NotNil(t, reviewed.Marks)
	require.NotNil(t, reviewed.Grade)
	assert.Equal(t, 42, *reviewed.Marks)
	assert.Equal(t, "A", *reviewed.Grade)
	assert.True(t, reviewed.CompletionLetterGenerated)

	// A second review conflicts; corrections go through reopen
	_, err = svc.Review(enrollment.ID, admin.ID, 30, "")
	assert.ErrorIs(t, err, models.ErrInvalidState)

	final, certificate, err := svc.IssueCertificate(enrollment.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, internshipModels.CompletionCertificateIssued, final.CompletionStatus)
	require.NotNil(t, final.CertificateID)
	require.NotNil(t, certificate)
	assert.Equal(t, *final.CertificateID, certificate.ID)
	assert.NotEmpty(t, certificate.VerificationCode)
	require.NotNil(t, certificate.Marks)
	assert.Equal(t, 42, *certificate.Marks)

	// Issuing again returns the same certificate
	_, again, err := svc.IssueCertificate(enrollment.ID, admin.ID)
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
	require.NotNil(t, again)
	assert.Equal(t, certificate.ID, again.ID)

	var certCount int64
	require.NoError(t, db.Model(&internshipModels.Certificate{}).
		Where("user_id = ? AND internship_id = ?", student.ID, program.ID).
		Count(&certCount).Error)
	assert.Equal(t, int64(1), certCount)

	// Reopen is blocked once the certificate exists
	_, err = svc.ReopenReview(enrollment.ID, admin.ID)
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestIssueCertificateLostRaceSurfacesWinner(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)
	enrollment := approvedEnrollment(t, svc, student, program, admin.ID)

	_, err := svc.AdminInitiateCompletion(enrollment.ID, admin.ID)
	require.NoError(t, err)
	_, err = svc.Review(enrollment.ID, admin.ID, 42, "good")
	require.NoError(t, err)

	// Copy read before the race window opens
	stale, err := svc.GetByID(enrollment.ID)
	require.NoError(t, err)

	// A concurrent issuance wins after the stale read; hide its certificate
	// row from the pair lookup so the loser only learns of it from the
	// guarded update, the way a cross-connection race plays out
	_, winner, err := svc.IssueCertificate(enrollment.ID, admin.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&internshipModels.Certificate{}).
		Where("id = ?", winner.ID).Update("is_deleted", true).Error)

	tx := db.Begin()
	got, err := svc.issueCertificateTx(tx, stale, admin.ID)
	tx.Rollback()

	// The loser observes the winner's certificate, same as a serial repeat
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
	require.NotNil(t, got)
	assert.Equal(t, winner.ID, got.ID)
}

func TestIssueCertificateRequiresReview(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)
	enrollment := approvedEnrollment(t, svc, student, program, admin.ID)

	_, _, err := svc.IssueCertificate(enrollment.ID, admin.ID)
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestReopenReview(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)
	enrollment := approvedEnrollment(t, svc, student, program, admin.ID)

	_, err := svc.AdminInitiateCompletion(enrollment.ID, admin.ID)
	require.NoError(t, err)
	_, err = svc.Review(enrollment.ID, admin.ID, 20, "needs work")
	require.NoError(t, err)

	reopened, err := svc.ReopenReview(enrollment.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, internshipModels.CompletionPendingReview, reopened.CompletionStatus)
	assert.Nil(t, reopened.Marks)
	assert.Nil(t, reopened.Grade)
	assert.False(t, reopened.CompletionLetterGenerated)

	// A fresh review is allowed after reopening
	rereviewed, err := svc.Review(enrollment.ID, admin.ID, 45, "much better")
	require.NoError(t, err)
	require.NotNil(t, rereviewed.Grade)
	assert.Equal(t, "A+", *rereviewed.Grade)
}

func TestCompleteDirectly(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)
	enrollment := approvedEnrollment(t, svc, student, program, admin.ID)

	_, _, err := svc.CompleteDirectly(enrollment.ID, admin.ID, 99, "", true)
	assert.ErrorIs(t, err, models.ErrOutOfRange)

	final, certificate, err := svc.CompleteDirectly(enrollment.ID, admin.ID, 48, "excellent", true)
	require.NoError(t, err)
	assert.Equal(t, internshipModels.CompletionCertificateIssued, final.CompletionStatus)
	require.NotNil(t, final.Marks)
	assert.Equal(t, 48, *final.Marks)
	require.NotNil(t, final.Grade)
	assert.Equal(t, "A+", *final.Grade)
	require.NotNil(t, certificate)
	assert.NotEmpty(t, certificate.VerificationCode)

	// The compound path emits the same notifications as the composed steps
	var completionCount, certCount int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND kind = ?", student.ID, models.NotificationCompletion).
		Count(&completionCount).Error)
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND kind = ?", student.ID, models.NotificationCertificate).
		Count(&certCount).Error)
	assert.Equal(t, int64(1), completionCount)
	assert.Equal(t, int64(1), certCount)

	// Cannot run again after issuance
	_, _, err = svc.CompleteDirectly(enrollment.ID, admin.ID, 30, "", false)
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestCompleteDirectlyWithoutCertificate(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)
	enrollment := approvedEnrollment(t, svc, student, program, admin.ID)

	// Student already requested; direct completion picks up from there
	_, err := svc.RequestCompletion(student.ID, program.ID)
	require.NoError(t, err)

	final, certificate, err := svc.CompleteDirectly(enrollment.ID, admin.ID, 25, "average", false)
	require.NoError(t, err)
	assert.Equal(t, internshipModels.CompletionReviewed, final.CompletionStatus)
	assert.Nil(t, certificate)
	assert.Nil(t, final.CertificateID)

	// No certificate, no certificate notification
	var certCount int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND kind = ?", student.ID, models.NotificationCertificate).
		Count(&certCount).Error)
	assert.Equal(t, int64(0), certCount)
}

func TestWithdrawalFlow(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)
	enrollment := approvedEnrollment(t, svc, student, program, admin.ID)

	requested, err := svc.RequestWithdrawal(student.ID, program.ID, "moving abroad")
	require.NoError(t, err)
	assert.Equal(t, internshipModels.WithdrawalPending, requested.WithdrawalStatus)
	assert.Equal(t, "moving abroad", requested.WithdrawalReason)

	// Duplicate request while pending
	_, err = svc.RequestWithdrawal(student.ID, program.ID, "again")
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	// Rejection keeps the student enrolled and allows a re-request
	rejected, err := svc.RejectWithdrawal(enrollment.ID, admin.ID, "talk to your mentor first")
	require.NoError(t, err)
	assert.Equal(t, internshipModels.WithdrawalRejected, rejected.WithdrawalStatus)
	assert.Equal(t, internshipModels.StatusApproved, rejected.Status)

	_, err = svc.RequestWithdrawal(student.ID, program.ID, "still moving abroad")
	require.NoError(t, err)

	withdrawn, err := svc.ApproveWithdrawal(enrollment.ID, admin.ID, "good luck")
	require.NoError(t, err)
	assert.Equal(t, internshipModels.StatusWithdrawn, withdrawn.Status)
	assert.Equal(t, internshipModels.WithdrawalApproved, withdrawn.WithdrawalStatus)
	require.NotNil(t, withdrawn.WithdrawalApprovedAt)

	// Counter back down, list emptied
	var fresh internshipModels.Internship
	require.NoError(t, db.First(&fresh, program.ID).Error)
	assert.Equal(t, 0, fresh.Enrolled)

	var freshUser models.User
	require.NoError(t, db.First(&freshUser, student.ID).Error)
	ids, err := decodeEnrolledList(freshUser.EnrolledInternships)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// Completion pipeline is frozen after withdrawal
	_, err = svc.RequestCompletion(student.ID, program.ID)
	assert.ErrorIs(t, err, models.ErrInvalidState)
	_, err = svc.Review(enrollment.ID, admin.ID, 30, "")
	assert.ErrorIs(t, err, models.ErrInvalidState)

	// Withdrawal decisions are terminal
	_, err = svc.ApproveWithdrawal(enrollment.ID, admin.ID, "")
	assert.ErrorIs(t, err, models.ErrInvalidState)

	// The withdrawn record releases the pair's live slot; a fresh request
	// starts a new record
	freshRequest, err := svc.Request(student.ID, program.ID)
	require.NoError(t, err)
	assert.NotEqual(t, enrollment.ID, freshRequest.ID)
	assert.Equal(t, internshipModels.StatusPending, freshRequest.Status)
}

func TestWithdrawalRequiresApprovedEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)

	_, err := svc.Request(student.ID, program.ID)
	require.NoError(t, err)

	_, err = svc.RequestWithdrawal(student.ID, program.ID, "changed my mind")
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestWithdrawalDecrementFloor(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)
	enrollment := approvedEnrollment(t, svc, student, program, admin.ID)

	_, err := svc.RequestWithdrawal(student.ID, program.ID, "leaving")
	require.NoError(t, err)

	// Simulate a counter already at the floor; the decrement must not go
	// negative and the withdrawal still completes.
	require.NoError(t, db.Model(&internshipModels.Internship{}).
		Where("id = ?", program.ID).Update("enrolled", 0).Error)

	withdrawn, err := svc.ApproveWithdrawal(enrollment.ID, admin.ID, "")
	require.NoError(t, err)
	assert.Equal(t, internshipModels.StatusWithdrawn, withdrawn.Status)

	var fresh internshipModels.Internship
	require.NoError(t, db.First(&fresh, program.ID).Error)
	assert.Equal(t, 0, fresh.Enrolled)
}

func TestGetStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)

	_, err := svc.GetStatus(student.ID, program.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	created, err := svc.Request(student.ID, program.ID)
	require.NoError(t, err)

	fetched, err := svc.GetStatus(student.ID, program.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
}
