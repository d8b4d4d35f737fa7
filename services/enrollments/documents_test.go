package enrollments

import (
	"internhub/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentKind(t *testing.T) {
	kind, err := ParseDocumentKind("OFFER_LETTER")
	require.NoError(t, err)
	assert.Equal(t, DocOfferLetter, kind)

	_, err = ParseDocumentKind("PAYSLIP")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDocumentAvailability(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)

	// Pending request: no documents at all
	pending, err := svc.Request(student.ID, program.ID)
	require.NoError(t, err)
	assert.Empty(t, AvailableDocuments(pending))
	_, err = BuildDocumentPayload(DocOfferLetter, pending, student, program)
	assert.ErrorIs(t, err, models.ErrInvalidState)

	// Approval releases the offer letter and MOU
	approved, err := svc.Approve(pending.ID, admin.ID, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []DocumentKind{DocOfferLetter, DocMOU}, AvailableDocuments(approved))

	payload, err := BuildDocumentPayload(DocOfferLetter, approved, student, program)
	require.NoError(t, err)
	assert.Equal(t, "Asha", payload.StudentName)
	assert.Equal(t, "Acme Corp", payload.Company)
	assert.Equal(t, approved.StartDate, payload.StartDate)

	// Completion letter needs a finished review
	_, err = BuildDocumentPayload(DocCompletionLetter, approved, student, program)
	assert.ErrorIs(t, err, models.ErrInvalidState)

	_, err = svc.RequestCompletion(student.ID, program.ID)
	require.NoError(t, err)
	reviewed, err := svc.Review(approved.ID, admin.ID, 42, "good")
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]DocumentKind{DocOfferLetter, DocMOU, DocCompletionLetter},
		AvailableDocuments(reviewed))

	letter, err := BuildDocumentPayload(DocCompletionLetter, reviewed, student, program)
	require.NoError(t, err)
	require.NotNil(t, letter.Marks)
	assert.Equal(t, 42, *letter.Marks)
	require.NotNil(t, letter.Grade)
	assert.Equal(t, "A", *letter.Grade)
}

func TestWithdrawalDocuments(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	admin := seedAdmin(t, db, "admin@test.dev")
	program := seedInternship(t, db, "Backend Internship", 5, 8)
	enrollment := approvedEnrollment(t, svc, student, program, admin.ID)

	// Exit documents only exist after an approved withdrawal
	_, err := BuildDocumentPayload(DocRelievingLetter, enrollment, student, program)
	assert.ErrorIs(t, err, models.ErrInvalidState)

	_, err = svc.RequestWithdrawal(student.ID, program.ID, "relocating")
	require.NoError(t, err)
	withdrawn, err := svc.ApproveWithdrawal(enrollment.ID, admin.ID, "")
	require.NoError(t, err)

	// Offer letter and MOU remain as history of the approval
	assert.ElementsMatch(t,
		[]DocumentKind{DocOfferLetter, DocMOU, DocPartialCompletionLetter, DocRelievingLetter},
		AvailableDocuments(withdrawn))

	relieving, err := BuildDocumentPayload(DocRelievingLetter, withdrawn, student, program)
	require.NoError(t, err)
	assert.Equal(t, "relocating", relieving.WithdrawalReason)
	assert.Equal(t, withdrawn.WithdrawalApprovedAt, relieving.WithdrawalDate)

	kinds, err := svc.GetDocumentsForStudent(student.ID, program.ID)
	require.NoError(t, err)
	assert.Len(t, kinds, 4)
}
