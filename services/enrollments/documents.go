package enrollments

import (
	"internhub/models"
	internshipModels "internhub/models/internship"
	"time"
)

// DocumentKind identifies one of the lifecycle documents available to a
// student on an enrollment record.
type DocumentKind string

const (
	DocOfferLetter             DocumentKind = "OFFER_LETTER"
	DocMOU                     DocumentKind = "MOU"
	DocCompletionLetter        DocumentKind = "COMPLETION_LETTER"
	DocPartialCompletionLetter DocumentKind = "PARTIAL_COMPLETION_LETTER"
	DocRelievingLetter         DocumentKind = "RELIEVING_LETTER"
)

var allDocumentKinds = []DocumentKind{
	DocOfferLetter,
	DocMOU,
	DocCompletionLetter,
	DocPartialCompletionLetter,
	DocRelievingLetter,
}

// ParseDocumentKind maps a route parameter to a document kind.
func ParseDocumentKind(raw string) (DocumentKind, error) {
	for _, kind := range allDocumentKinds {
		if string(kind) == raw {
			return kind, nil
		}
	}
	return "", models.ErrNotFound
}

// DocumentPayload carries everything the renderer needs for one document.
// Building it never mutates state; documents are derived, not stored.
type DocumentPayload struct {
	Kind             DocumentKind `json:"kind"`
	StudentName      string       `json:"student_name"`
	StudentEmail     string       `json:"student_email"`
	College          string       `json:"college"`
	InternshipTitle  string       `json:"internship_title"`
	Company          string       `json:"company"`
	DurationWeeks    int          `json:"duration_weeks"`
	StartDate        *time.Time   `json:"start_date"`
	EndDate          *time.Time   `json:"end_date"`
	TasksCompleted   int          `json:"tasks_completed"`
	TotalTasks       int          `json:"total_tasks"`
	TotalPoints      int          `json:"total_points"`
	Marks            *int         `json:"marks,omitempty"`
	Grade            *string      `json:"grade,omitempty"`
	WithdrawalReason string       `json:"withdrawal_reason,omitempty"`
	WithdrawalDate   *time.Time   `json:"withdrawal_date,omitempty"`
	IssuedOn         time.Time    `json:"issued_on"`
}

// documentAvailable reports whether the enrollment state entitles the
// student to the document. Offer letter and MOU survive withdrawal as
// history of the approval.
func documentAvailable(enrollment *internshipModels.EnrollmentRequest, kind DocumentKind) bool {
	switch kind {
	case DocOfferLetter:
		return enrollment.OfferLetterGenerated
	case DocMOU:
		return enrollment.MouGenerated
	case DocCompletionLetter:
		return enrollment.CompletionLetterGenerated &&
			(enrollment.CompletionStatus == internshipModels.CompletionReviewed ||
				enrollment.CompletionStatus == internshipModels.CompletionCertificateIssued)
	case DocPartialCompletionLetter, DocRelievingLetter:
		return enrollment.Status == internshipModels.StatusWithdrawn &&
			enrollment.WithdrawalStatus == internshipModels.WithdrawalApproved
	}
	return false
}

// AvailableDocuments lists the document kinds the enrollment currently
// entitles the student to.
func AvailableDocuments(enrollment *internshipModels.EnrollmentRequest) []DocumentKind {
	kinds := []DocumentKind{}
	for _, kind := range allDocumentKinds {
		if documentAvailable(enrollment, kind) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// BuildDocumentPayload assembles the render payload for one document,
// refusing with ErrInvalidState when the lifecycle prerequisites are not
// met.
func BuildDocumentPayload(kind DocumentKind, enrollment *internshipModels.EnrollmentRequest,
	user *models.User, program *internshipModels.Internship) (*DocumentPayload, error) {

	if !documentAvailable(enrollment, kind) {
		return nil, models.ErrInvalidState
	}

	payload := DocumentPayload{
		Kind:            kind,
		StudentName:     enrollment.StudentName,
		StudentEmail:    user.Email,
		College:         user.College,
		InternshipTitle: enrollment.InternshipTitle,
		Company:         program.Company,
		DurationWeeks:   program.DurationWeeks,
		StartDate:       enrollment.StartDate,
		EndDate:         enrollment.EndDate,
		TasksCompleted:  enrollment.TasksCompleted,
		TotalTasks:      enrollment.TotalTasks,
		TotalPoints:     enrollment.TotalPoints,
		IssuedOn:        time.Now(),
	}

	switch kind {
	case DocCompletionLetter:
		payload.Marks = enrollment.Marks
		payload.Grade = enrollment.Grade
	case DocPartialCompletionLetter, DocRelievingLetter:
		payload.WithdrawalReason = enrollment.WithdrawalReason
		payload.WithdrawalDate = enrollment.WithdrawalApprovedAt
	}

	return &payload, nil
}

// GetDocumentsForStudent lists the documents currently available on the
// student's enrollment for the internship.
func (s *Service) GetDocumentsForStudent(userID, internshipID uint) ([]DocumentKind, error) {
	enrollment, err := s.GetStatus(userID, internshipID)
	if err != nil {
		return nil, err
	}
	return AvailableDocuments(enrollment), nil
}

// BuildDocument loads the enrollment, student and internship rows and
// assembles the payload for the requested document kind.
func (s *Service) BuildDocument(userID, internshipID uint, kind DocumentKind) (*DocumentPayload, error) {
	enrollment, err := s.GetStatus(userID, internshipID)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.DB.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, models.ErrNotFound
	}

	var program internshipModels.Internship
	if err := s.DB.Where("id = ?", internshipID).First(&program).Error; err != nil {
		return nil, models.ErrNotFound
	}

	return BuildDocumentPayload(kind, enrollment, &user, &program)
}
