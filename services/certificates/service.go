package certificates

import (
	"internhub/models"
	internshipModels "internhub/models/internship"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service reads the immutable certificate store. Issuance happens through
// IssueForInternship inside the enrollment state machine's transaction.
type Service struct {
	DB *gorm.DB
}

// NewService creates a certificate lookup service
func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// newVerificationCode generates a unique public code for a certificate.
// uuid collisions are not a practical concern but the unique index makes a
// retry loop cheap to keep.
func newVerificationCode(tx *gorm.DB) (string, error) {
	for i := 0; i < 3; i++ {
		code := uuid.NewString()
		var count int64
		if err := tx.Model(&internshipModels.Certificate{}).
			Where("verification_code = ?", code).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", models.ErrAlreadyExists
}

// IssueForInternship inserts the certificate row inside the caller's
// transaction. Certificates are snapshots; later profile or catalog edits
// never touch an issued certificate.
func IssueForInternship(tx *gorm.DB, userID uint, studentName string,
	internshipID uint, internshipTitle string,
	marks *int, grade *string, issuedBy uint) (*internshipModels.Certificate, error) {

	code, err := newVerificationCode(tx)
	if err != nil {
		return nil, err
	}

	certificate := internshipModels.Certificate{
		UserID:           userID,
		StudentName:      studentName,
		InternshipID:     &internshipID,
		InternshipTitle:  internshipTitle,
		Marks:            marks,
		Grade:            grade,
		IssueDate:        time.Now(),
		IssuedBy:         issuedBy,
		VerificationCode: code,
	}
	if err := tx.Create(&certificate).Error; err != nil {
		return nil, err
	}

	return &certificate, nil
}

// FindByCode resolves a public verification code to its certificate.
func (s *Service) FindByCode(code string) (*internshipModels.Certificate, error) {
	var certificate internshipModels.Certificate
	if err := s.DB.Where("verification_code = ? AND is_deleted = ?", code, false).
		First(&certificate).Error; err != nil {
		return nil, models.ErrNotFound
	}
	return &certificate, nil
}

// ListForUser returns all certificates issued to a student.
func (s *Service) ListForUser(userID uint) ([]internshipModels.Certificate, error) {
	var certificates []internshipModels.Certificate
	if err := s.DB.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("issue_date desc").
		Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}
