package enrollments

import (
	"encoding/json"
	"internhub/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// decodeEnrolledList reads the student's denormalized enrolled-internship id
// list. A missing or empty column decodes to an empty list.
func decodeEnrolledList(raw datatypes.JSON) ([]uint, error) {
	if len(raw) == 0 {
		return []uint{}, nil
	}
	var ids []uint
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// addEnrolledInternship appends the internship id to the student's list.
// Runs inside the approval transaction so the list and the enrollment state
// commit together.
func addEnrolledInternship(tx *gorm.DB, userID, internshipID uint) error {
	var user models.User
	if err := tx.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return err
	}

	ids, err := decodeEnrolledList(user.EnrolledInternships)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if id == internshipID {
			return nil // already present
		}
	}
	ids = append(ids, internshipID)

	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return tx.Model(&user).Update("enrolled_internships", datatypes.JSON(raw)).Error
}

// removeEnrolledInternship removes the internship id from the student's
// list. Runs inside the withdrawal-approval transaction.
func removeEnrolledInternship(tx *gorm.DB, userID, internshipID uint) error {
	var user models.User
	if err := tx.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return err
	}

	ids, err := decodeEnrolledList(user.EnrolledInternships)
	if err != nil {
		return err
	}

	filtered := ids[:0]
	for _, id := range ids {
		if id != internshipID {
			filtered = append(filtered, id)
		}
	}

	raw, err := json.Marshal(filtered)
	if err != nil {
		return err
	}
	return tx.Model(&user).Update("enrolled_internships", datatypes.JSON(raw)).Error
}
