package enrollments

import internshipModels "internhub/models/internship"

// GradeForMarks maps completion marks (0..50) to a letter grade by
// percentage: >=90 A+, >=80 A, >=70 B+, >=60 B, >=50 C, >=40 D, else F.
// Range checking is the caller's job (the state machine rejects marks
// outside 0..50 before grading).
func GradeForMarks(marks int) string {
	percent := marks * 100 / internshipModels.MaxMarks

	switch {
	case percent >= 90:
		return "A+"
	case percent >= 80:
		return "A"
	case percent >= 70:
		return "B+"
	case percent >= 60:
		return "B"
	case percent >= 50:
		return "C"
	case percent >= 40:
		return "D"
	default:
		return "F"
	}
}
