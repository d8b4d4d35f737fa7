package enrollments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeForMarks(t *testing.T) {
	cases := []struct {
		marks int
		grade string
	}{
		{50, "A+"},
		{45, "A+"}, // 90%
		{44, "A"},
		{42, "A"}, // 84%
		{40, "A"}, // 80%
		{39, "B+"},
		{35, "B+"}, // 70%
		{34, "B"},
		{30, "B"}, // 60%
		{29, "C"},
		{25, "C"}, // 50%
		{24, "D"},
		{20, "D"}, // 40%
		{19, "F"},
		{10, "F"},
		{0, "F"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.grade, GradeForMarks(tc.marks), "marks=%d", tc.marks)
	}
}

func TestGradeForMarksMonotonic(t *testing.T) {
	rank := map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "B+": 4, "A": 5, "A+": 6}

	prev := rank[GradeForMarks(0)]
	for marks := 1; marks <= 50; marks++ {
		current := rank[GradeForMarks(marks)]
		assert.GreaterOrEqual(t, current, prev, "grade dropped at marks=%d", marks)
		prev = current
	}
}
