package enrollments

import (
	internshipModels "internhub/models/internship"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	program := seedInternship(t, db, "Backend Internship", 0, 8)

	// 10 active tasks, approved submissions on 8 of them at 50 points each
	var tasks []*internshipModels.Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, seedTask(t, db, program.ID, 100))
	}
	for i := 0; i < 8; i++ {
		seedApprovedSubmission(t, db, tasks[i].ID, program.ID, student.ID, 50)
	}

	snapshot, err := svc.ComputeProgress(student.ID, program.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, snapshot.TasksCompleted)
	assert.Equal(t, 10, snapshot.TotalTasks)
	assert.Equal(t, 400, snapshot.TotalPoints)
}

func TestComputeProgressNoTasks(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	program := seedInternship(t, db, "Empty Internship", 0, 4)

	snapshot, err := svc.ComputeProgress(student.ID, program.ID)
	require.NoError(t, err)
	assert.Equal(t, ProgressSnapshot{}, snapshot)
}

func TestComputeProgressIgnoresNonApproved(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	program := seedInternship(t, db, "Backend Internship", 0, 8)
	task := seedTask(t, db, program.ID, 100)

	pending := internshipModels.Submission{
		TaskID:       task.ID,
		InternshipID: program.ID,
		UserID:       student.ID,
		Content:      "wip",
		Status:       internshipModels.SubmissionPending,
	}
	require.NoError(t, db.Create(&pending).Error)

	rejected := internshipModels.Submission{
		TaskID:        task.ID,
		InternshipID:  program.ID,
		UserID:        student.ID,
		Content:       "bad",
		Status:        internshipModels.SubmissionRejected,
		AwardedPoints: 0,
	}
	require.NoError(t, db.Create(&rejected).Error)

	snapshot, err := svc.ComputeProgress(student.ID, program.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.TasksCompleted)
	assert.Equal(t, 1, snapshot.TotalTasks)
	assert.Equal(t, 0, snapshot.TotalPoints)
}

func TestComputeProgressCountsTaskOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	student := seedStudent(t, db, "Asha", "asha@test.dev")
	program := seedInternship(t, db, "Backend Internship", 0, 8)
	task := seedTask(t, db, program.ID, 100)

	// Two approved submissions on the same task count as one completed task
	seedApprovedSubmission(t, db, task.ID, program.ID, student.ID, 40)
	seedApprovedSubmission(t, db, task.ID, program.ID, student.ID, 60)

	snapshot, err := svc.ComputeProgress(student.ID, program.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.TasksCompleted)
	assert.Equal(t, 100, snapshot.TotalPoints)
}
