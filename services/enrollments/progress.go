package enrollments

import (
	internshipModels "internhub/models/internship"

	"gorm.io/gorm"
)

// ProgressSnapshot is the recomputed task progress for one (student,
// internship) pair.
type ProgressSnapshot struct {
	TasksCompleted int `json:"tasks_completed"`
	TotalTasks     int `json:"total_tasks"`
	TotalPoints    int `json:"total_points"`
}

// computeProgress recomputes the snapshot from scratch. Task definitions and
// submission reviews can change after enrollment, so cached values are never
// trusted by completion transitions.
func computeProgress(db *gorm.DB, userID, internshipID uint) (ProgressSnapshot, error) {
	var snapshot ProgressSnapshot

	// Active tasks for the internship
	var taskIDs []uint
	if err := db.Model(&internshipModels.Task{}).
		Where("internship_id = ? AND is_active = ? AND is_deleted = ?", internshipID, true, false).
		Pluck("id", &taskIDs).Error; err != nil {
		return snapshot, err
	}

	snapshot.TotalTasks = len(taskIDs)
	if len(taskIDs) == 0 {
		return snapshot, nil
	}

	// Distinct tasks with an approved submission from this student
	var completed int64
	if err := db.Model(&internshipModels.Submission{}).
		Where("user_id = ? AND task_id IN ? AND status = ? AND is_deleted = ?",
			userID, taskIDs, internshipModels.SubmissionApproved, false).
		Distinct("task_id").
		Count(&completed).Error; err != nil {
		return snapshot, err
	}
	snapshot.TasksCompleted = int(completed)

	// Sum of points awarded over approved submissions
	var points int64
	if err := db.Model(&internshipModels.Submission{}).
		Where("user_id = ? AND task_id IN ? AND status = ? AND is_deleted = ?",
			userID, taskIDs, internshipModels.SubmissionApproved, false).
		Select("COALESCE(SUM(awarded_points), 0)").
		Scan(&points).Error; err != nil {
		return snapshot, err
	}
	snapshot.TotalPoints = int(points)

	return snapshot, nil
}

// ComputeProgress exposes the fresh snapshot for read-only callers
// (progress endpoints, dashboards).
func (s *Service) ComputeProgress(userID, internshipID uint) (ProgressSnapshot, error) {
	return computeProgress(s.DB, userID, internshipID)
}
