package store

import (
	"context"
	"fmt"
	"time"

	"runji/models"
	"runji/validators"

	"gorm.io/gorm"
)

// CreateSubmission validates sub and inserts it. SubmittedAt is assigned by the server.
func CreateSubmission(ctx context.Context, db *gorm.DB, sub *models.Submission) error {
	if err := validators.Insert(sub); err != nil {
		return err
	}
	if sub.Answers == nil {
		sub.Answers = []models.StudentAnswer{}
	}
	if sub.UnitResults == nil {
		sub.UnitResults = []models.UnitResult{}
	}

	sub.SubmittedAt = time.Time{} // filled in by autoCreateTime

	if err := db.WithContext(ctx).Create(sub).Error; err != nil {
		return fmt.Errorf("create submission for %s: %w", sub.StudentID, err)
	}
	return nil
}

// SubmissionsByStudent lists a student's submissions, newest first.
func SubmissionsByStudent(ctx context.Context, db *gorm.DB, studentID string) ([]models.Submission, error) {
	var subs []models.Submission
	err := db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("submitted_at DESC").
		Order("id DESC").
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("list submissions for %s: %w", studentID, err)
	}
	return subs, nil
}
