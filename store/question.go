package store

import (
	"context"
	"fmt"

	"runji/models"

	"gorm.io/gorm"
)

// QuestionsByExam returns the answer key of an exam ordered by question number.
func QuestionsByExam(ctx context.Context, db *gorm.DB, examID uint) ([]models.Question, error) {
	var questions []models.Question
	err := db.WithContext(ctx).
		Where("exam_id = ?", examID).
		Order("question_number").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("list questions of exam %d: %w", examID, err)
	}
	return questions, nil
}

// CountQuestionsBySubject counts the questions of every exam with the given subject.
func CountQuestionsBySubject(ctx context.Context, db *gorm.DB, subject string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&models.Question{}).
		Where("exam_id IN (?)", db.Model(&models.Exam{}).Select("id").Where("subject = ?", subject)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count questions of %s: %w", subject, err)
	}
	return count, nil
}

// CountQuestionsInRange counts questions of the subject numbered from start to
// end inclusive. A non-empty school limits the count to that school's exams.
func CountQuestionsInRange(ctx context.Context, db *gorm.DB, subject, school string, start, end int) (int64, error) {
	exams := db.Model(&models.Exam{}).Select("id").Where("subject = ?", subject)
	if school != "" {
		exams = exams.Where("school_name = ?", school)
	}

	var count int64
	err := db.WithContext(ctx).
		Model(&models.Question{}).
		Where("exam_id IN (?)", exams).
		Where("question_number BETWEEN ? AND ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count questions %d-%d of %s: %w", start, end, subject, err)
	}
	return count, nil
}
