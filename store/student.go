package store

import (
	"context"
	"errors"
	"fmt"

	"runji/models"
	"runji/validators"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FindOrCreateStudent returns the student with login.StudentID, registering
// them with grade on first login. An existing student's name is not changed.
func FindOrCreateStudent(ctx context.Context, db *gorm.DB, login models.Login, grade string) (*models.Student, error) {
	if err := validators.Login(&login); err != nil {
		return nil, err
	}

	student := models.Student{
		StudentID:   login.StudentID,
		StudentName: login.StudentName,
		Grade:       grade,
	}
	if err := validators.Insert(&student); err != nil {
		return nil, err
	}

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "student_id"}}, DoNothing: true}).
		Create(&student).Error
	if err != nil {
		return nil, fmt.Errorf("register student %s: %w", login.StudentID, err)
	}

	var stored models.Student
	err = db.WithContext(ctx).Where("student_id = ?", login.StudentID).First(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("student %s vanished after registration", login.StudentID)
	}
	if err != nil {
		return nil, fmt.Errorf("load student %s: %w", login.StudentID, err)
	}
	return &stored, nil
}

// ErrStudentNotFound is returned when no student has the requested student ID.
var ErrStudentNotFound = errors.New("student not found")

// StudentWithSubmissions loads a student together with their submissions, newest first.
func StudentWithSubmissions(ctx context.Context, db *gorm.DB, studentID string) (*models.Student, error) {
	var student models.Student
	err := db.WithContext(ctx).Where("student_id = ?", studentID).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load student %s: %w", studentID, err)
	}

	student.Submissions, err = SubmissionsByStudent(ctx, db, studentID)
	if err != nil {
		return nil, err
	}
	return &student, nil
}
