package models

import (
	"time"

	"gorm.io/datatypes"
)

// StudentAnswer is one answered question inside a submission.
type StudentAnswer struct {
	QuestionNumber int    `json:"questionNumber" validate:"gte=1"`
	Answer         string `json:"answer"`
}

// Submission records one student's attempt at an exam with its precomputed summary.
// Submissions are never updated after creation.
type Submission struct {
	ID                uint                               `json:"id" gorm:"primaryKey"`
	StudentID         string                             `json:"studentId" gorm:"type:varchar(50);not null;index" validate:"required,max=50"`
	StudentName       string                             `json:"studentName" gorm:"type:text;not null" validate:"required"`
	ExamID            uint                               `json:"examId" gorm:"not null;index" validate:"required"`
	Exam              *Exam                              `json:"exam,omitempty"`
	SubmittedAt       time.Time                          `json:"submittedAt" gorm:"not null;autoCreateTime"`
	Answers           datatypes.JSONSlice[StudentAnswer] `json:"answers" gorm:"not null" validate:"dive"`
	Score             int                                `json:"score" gorm:"not null" validate:"gte=0"`
	TotalQuestions    int                                `json:"totalQuestions" gorm:"not null" validate:"gte=0"`
	AnsweredQuestions int                                `json:"answeredQuestions" gorm:"not null" validate:"gte=0,ltefield=TotalQuestions"`
	CorrectAnswers    int                                `json:"correctAnswers" gorm:"not null" validate:"gte=0,ltefield=AnsweredQuestions"`
	AchievementRate   int                                `json:"achievementRate" gorm:"not null" validate:"gte=0,lte=100"`
	UnitResults       datatypes.JSONSlice[UnitResult]    `json:"unitResults" gorm:"not null"`
}
