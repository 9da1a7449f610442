package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	QuestionTypeMultipleChoice = "객관식"
	QuestionTypeShortAnswer    = "주관식"
)

// Question holds the answer key for one numbered question of an exam.
// (ExamID, QuestionNumber) is unique.
type Question struct {
	ID               uint   `json:"id" gorm:"primaryKey"`
	ExamID           uint   `json:"examId" gorm:"not null;uniqueIndex:unique_question_per_exam,priority:1" validate:"required"`
	Exam             *Exam  `json:"exam,omitempty"`
	QuestionNumber   int    `json:"questionNumber" gorm:"not null;uniqueIndex:unique_question_per_exam,priority:2" validate:"required,gte=1"`
	Type             string `json:"type" gorm:"type:varchar(20);not null" validate:"required,oneof=객관식 주관식"`
	Category         string `json:"category" gorm:"type:text;not null" validate:"required"`
	Unit             string `json:"unit" gorm:"type:text;not null" validate:"required"`
	Answer           string `json:"answer" gorm:"type:text;not null" validate:"required"` // single answer or JSON array
	IsMultipleAnswer bool   `json:"isMultipleAnswer" gorm:"not null;default:false"`
}

// Answers returns the accepted answers. A JSON array answer is decoded into
// its elements; anything else is a single answer.
func (q Question) Answers() []string {
	raw := strings.TrimSpace(q.Answer)
	if strings.HasPrefix(raw, "[") {
		var items []any
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			answers := make([]string, 0, len(items))
			for _, item := range items {
				answers = append(answers, fmt.Sprint(item))
			}
			return answers
		}
	}
	return []string{raw}
}
