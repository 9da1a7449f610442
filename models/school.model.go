package models

// School is a school whose exams are collected in the question bank.
type School struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"type:text;not null;unique" validate:"required"`
	Exams []Exam `json:"exams,omitempty"`
}
