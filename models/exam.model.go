package models

// DefaultSubject is stored on exams created without an explicit subject.
const DefaultSubject = "생명과학"

// Exam is one administered test tied to a school, year and semester.
type Exam struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	SchoolID    uint         `json:"schoolId" gorm:"not null" validate:"required"`
	School      *School      `json:"school,omitempty"`
	SchoolName  string       `json:"schoolName" gorm:"type:text;not null" validate:"required"`
	Year        int          `json:"year" gorm:"not null" validate:"required,gte=1900"`
	Semester    string       `json:"semester" gorm:"type:text;not null" validate:"required"` // "2학기 중간", "2학기 기말"
	Subject     string       `json:"subject" gorm:"type:text;not null;default:'생명과학'"`
	Questions   []Question   `json:"questions,omitempty"`
	Submissions []Submission `json:"submissions,omitempty"`
}
