package models

// Student is registered implicitly the first time they log in.
//
// Submissions reference a student by StudentID only, without a foreign key,
// so the relation is not a column; store.StudentWithSubmissions fills it.
type Student struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	StudentID   string       `json:"studentId" gorm:"type:varchar(50);not null;unique" validate:"required,max=50"`
	StudentName string       `json:"studentName" gorm:"type:text;not null" validate:"required"`
	Grade       string       `json:"grade" gorm:"type:text;not null" validate:"required"`
	Phone       *string      `json:"phone" gorm:"type:varchar(20)" validate:"omitempty,max=20"`
	Submissions []Submission `json:"submissions,omitempty" gorm:"-"`
}
