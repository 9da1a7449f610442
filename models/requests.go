package models

// SubmitTest is the payload for submitting a whole exam.
type SubmitTest struct {
	StudentID   string          `json:"studentId" validate:"required"`
	StudentName string          `json:"studentName" validate:"required"`
	ExamID      uint            `json:"examId" validate:"required"`
	Answers     []StudentAnswer `json:"answers" validate:"required,dive"`
}

// SubmitUnitTest is the payload for submitting the questions of a single unit.
type SubmitUnitTest struct {
	StudentID   string          `json:"studentId" validate:"required"`
	StudentName string          `json:"studentName" validate:"required"`
	UnitName    string          `json:"unitName" validate:"required,unit"`
	Answers     []StudentAnswer `json:"answers" validate:"required,dive"`
}

// Login identifies a student. Unknown students are registered on first login.
type Login struct {
	StudentID   string `json:"studentId" validate:"required"`
	StudentName string `json:"studentName" validate:"required"`
}
