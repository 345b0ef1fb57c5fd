package dto

// EnrollmentRequest represents the payload for enrolling a student in a subject
type EnrollmentRequest struct {
	StudentID int64 `json:"studentId" validate:"required,gt=0" example:"1"`
	SubjectID int64 `json:"subjectId" validate:"required,gt=0" example:"1"`
}
