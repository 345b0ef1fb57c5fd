package models

import "time"

// Enrollment links one student to one subject. The pair is unique.
type Enrollment struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	StudentID  int64     `json:"studentId" db:"student_id" example:"1"`
	SubjectID  int64     `json:"subjectId" db:"subject_id" example:"1"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// EnrollmentReceipt is an enrollment together with the names of both sides.
type EnrollmentReceipt struct {
	Enrollment  *Enrollment
	StudentName string
	SubjectName string
}
