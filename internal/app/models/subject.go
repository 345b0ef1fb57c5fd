package models

import "time"

// Subject represents a subject optionally taught by one teacher.
type Subject struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Math"`
	Description *string   `json:"description" db:"description"`        // Nullable
	TeacherID   *int64    `json:"teacherId" db:"teacher_id" example:"1"` // Nullable
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed). The JSON key is the one clients already consume.
	AssignedTeacher *TeacherSummary `json:"profesorAsignado"`
}

// SubjectSummary is the identifying projection of a subject.
type SubjectSummary struct {
	ID          int64   `json:"id" example:"1"`
	Name        string  `json:"name" example:"Math"`
	Description *string `json:"description"`
}

// SubjectDetails is a subject with its teacher and enrolled students.
type SubjectDetails struct {
	Subject
	EnrolledStudents []*StudentSummary `json:"estudiantesInscritos"`
}

// SameContent reports whether s and other hold the same editable fields.
func (s *Subject) SameContent(other *Subject) bool {
	return s.Name == other.Name &&
		equalStringPtr(s.Description, other.Description) &&
		equalInt64Ptr(s.TeacherID, other.TeacherID)
}
