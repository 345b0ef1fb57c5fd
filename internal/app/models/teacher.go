package models

import "time"

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Ana"`
	Surname   string    `json:"surname" db:"surname" example:"Ruiz"`
	Specialty *string   `json:"specialty" db:"specialty" example:"Mathematics"` // Nullable
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// TeacherSummary is the identifying projection of a teacher attached to subjects.
type TeacherSummary struct {
	ID        int64   `json:"id" example:"1"`
	Name      string  `json:"name" example:"Ana"`
	Surname   string  `json:"surname" example:"Ruiz"`
	Specialty *string `json:"specialty" example:"Mathematics"`
}

// SameContent reports whether t and other hold the same editable fields.
func (t *Teacher) SameContent(other *Teacher) bool {
	return t.Name == other.Name &&
		t.Surname == other.Surname &&
		equalStringPtr(t.Specialty, other.Specialty)
}

// Summary returns the identifying projection of t.
func (t *Teacher) Summary() *TeacherSummary {
	return &TeacherSummary{
		ID:        t.ID,
		Name:      t.Name,
		Surname:   t.Surname,
		Specialty: t.Specialty,
	}
}
