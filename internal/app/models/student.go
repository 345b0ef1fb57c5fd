package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Leo"`
	Surname   string    `json:"surname" db:"surname" example:"Diaz"`
	Email     string    `json:"email" db:"email" example:"leo@x.com"` // Unique across students
	Address   string    `json:"address" db:"address" example:"123 Main St"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// StudentSummary is the identifying projection of a student used in joins.
type StudentSummary struct {
	ID      int64  `json:"id" example:"1"`
	Name    string `json:"name" example:"Leo"`
	Surname string `json:"surname" example:"Diaz"`
	Email   string `json:"email" example:"leo@x.com"`
}

// SameContent reports whether s and other hold the same editable fields.
func (s *Student) SameContent(other *Student) bool {
	return s.Name == other.Name &&
		s.Surname == other.Surname &&
		s.Email == other.Email &&
		s.Address == other.Address
}
