package dto

// CreateSubjectRequest represents the payload for creating a subject
type CreateSubjectRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100" example:"Math"`
	Description *string `json:"description" validate:"omitempty,max=500" example:"Algebra and calculus"`
	TeacherID   *int64  `json:"teacherId" validate:"omitempty,gt=0" example:"1"`
}

// UpdateSubjectRequest represents a partial subject update.
// Absent fields are left unchanged; an explicit null clears description or teacherId.
type UpdateSubjectRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=3,max=100" example:"Math II"`
	Description Nullable[string] `json:"description" validate:"omitempty,max=500" swaggertype:"string"`
	TeacherID   Nullable[int64]  `json:"teacherId" validate:"omitempty,gt=0" swaggertype:"integer"`
}

// IsEmpty reports whether the payload carries no field at all
func (r *UpdateSubjectRequest) IsEmpty() bool {
	return r.Name == nil && !r.Description.Set && !r.TeacherID.Set
}

// AssignTeacherRequest represents the payload for assigning a teacher to a subject
type AssignTeacherRequest struct {
	TeacherID int64 `json:"teacherId" validate:"required,gt=0" example:"1"`
}
