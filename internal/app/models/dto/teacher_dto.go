package dto

// TeacherRequest is the payload for registering or updating a teacher
type TeacherRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=50" example:"Ana"`
	Surname   string  `json:"surname" validate:"required,min=2,max=50" example:"Ruiz"`
	Specialty *string `json:"specialty" validate:"omitempty,max=100" example:"Mathematics"`
}
