package dto

// StudentRequest is the payload for registering or updating a student
type StudentRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=50" example:"Leo"`
	Surname string `json:"surname" validate:"required,min=2,max=50" example:"Diaz"`
	Email   string `json:"email" validate:"required,email" example:"leo@x.com"`
	Address string `json:"address" validate:"required,min=5,max=255" example:"123 Main St"`
}
