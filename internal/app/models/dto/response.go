package dto

// APIResponse is the envelope every endpoint answers with.
// Result is null on failures; Errors carries field or diagnostic details.
type APIResponse struct {
	Message string      `json:"message" example:"Student registered successfully."`
	Result  interface{} `json:"result"`
	Errors  string      `json:"errors,omitempty" example:"email must be a valid email address"`
}

// NewResponse builds a success envelope.
func NewResponse(message string, result interface{}) APIResponse {
	return APIResponse{
		Message: message,
		Result:  result,
	}
}

// NewErrorResponse builds a failure envelope with an empty result.
func NewErrorResponse(message, errors string) APIResponse {
	return APIResponse{
		Message: message,
		Errors:  errors,
	}
}
