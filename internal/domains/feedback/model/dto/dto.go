package dto

// SubmitFeedbackRequest is the contact-form body forwarded to the backend.
type SubmitFeedbackRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Message string `json:"message" validate:"required,max=2000"`
}

type SubmitFeedbackResponse struct {
	Message string `json:"message"`
}
