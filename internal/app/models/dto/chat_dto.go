package dto

// InferenceRequest asks the AI service for a generated completion. The
// grading flow uses it to draft feedback suggestions.
type InferenceRequest struct {
	SystemMessage string `json:"system_message" validate:"required"`
	UserMessage   string `json:"user_message" validate:"required"`
}

// InferenceResponse is the generated text.
type InferenceResponse struct {
	Response string `json:"response"`
}
