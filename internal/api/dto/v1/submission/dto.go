package submission

// SubmissionRequest represents a form submission posted as JSON. Form-encoded
// posts are flattened to the same shape by the handler.
type SubmissionRequest struct {
	FormType string            `json:"formType" binding:"required"`
	Fields   map[string]string `json:"fields"`
}

// SubmissionResponse is the caller-facing result of a form submission.
// Errors is present only for validation failures and maps each failing
// field to its messages.
type SubmissionResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
