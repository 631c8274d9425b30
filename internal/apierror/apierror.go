// Package apierror defines the JSON error envelopes shared by all handlers.
// Client-facing messages never carry driver errors or stack traces; those
// stay in the logs.
package apierror

// APIError is the single-message envelope used by most 4xx/5xx responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError { return &APIError{Detail: msg} }

// ValidationError carries one message per failed field.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation error", Fields: fields}
}
