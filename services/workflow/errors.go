package workflow

import "fmt"

// Error codes surfaced to handlers so they can pick a response status.
const (
	CodeValidation      = "validationError"
	CodeState           = "stateError"
	CodeSubmission      = "submissionError"
	CodeSessionNotFound = "sessionNotFound"
)

// WorkflowError pairs a stable code with a user-presentable message. Nothing
// in this package panics or returns raw collaborator errors to callers.
type WorkflowError struct {
	Code    string
	Message string
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrSessionNotFound covers both unknown and expired sessions; the store
// cannot tell them apart once the TTL has reaped the key.
var ErrSessionNotFound = &WorkflowError{
	Code:    CodeSessionNotFound,
	Message: "booking session not found or expired",
}

func NewValidationError(msg string) error {
	return &WorkflowError{Code: CodeValidation, Message: msg}
}

func NewStateError(msg string) error {
	return &WorkflowError{Code: CodeState, Message: msg}
}

func NewSubmissionError(msg string) error {
	return &WorkflowError{Code: CodeSubmission, Message: msg}
}
