package common

import (
	"errors"
	"net/http"
)

// ErrorKind classifies why a privileged workflow stopped.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindUnauthorized
	KindForbidden
	KindBadRequest
	KindNotFound
	KindConflict
	KindMethodNotAllowed
)

// Machine-readable reasons reported in the "error" field of JSON responses.
const (
	CodeInternal         = "internal_error"
	CodeUnauthorized     = "unauthorized"
	CodeForbidden        = "forbidden"
	CodeBadRequest       = "bad_request"
	CodeMissingFields    = "missing_target_or_username"
	CodeTargetNotFound   = "target_not_found"
	CodeMissingUsername  = "missing_username"
	CodeUsernameMismatch = "username_mismatch"
	CodeMethodNotAllowed = "method_not_allowed"
)

var kindStatus = map[ErrorKind]int{
	KindInternal:         http.StatusInternalServerError,
	KindUnauthorized:     http.StatusUnauthorized,
	KindForbidden:        http.StatusForbidden,
	KindBadRequest:       http.StatusBadRequest,
	KindNotFound:         http.StatusNotFound,
	KindConflict:         http.StatusConflict,
	KindMethodNotAllowed: http.StatusMethodNotAllowed,
}

// HTTPStatus returns the response status code for the kind.
func (k ErrorKind) HTTPStatus() int {
	if s, ok := kindStatus[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// WorkflowError is the typed failure returned by server-side workflows.
// Kind selects the HTTP status, Code is the stable reason string and Err,
// when set, carries the underlying provider error.
type WorkflowError struct {
	Kind ErrorKind
	Code string
	Err  error
}

// NewWorkflowError builds a WorkflowError.
func NewWorkflowError(kind ErrorKind, code string, err error) *WorkflowError {
	return &WorkflowError{Kind: kind, Code: code, Err: err}
}

func (e *WorkflowError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *WorkflowError) Unwrap() error { return e.Err }

// Message is the human-readable text for the failure: the wrapped provider
// message when there is one, the code otherwise.
func (e *WorkflowError) Message() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

// AsWorkflowError extracts a WorkflowError from err. Errors of any other
// type are reported as internal failures.
func AsWorkflowError(err error) *WorkflowError {
	if err == nil {
		return nil
	}
	var we *WorkflowError
	if errors.As(err, &we) {
		return we
	}
	return NewWorkflowError(KindInternal, CodeInternal, err)
}

// Unauthorized is the single error returned for every identity failure.
func Unauthorized() *WorkflowError {
	return NewWorkflowError(KindUnauthorized, CodeUnauthorized, nil)
}
