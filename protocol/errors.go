package protocol

import "fmt"

// Invocation error codes.
const (
	CodeUnknownTool      = "unknown_tool"
	CodeMissingParameter = "missing_parameter"
	CodeInvalidParameter = "invalid_parameter"
	CodeDuplicateTool    = "duplicate_tool"
	CodeHandlerError     = "handler_error"
)

// Error is a coded invocation error. Registration-time errors
// (duplicate_tool) are fatal; every other code is caught at the
// registry boundary and converted into a failure envelope.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is implements errors.Is comparison by error code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel values for errors.Is comparisons.
var (
	ErrUnknownTool      = &Error{Code: CodeUnknownTool}
	ErrMissingParameter = &Error{Code: CodeMissingParameter}
	ErrInvalidParameter = &Error{Code: CodeInvalidParameter}
	ErrDuplicateTool    = &Error{Code: CodeDuplicateTool}
	ErrHandlerError     = &Error{Code: CodeHandlerError}
)

// NewUnknownTool creates an unknown_tool error.
func NewUnknownTool(tool string) *Error {
	return &Error{Code: CodeUnknownTool, Message: fmt.Sprintf("no tool named %q", tool)}
}

// NewMissingParameter creates a missing_parameter error.
func NewMissingParameter(tool, param string) *Error {
	return &Error{Code: CodeMissingParameter, Message: fmt.Sprintf("tool %q requires parameter %q", tool, param)}
}

// NewInvalidParameter creates an invalid_parameter error.
func NewInvalidParameter(tool, param, reason string) *Error {
	return &Error{Code: CodeInvalidParameter, Message: fmt.Sprintf("tool %q parameter %q: %s", tool, param, reason)}
}

// NewDuplicateTool creates a duplicate_tool error.
func NewDuplicateTool(tool string) *Error {
	return &Error{Code: CodeDuplicateTool, Message: fmt.Sprintf("tool %q is already registered", tool)}
}

// NewHandlerError creates a handler_error wrapping an unexpected
// handler failure.
func NewHandlerError(tool, reason string) *Error {
	return &Error{Code: CodeHandlerError, Message: fmt.Sprintf("tool %q failed: %s", tool, reason)}
}
