package errors

import "fmt"

// fileError is the concrete implementation of FileError.
// It is private to enforce construction through package functions.
type fileError struct {
	kind    Kind
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the string representation of the error.
// Format: "[Kind] message" or "[Kind] message: cause" if cause is present.
func (e *fileError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.kind, e.message)
}

// Kind returns the error kind.
func (e *fileError) Kind() Kind {
	return e.kind
}

// Message returns the error message.
func (e *fileError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil when none is attached.
func (e *fileError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *fileError) Unwrap() error {
	return e.cause
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
