package errors

import "fmt"

// New creates a new FileError with the given kind and message.
//
// Example:
//
//	err := errors.New(errors.KindInvalidRequest, "mode must be read, write or append")
func New(kind Kind, message string) FileError {
	return &fileError{
		kind:    kind,
		message: message,
	}
}

// Newf creates a new FileError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.KindInvalidRequest, "path %q escapes the base directory", name)
func Newf(kind Kind, format string, args ...interface{}) FileError {
	return &fileError{
		kind:    kind,
		message: fmt.Sprintf(format, args...),
	}
}
