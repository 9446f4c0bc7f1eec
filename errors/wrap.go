package errors

import "fmt"

// Wrap wraps an error with a kind and message while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	f, err := fsys.Open(name)
//	if err != nil {
//	    return errors.Wrap(err, errors.KindNotFound, name+" was not found")
//	}
func Wrap(err error, kind Kind, message string) FileError {
	if err == nil {
		return nil
	}

	return &fileError{
		kind:    kind,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, kind Kind, format string, args ...interface{}) FileError {
	if err == nil {
		return nil
	}

	return Wrap(err, kind, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single
// operation. The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.KindGenericOSFailure, "open failed", map[string]interface{}{
//	    "path": name,
//	    "mode": "append",
//	})
func WrapWithContext(err error, kind Kind, message string, ctx map[string]interface{}) FileError {
	if err == nil {
		return nil
	}

	return &fileError{
		kind:    kind,
		message: message,
		context: copyContext(ctx),
		cause:   err,
	}
}
