package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new FileError with the context field added.
// Existing context fields are preserved.
//
// If err is not a FileError, it is converted to one using Classify to pick
// the kind. Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "path", name)
//	err = errors.WithContext(err, "mode", "append")
func WithContext(err error, key string, value interface{}) FileError {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// Existing context fields are preserved; new fields override existing ones
// with the same key.
//
// If err is not a FileError, it is converted to one using Classify to pick
// the kind. Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) FileError {
	if err == nil {
		return nil
	}

	fe := asFileError(err)

	merged := make(map[string]interface{})
	for k, v := range fe.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &fileError{
		kind:    fe.Kind(),
		message: fe.Message(),
		context: merged,
		cause:   fe.Unwrap(),
	}
}

// asFileError returns the first FileError in err's chain, or a classified
// FileError wrapping err.
func asFileError(err error) FileError {
	var fe FileError
	if errors.As(err, &fe) {
		return fe
	}
	return &fileError{
		kind:    Classify(err),
		message: err.Error(),
		cause:   err,
	}
}
