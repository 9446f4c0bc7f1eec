package errors

// FileError extends the standard error interface with the structured
// information produced by a failed file access.
//
// FileError carries a Kind for tiered handling, contextual metadata and
// compatibility with standard library error handling (errors.Is, errors.As,
// errors.Unwrap).
type FileError interface {
	error

	// Kind returns the classification tag of the failure.
	Kind() Kind

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the underlying cause for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
