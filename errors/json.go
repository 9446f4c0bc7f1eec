package errors

import (
	"encoding/json"
)

// ErrorResponse is the JSON structure used to report failures to callers
// that want machine-readable output.
//
// The wrapped error chain is excluded; the underlying cause is flattened to
// its message so file paths from the request are the only paths exposed.
type ErrorResponse struct {
	// Kind is the classification tag of the failure.
	Kind string `json:"kind"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Cause is the message of the underlying error, if any.
	Cause string `json:"cause,omitempty"`

	// Context contains optional metadata about the error.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For FileError instances, extracts kind, message, cause and context.
// For standard errors, the classifier chain picks the kind and the error
// message becomes the response message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	resp := &ErrorResponse{
		Kind:    string(GetKind(err)),
		Message: err.Error(),
	}

	var fe FileError
	if As(err, &fe) {
		resp.Message = fe.Message()
		resp.Context = fe.Context()
		if cause := fe.Unwrap(); cause != nil {
			resp.Cause = cause.Error()
		}
	}
	return resp
}

// MarshalJSON implements json.Marshaler for fileError.
func (e *fileError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(ToJSON(e))
	if err != nil {
		return nil, &fileError{
			kind:    KindUnknownFailure,
			message: "failed to marshal error response",
			cause:   err,
		}
	}
	return data, nil
}
