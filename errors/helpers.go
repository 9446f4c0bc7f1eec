package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetKind extracts the Kind from an error.
//
// The kind of the outermost FileError in the chain wins. For errors that
// carry no FileError the classifier chain decides, so GetKind never returns
// an empty kind for a non-nil error. Returns KindUnknownFailure for nil.
//
// Example:
//
//	if errors.GetKind(err) == errors.KindNotFound {
//	    // Handle missing file
//	}
func GetKind(err error) Kind {
	return Classify(err)
}

// IsKind reports whether err classifies as kind.
func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return GetKind(err) == kind
}

// Cause returns the innermost error in err's single-wrap chain.
// Useful for reporting the underlying operating-system failure without the
// layers of messages added on the way up.
func Cause(err error) error {
	for err != nil {
		next := stderrors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}
