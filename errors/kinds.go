package errors

// Kind tags why a file operation failed.
// Kinds are string-based for debuggability and natural JSON serialization.
type Kind string

const (
	// KindNotFound indicates the target resource does not exist.
	KindNotFound Kind = "NotFound"

	// KindPermissionDenied indicates the caller's access rights are insufficient.
	KindPermissionDenied Kind = "PermissionDenied"

	// KindMalformedContent indicates content failed to parse or decode as expected.
	KindMalformedContent Kind = "MalformedContent"

	// KindGenericOSFailure indicates any other operating-system level I/O error.
	KindGenericOSFailure Kind = "GenericOSFailure"

	// KindUnknownFailure indicates a failure nothing else classified.
	KindUnknownFailure Kind = "UnknownFailure"

	// KindInvalidRequest indicates the request was rejected before any open
	// was attempted. It is never produced by the classifier chain.
	KindInvalidRequest Kind = "InvalidRequest"
)

// ordered lists the classified kinds from most to least specific.
var ordered = []Kind{
	KindNotFound,
	KindPermissionDenied,
	KindMalformedContent,
	KindGenericOSFailure,
	KindUnknownFailure,
}

// Kinds returns the classified kinds ordered from most to least specific.
func Kinds() []Kind {
	out := make([]Kind, len(ordered))
	copy(out, ordered)
	return out
}

// Specificity returns the position of k in the classification order, where 0
// is the most specific. InvalidRequest and unrecognised kinds return -1.
func (k Kind) Specificity() int {
	for i, o := range ordered {
		if o == k {
			return i
		}
	}
	return -1
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
