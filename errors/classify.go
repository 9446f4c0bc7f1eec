package errors

import (
	"encoding/csv"
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"gopkg.in/yaml.v3"
)

// ErrMalformed marks content that failed to parse or decode as expected.
// Match it with errors.Is; wrap a parse failure with Malformed to attach it.
var ErrMalformed = stderrors.New("malformed content")

// ErrInvalidUTF8 is returned when text content is not valid UTF-8.
var ErrInvalidUTF8 = stderrors.New("invalid UTF-8 sequence")

// Classifier matches errors of a single kind.
type Classifier struct {
	Kind  Kind
	Match func(error) bool
}

// defaultClassifiers holds the chain evaluated by Classify, most specific first.
var defaultClassifiers = []Classifier{
	{Kind: KindNotFound, Match: isNotFound},
	{Kind: KindPermissionDenied, Match: isPermissionDenied},
	{Kind: KindMalformedContent, Match: isMalformed},
	{Kind: KindGenericOSFailure, Match: isOSFailure},
}

// DefaultClassifiers returns a copy of the classifier chain used by Classify.
// Callers may prepend their own classifiers and pass the result to ClassifyWith.
func DefaultClassifiers() []Classifier {
	out := make([]Classifier, len(defaultClassifiers))
	copy(out, defaultClassifiers)
	return out
}

// Classify returns the most specific kind matching err.
//
// An error chain that already carries a FileError keeps that error's kind.
// Returns KindUnknownFailure for nil and for anything no classifier matched.
func Classify(err error) Kind {
	return ClassifyWith(err, defaultClassifiers)
}

// ClassifyWith evaluates classifiers top-down and returns the first kind that
// matches. Classifier order is the caller's responsibility.
func ClassifyWith(err error, classifiers []Classifier) Kind {
	if err == nil {
		return KindUnknownFailure
	}

	var fe FileError
	if stderrors.As(err, &fe) {
		return fe.Kind()
	}

	for _, c := range classifiers {
		if c.Match != nil && c.Match(err) {
			return c.Kind
		}
	}
	return KindUnknownFailure
}

// Malformed marks err as a content failure so Classify reports
// KindMalformedContent. Returns nil if err is nil.
func Malformed(err error) error {
	if err == nil {
		return nil
	}
	return &malformedError{cause: err}
}

type malformedError struct {
	cause error
}

func (e *malformedError) Error() string { return e.cause.Error() }

func (e *malformedError) Unwrap() []error { return []error{ErrMalformed, e.cause} }

func isNotFound(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) || isNotDirErrno(err)
}

func isPermissionDenied(err error) bool {
	return stderrors.Is(err, fs.ErrPermission) || isPermissionErrno(err)
}

func isMalformed(err error) bool {
	if stderrors.Is(err, ErrMalformed) ||
		stderrors.Is(err, ErrInvalidUTF8) ||
		stderrors.Is(err, encoding.ErrInvalidUTF8) ||
		stderrors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var (
		csvErr    *csv.ParseError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		yamlErr   *yaml.TypeError
	)
	switch {
	case stderrors.As(err, &csvErr),
		stderrors.As(err, &syntaxErr),
		stderrors.As(err, &typeErr),
		stderrors.As(err, &yamlErr):
		return true
	}
	return false
}

func isOSFailure(err error) bool {
	if stderrors.Is(err, fs.ErrClosed) ||
		stderrors.Is(err, fs.ErrInvalid) ||
		stderrors.Is(err, fs.ErrExist) ||
		isErrno(err) {
		return true
	}

	var (
		pathErr    *fs.PathError
		linkErr    *os.LinkError
		syscallErr *os.SyscallError
	)
	return stderrors.As(err, &pathErr) ||
		stderrors.As(err, &linkErr) ||
		stderrors.As(err, &syscallErr)
}

// ValidUTF8 returns ErrInvalidUTF8 marked as malformed if p is not valid UTF-8.
func ValidUTF8(p []byte) error {
	if utf8.Valid(p) {
		return nil
	}
	return Malformed(ErrInvalidUTF8)
}
