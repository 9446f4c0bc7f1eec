package errors

import (
	"encoding/csv"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestClassify(t *testing.T) {
	jsonErr := json.Unmarshal([]byte("{"), &map[string]any{})
	require.Error(t, jsonErr)

	var typed struct{ Age int }
	typeErr := json.Unmarshal([]byte(`{"Age":"old"}`), &typed)
	require.Error(t, typeErr)

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "nil",
			err:  nil,
			want: KindUnknownFailure,
		},
		{
			name: "not exist sentinel",
			err:  fs.ErrNotExist,
			want: KindNotFound,
		},
		{
			name: "path error wrapping not exist",
			err:  &fs.PathError{Op: "open", Path: "missing.txt", Err: fs.ErrNotExist},
			want: KindNotFound,
		},
		{
			name: "permission sentinel",
			err:  &fs.PathError{Op: "open", Path: "locked.txt", Err: fs.ErrPermission},
			want: KindPermissionDenied,
		},
		{
			name: "explicit malformed marker",
			err:  Malformed(stderrors.New("bad row")),
			want: KindMalformedContent,
		},
		{
			name: "csv parse error",
			err:  &csv.ParseError{StartLine: 1, Line: 1, Column: 2, Err: csv.ErrQuote},
			want: KindMalformedContent,
		},
		{
			name: "json syntax error",
			err:  jsonErr,
			want: KindMalformedContent,
		},
		{
			name: "json type error",
			err:  typeErr,
			want: KindMalformedContent,
		},
		{
			name: "yaml type error",
			err:  &yaml.TypeError{Errors: []string{"line 1: cannot unmarshal"}},
			want: KindMalformedContent,
		},
		{
			name: "unexpected eof",
			err:  fmt.Errorf("decode: %w", io.ErrUnexpectedEOF),
			want: KindMalformedContent,
		},
		{
			name: "invalid utf8",
			err:  ValidUTF8([]byte{0xff, 0xfe}),
			want: KindMalformedContent,
		},
		{
			name: "closed file",
			err:  &fs.PathError{Op: "read", Path: "a.txt", Err: fs.ErrClosed},
			want: KindGenericOSFailure,
		},
		{
			name: "generic path error",
			err:  &fs.PathError{Op: "write", Path: "a.txt", Err: stderrors.New("disk full")},
			want: KindGenericOSFailure,
		},
		{
			name: "link error",
			err:  &os.LinkError{Op: "rename", Old: "a", New: "b", Err: stderrors.New("cross-device")},
			want: KindGenericOSFailure,
		},
		{
			name: "plain error",
			err:  stderrors.New("boom"),
			want: KindUnknownFailure,
		},
		{
			name: "file error keeps its kind",
			err:  Wrap(fs.ErrNotExist, KindPermissionDenied, "override"),
			want: KindPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestClassify_SpecificBeatsBroad(t *testing.T) {
	// A path error is an OS failure, but the not-exist cause inside it is
	// more specific and must win.
	_, err := os.Open(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	var pathErr *fs.PathError
	require.True(t, stderrors.As(err, &pathErr))
	require.Equal(t, KindNotFound, Classify(err))

	// Malformed content wrapped in a path error stays malformed.
	wrapped := &fs.PathError{Op: "read", Path: "data.csv", Err: Malformed(stderrors.New("bad"))}
	require.Equal(t, KindMalformedContent, Classify(wrapped))
}

func TestClassifyWith_CustomChain(t *testing.T) {
	errQuota := stderrors.New("quota exceeded")
	chain := append([]Classifier{{
		Kind:  KindPermissionDenied,
		Match: func(err error) bool { return stderrors.Is(err, errQuota) },
	}}, DefaultClassifiers()...)

	require.Equal(t, KindPermissionDenied, ClassifyWith(fmt.Errorf("write: %w", errQuota), chain))
	require.Equal(t, KindUnknownFailure, Classify(errQuota))
	require.Equal(t, KindNotFound, ClassifyWith(fs.ErrNotExist, chain))
}

func TestClassifyWith_NilMatcherSkipped(t *testing.T) {
	chain := []Classifier{{Kind: KindNotFound}}
	require.Equal(t, KindUnknownFailure, ClassifyWith(fs.ErrNotExist, chain))
}

func TestDefaultClassifiers_Order(t *testing.T) {
	chain := DefaultClassifiers()
	require.Len(t, chain, 4)
	for i, c := range chain {
		require.Equal(t, i, c.Kind.Specificity())
	}

	// Mutating the copy must not change the package chain.
	chain[0] = Classifier{Kind: KindUnknownFailure}
	require.Equal(t, KindNotFound, Classify(fs.ErrNotExist))
}

func TestMalformed(t *testing.T) {
	require.Nil(t, Malformed(nil))

	cause := stderrors.New("unexpected token")
	err := Malformed(cause)
	require.ErrorIs(t, err, ErrMalformed)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "unexpected token", err.Error())
}

func TestValidUTF8(t *testing.T) {
	require.NoError(t, ValidUTF8([]byte("héllo")))
	require.ErrorIs(t, ValidUTF8([]byte{'a', 0xc3}), ErrInvalidUTF8)
}
