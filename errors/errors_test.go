package errors

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(KindInvalidRequest, "mode is required")

	require.Equal(t, KindInvalidRequest, err.Kind())
	require.Equal(t, "mode is required", err.Message())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[InvalidRequest] mode is required", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(KindInvalidRequest, "path %q escapes %s", "../x", "base")
	require.Equal(t, `path "../x" escapes base`, err.Message())
}

func TestWrap(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "missing.txt", Err: fs.ErrNotExist}
	err := Wrap(cause, KindNotFound, "missing.txt was not found")

	require.NotNil(t, err)
	require.Equal(t, KindNotFound, err.Kind())
	require.Equal(t, "missing.txt was not found", err.Message())
	require.Equal(t, error(cause), err.Unwrap())
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Equal(t, "[NotFound] missing.txt was not found: open missing.txt: file does not exist", err.Error())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, KindNotFound, "test"))
	require.Nil(t, Wrapf(nil, KindNotFound, "test %s", "arg"))
	require.Nil(t, WrapWithContext(nil, KindNotFound, "test", nil))
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrapf(cause, KindGenericOSFailure, "I/O failure accessing %s", "out.txt")

	require.Equal(t, "I/O failure accessing out.txt", err.Message())
	require.Equal(t, cause, err.Unwrap())
}

func TestWrapWithContext_CopiesMap(t *testing.T) {
	ctx := map[string]interface{}{"path": "a.txt"}
	err := WrapWithContext(stderrors.New("x"), KindGenericOSFailure, "failed", ctx)

	ctx["path"] = "mutated"
	require.Equal(t, "a.txt", err.Context()["path"])

	got := err.Context()
	got["path"] = "mutated again"
	require.Equal(t, "a.txt", err.Context()["path"])
}

func TestWithContext(t *testing.T) {
	err := WithContext(New(KindNotFound, "gone"), "path", "a.txt")
	err = WithContext(err, "mode", "read")

	require.Equal(t, KindNotFound, err.Kind())
	require.Equal(t, "gone", err.Message())
	require.Equal(t, map[string]interface{}{"path": "a.txt", "mode": "read"}, err.Context())
}

func TestWithContext_StandardErrorIsClassified(t *testing.T) {
	err := WithContext(&fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}, "path", "x")

	require.Equal(t, KindPermissionDenied, err.Kind())
	require.ErrorIs(t, err, fs.ErrPermission)
}

func TestWithContext_Nil(t *testing.T) {
	require.Nil(t, WithContext(nil, "k", "v"))
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"k": "v"}))
}

func TestWithContextMap_Overrides(t *testing.T) {
	err := WithContext(New(KindUnknownFailure, "x"), "attempt", 1)
	err = WithContextMap(err, map[string]interface{}{"attempt": 2, "path": "p"})

	require.Equal(t, 2, err.Context()["attempt"])
	require.Equal(t, "p", err.Context()["path"])
}

func TestGetKind(t *testing.T) {
	require.Equal(t, KindUnknownFailure, GetKind(nil))
	require.Equal(t, KindNotFound, GetKind(fs.ErrNotExist))
	require.Equal(t, KindMalformedContent, GetKind(New(KindMalformedContent, "bad")))
	require.True(t, IsKind(fs.ErrPermission, KindPermissionDenied))
	require.False(t, IsKind(nil, KindUnknownFailure))
}

func TestCause(t *testing.T) {
	root := stderrors.New("root")
	err := Wrap(&fs.PathError{Op: "open", Path: "x", Err: root}, KindGenericOSFailure, "failed")

	require.Equal(t, root, Cause(err))
	require.Nil(t, Cause(nil))
}

func TestToJSON(t *testing.T) {
	err := Wrap(fs.ErrNotExist, KindNotFound, "missing.txt was not found")
	err = WithContext(err, "path", "missing.txt")

	resp := ToJSON(err)
	require.Equal(t, "NotFound", resp.Kind)
	require.Equal(t, "missing.txt was not found", resp.Message)
	require.Equal(t, "file does not exist", resp.Cause)
	require.Equal(t, "missing.txt", resp.Context["path"])
}

func TestToJSON_StandardError(t *testing.T) {
	resp := ToJSON(stderrors.New("something went wrong"))

	require.Equal(t, "UnknownFailure", resp.Kind)
	require.Equal(t, "something went wrong", resp.Message)
	require.Empty(t, resp.Cause)
}

func TestToJSON_Nil(t *testing.T) {
	require.Nil(t, ToJSON(nil))
}

func TestMarshalJSON(t *testing.T) {
	err := New(KindInvalidRequest, "bad mode")
	data, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	require.JSONEq(t, `{"kind":"InvalidRequest","message":"bad mode"}`, string(data))
}
