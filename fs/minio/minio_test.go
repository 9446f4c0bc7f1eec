package minio

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/fileaccess/fs/core"
	"github.com/jmgilman/fileaccess/fs/minio/internal/errs"
	"github.com/jmgilman/fileaccess/fs/minio/internal/pathutil"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name: "valid config with credentials",
			config: Config{
				Endpoint:  "localhost:9000",
				Bucket:    "test-bucket",
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
			},
		},
		{
			name:   "valid config with client",
			config: Config{Client: &minio.Client{}, Bucket: "test-bucket"},
		},
		{
			name:    "missing bucket",
			config:  Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"},
			wantErr: "bucket is required",
		},
		{
			name:    "missing endpoint without client",
			config:  Config{Bucket: "b", AccessKey: "a", SecretKey: "s"},
			wantErr: "endpoint is required",
		},
		{
			name:    "missing access key",
			config:  Config{Bucket: "b", Endpoint: "localhost:9000", SecretKey: "s"},
			wantErr: "access key is required",
		},
		{
			name:    "missing secret key",
			config:  Config{Bucket: "b", Endpoint: "localhost:9000", AccessKey: "a"},
			wantErr: "secret key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewMinIO(t *testing.T) {
	mfs, err := NewMinIO(Config{
		Endpoint:  "localhost:9000",
		Bucket:    "demo",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Prefix:    "/demo_files/",
	})
	require.NoError(t, err)
	assert.Equal(t, "demo_files", mfs.prefix)
	assert.Equal(t, "demo_files/data.txt", mfs.key("data.txt"))
	assert.Equal(t, core.FSTypeRemote, mfs.Type())

	_, err = NewMinIO(Config{})
	require.Error(t, err)
}

func TestPathutil(t *testing.T) {
	tests := []struct {
		prefix, name, want string
	}{
		{"", "data.txt", "data.txt"},
		{"", "/a/b/../c.txt", "a/c.txt"},
		{"", "./x.txt", "x.txt"},
		{"base", "data.txt", "base/data.txt"},
		{"base", "../../escape.txt", "base/escape.txt"},
		{"base", ".", "base"},
		{"", `dir\file.txt`, "dir/file.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.prefix+"|"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathutil.JoinPath(tt.prefix, tt.name))
		})
	}

	assert.Equal(t, "", pathutil.NormalizePrefix("."))
	assert.Equal(t, "", pathutil.NormalizePrefix(""))
	assert.Equal(t, "a/b", pathutil.NormalizePrefix("/a/b/"))
	assert.Equal(t, ".", pathutil.Normalize(""))
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no such key", minio.ErrorResponse{Code: "NoSuchKey"}, fs.ErrNotExist},
		{"no such bucket", minio.ErrorResponse{Code: "NoSuchBucket"}, fs.ErrNotExist},
		{"access denied", minio.ErrorResponse{Code: "AccessDenied"}, fs.ErrPermission},
		{"bad signature", minio.ErrorResponse{Code: "SignatureDoesNotMatch"}, fs.ErrPermission},
		{"invalid name", minio.ErrorResponse{Code: "InvalidObjectName"}, fs.ErrInvalid},
		{"already translated", fs.ErrNotExist, fs.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, errs.Translate(tt.err), tt.want)
		})
	}

	assert.NoError(t, errs.Translate(nil))

	other := errs.Translate(errors.New("connection reset"))
	assert.Contains(t, other.Error(), "minio: connection reset")

	var pathErr *fs.PathError
	require.ErrorAs(t, errs.PathError("open", "x.txt", minio.ErrorResponse{Code: "NoSuchKey"}), &pathErr)
	assert.Equal(t, "x.txt", pathErr.Path)
	assert.ErrorIs(t, pathErr, fs.ErrNotExist)
	assert.NoError(t, errs.PathError("open", "x.txt", nil))
}

func TestOpenFile_UnsupportedFlags(t *testing.T) {
	mfs := &MinioFS{bucket: "b"}
	for _, flag := range []int{os.O_RDWR, os.O_WRONLY | os.O_CREATE | os.O_EXCL, os.O_WRONLY | os.O_SYNC} {
		_, err := mfs.OpenFile("x.txt", flag, 0)
		assert.ErrorIs(t, err, core.ErrUnsupported)
	}
}

// nopObject satisfies objectReader without a server.
type nopObject struct {
	*bytes.Reader
	closed int
}

func (o *nopObject) Close() error {
	o.closed++
	return nil
}

func TestFile_ReadHandle(t *testing.T) {
	obj := &nopObject{Reader: bytes.NewReader([]byte("hello\n"))}
	f := newFileRead(&MinioFS{}, "dir/hello.txt", obj, minio.ObjectInfo{Key: "dir/hello.txt", Size: 6})

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	_, err = f.Write([]byte("x"))
	assert.ErrorIs(t, err, fs.ErrInvalid)

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, "hello.txt", info.Name())
	assert.Equal(t, int64(6), info.Size())

	require.NoError(t, f.Close())
	assert.ErrorIs(t, f.Close(), fs.ErrClosed)
	assert.Equal(t, 1, obj.closed)

	_, err = f.Read(make([]byte, 1))
	assert.ErrorIs(t, err, fs.ErrClosed)
}

func TestFile_WriteHandleBuffers(t *testing.T) {
	f := newFileWrite(&MinioFS{}, "out.txt", "out.txt", os.O_WRONLY|os.O_CREATE|os.O_TRUNC)

	n, err := f.Write([]byte("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = f.Read(make([]byte, 1))
	assert.ErrorIs(t, err, fs.ErrInvalid)

	_, err = f.Seek(0, io.SeekStart)
	assert.ErrorIs(t, err, core.ErrUnsupported)

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(4), info.Size())
	assert.Equal(t, "out.txt", f.Name())
}
