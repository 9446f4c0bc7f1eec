package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jmgilman/fileaccess/fs/core"
	"github.com/jmgilman/fileaccess/fs/minio/internal/errs"
	"github.com/jmgilman/fileaccess/fs/minio/internal/pathutil"
)

// MinioFS implements core.FS for MinIO/S3-compatible storage.
// Directories are virtual: MkdirAll is a no-op and any key can be written.
//
//nolint:revive // MinioFS name is intentional to match LocalFS and MemoryFS
type MinioFS struct {
	client *minio.Client
	bucket string
	prefix string // Optional prefix for all keys
}

// NewMinIO creates a MinIO-backed filesystem.
// Returns error if configuration is invalid or the client cannot be built.
func NewMinIO(cfg Config) (*MinioFS, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
	}

	return &MinioFS{
		client: client,
		bucket: cfg.Bucket,
		prefix: pathutil.NormalizePrefix(cfg.Prefix),
	}, nil
}

// key joins the filesystem prefix with the given name.
func (m *MinioFS) key(name string) string {
	return pathutil.JoinPath(m.prefix, name)
}

// Open opens the named file for reading.
// The object is streamed; nothing is buffered in memory.
func (m *MinioFS) Open(name string) (fs.File, error) {
	return m.openRead(context.Background(), name)
}

// Stat returns file information for the named object.
func (m *MinioFS) Stat(name string) (fs.FileInfo, error) {
	info, err := m.client.StatObject(context.Background(), m.bucket, m.key(name), minio.StatObjectOptions{})
	if err != nil {
		return nil, errs.PathError("stat", name, err)
	}
	return &objectInfo{name: path.Base(pathutil.Normalize(name)), size: info.Size, modTime: info.LastModified}, nil
}

// ReadFile reads the named object and returns its contents.
func (m *MinioFS) ReadFile(name string) ([]byte, error) {
	f, err := m.openRead(context.Background(), name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named object exists.
func (m *MinioFS) Exists(name string) (bool, error) {
	_, err := m.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Create creates the named object for writing, replacing any existing one
// when the handle is closed.
func (m *MinioFS) Create(name string) (core.File, error) {
	return m.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0)
}

// OpenFile opens the named object with the specified flags.
//
// Supported: O_RDONLY, O_WRONLY with O_CREATE, O_TRUNC or O_APPEND.
// Writes are buffered and uploaded when the handle is closed; O_APPEND
// downloads the existing object first. O_RDWR, O_EXCL and O_SYNC return
// ErrUnsupported.
func (m *MinioFS) OpenFile(name string, flag int, _ fs.FileMode) (core.File, error) {
	switch {
	case flag&os.O_RDWR != 0:
		return nil, errs.PathErrorf("open", name, "%w: O_RDWR not supported in S3", core.ErrUnsupported)
	case flag&os.O_EXCL != 0:
		return nil, errs.PathErrorf("open", name, "%w: O_EXCL not supported in S3", core.ErrUnsupported)
	case flag&os.O_SYNC != 0:
		return nil, errs.PathErrorf("open", name, "%w: O_SYNC not supported in S3", core.ErrUnsupported)
	}

	ctx := context.Background()
	if flag&os.O_WRONLY == 0 {
		return m.openRead(ctx, name)
	}
	return m.openWrite(ctx, name, flag)
}

// WriteFile writes data to the named object.
func (m *MinioFS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	f, err := m.Create(name)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// MkdirAll is a no-op; S3 directories are virtual.
func (m *MinioFS) MkdirAll(string, fs.FileMode) error {
	return nil
}

// Remove removes the named object. Removing a missing object returns
// fs.ErrNotExist to match the local providers.
func (m *MinioFS) Remove(name string) error {
	ctx := context.Background()
	key := m.key(name)
	if _, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{}); err != nil {
		return errs.PathError("remove", name, err)
	}
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errs.PathError("remove", name, err)
	}
	return nil
}

// Type returns FSTypeRemote.
func (m *MinioFS) Type() core.FSType {
	return core.FSTypeRemote
}

func (m *MinioFS) openRead(ctx context.Context, name string) (*File, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, m.key(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, errs.PathError("open", name, err)
	}
	// GetObject is lazy; Stat forces the request so a missing key fails here
	// instead of on the first Read.
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, errs.PathError("open", name, err)
	}
	return newFileRead(m, name, obj, info), nil
}

func (m *MinioFS) openWrite(ctx context.Context, name string, flag int) (*File, error) {
	key := m.key(name)
	f := newFileWrite(m, key, name, flag)

	if flag&os.O_CREATE == 0 {
		if _, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{}); err != nil {
			return nil, errs.PathError("open", name, err)
		}
	}
	if flag&os.O_APPEND == 0 {
		return f, nil
	}

	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errs.PathError("open", name, err)
	}
	defer func() { _ = obj.Close() }()

	if _, err := f.buffer.ReadFrom(obj); err != nil {
		if !errors.Is(errs.Translate(err), fs.ErrNotExist) {
			return nil, errs.PathError("open", name, err)
		}
		f.buffer.Reset()
	}
	return f, nil
}

// Compile-time interface checks.
var _ core.FS = (*MinioFS)(nil)
