package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/jmgilman/fileaccess/fs/core"
	"github.com/jmgilman/fileaccess/fs/minio/internal/errs"
	"github.com/jmgilman/fileaccess/fs/minio/internal/pathutil"
)

// objectReader is the subset of *minio.Object a read handle needs.
type objectReader interface {
	io.ReadSeekCloser
}

// File represents a MinIO object handle.
// Read handles stream the object; write handles buffer and upload on Close.
type File struct {
	fs   *MinioFS
	key  string // Full S3 key (including prefix)
	name string // Original name provided to Open/OpenFile
	flag int

	// Read mode
	reader  objectReader
	size    int64
	modTime time.Time

	// Write mode
	buffer *bytes.Buffer

	closed bool
}

func newFileRead(mfs *MinioFS, name string, obj objectReader, info minio.ObjectInfo) *File {
	return &File{
		fs:      mfs,
		key:     info.Key,
		name:    name,
		flag:    os.O_RDONLY,
		reader:  obj,
		size:    info.Size,
		modTime: info.LastModified,
	}
}

func newFileWrite(mfs *MinioFS, key, name string, flag int) *File {
	return &File{
		fs:     mfs,
		key:    key,
		name:   name,
		flag:   flag,
		buffer: new(bytes.Buffer),
	}
}

func (f *File) writable() bool {
	return f.flag&os.O_WRONLY != 0
}

// Read reads up to len(p) bytes into p. Only read handles support Read.
func (f *File) Read(p []byte) (int, error) {
	if f.closed {
		return 0, errs.PathError("read", f.name, fs.ErrClosed)
	}
	if f.writable() || f.reader == nil {
		return 0, errs.PathError("read", f.name, fs.ErrInvalid)
	}
	n, err := f.reader.Read(p)
	if err == nil || errors.Is(err, io.EOF) {
		return n, err
	}
	return n, errs.PathError("read", f.name, err)
}

// Write appends p to the upload buffer. Only write handles support Write.
func (f *File) Write(p []byte) (int, error) {
	if f.closed {
		return 0, errs.PathError("write", f.name, fs.ErrClosed)
	}
	if !f.writable() {
		return 0, errs.PathError("write", f.name, fs.ErrInvalid)
	}
	return f.buffer.Write(p)
}

// Seek sets the offset for the next Read. Only read handles support Seek.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.writable() || f.reader == nil {
		return 0, errs.PathError("seek", f.name, core.ErrUnsupported)
	}
	pos, err := f.reader.Seek(offset, whence)
	if err != nil {
		return pos, errs.PathError("seek", f.name, err)
	}
	return pos, nil
}

// Close releases the handle. For write handles the buffered content is
// uploaded; an upload failure is returned and the handle is still closed.
func (f *File) Close() error {
	if f.closed {
		return errs.PathError("close", f.name, fs.ErrClosed)
	}
	f.closed = true

	if !f.writable() {
		if f.reader == nil {
			return nil
		}
		if err := f.reader.Close(); err != nil {
			return errs.PathError("close", f.name, err)
		}
		return nil
	}

	data := f.buffer.Bytes()
	_, err := f.fs.client.PutObject(
		context.Background(),
		f.fs.bucket,
		f.key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"},
	)
	if err != nil {
		return errs.PathError("close", f.name, err)
	}
	return nil
}

// Stat returns file information. Write handles report the buffered size.
func (f *File) Stat() (fs.FileInfo, error) {
	base := path.Base(pathutil.Normalize(f.name))
	if f.writable() {
		return &objectInfo{name: base, size: int64(f.buffer.Len()), modTime: time.Now()}, nil
	}
	return &objectInfo{name: base, size: f.size, modTime: f.modTime}, nil
}

// Name returns the name provided to Open/OpenFile.
func (f *File) Name() string {
	return f.name
}

// objectInfo implements fs.FileInfo for MinIO objects.
type objectInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (fi *objectInfo) Name() string       { return fi.name }
func (fi *objectInfo) Size() int64        { return fi.size }
func (fi *objectInfo) Mode() fs.FileMode  { return 0o644 }
func (fi *objectInfo) ModTime() time.Time { return fi.modTime }
func (fi *objectInfo) IsDir() bool        { return false }
func (fi *objectInfo) Sys() interface{}   { return nil }

// Compile-time interface checks.
var (
	_ core.File   = (*File)(nil)
	_ fs.File     = (*File)(nil)
	_ io.Seeker   = (*File)(nil)
	_ fs.FileInfo = (*objectInfo)(nil)
)
