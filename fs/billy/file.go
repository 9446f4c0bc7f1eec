package billy

import (
	"io"
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/fileaccess/fs/core"
)

// File wraps billy.File to implement both core.File and fs.File.
// It stores the filename since billy.File.Name() may return different formats
// depending on the backend, and the open flags so mode violations fail the
// same way on every backend.
type File struct {
	file   billy.File
	fs     billy.Basic // Need Basic for Stat() method
	name   string
	flag   int
	closed bool
}

// Read implements io.Reader (required by fs.File).
func (f *File) Read(p []byte) (int, error) {
	if f.closed {
		return 0, &fs.PathError{Op: "read", Path: f.name, Err: fs.ErrClosed}
	}
	if f.flag&os.O_WRONLY != 0 {
		return 0, &fs.PathError{Op: "read", Path: f.name, Err: fs.ErrInvalid}
	}
	return f.file.Read(p)
}

// Write implements io.Writer (required by core.File).
func (f *File) Write(p []byte) (int, error) {
	if f.closed {
		return 0, &fs.PathError{Op: "write", Path: f.name, Err: fs.ErrClosed}
	}
	if f.flag&(os.O_WRONLY|os.O_RDWR) == 0 {
		return 0, &fs.PathError{Op: "write", Path: f.name, Err: fs.ErrInvalid}
	}
	return f.file.Write(p)
}

// Close implements io.Closer (required by fs.File).
// A second Close returns fs.ErrClosed without touching the backend.
func (f *File) Close() error {
	if f.closed {
		return &fs.PathError{Op: "close", Path: f.name, Err: fs.ErrClosed}
	}
	f.closed = true
	return f.file.Close()
}

// Stat implements fs.File.Stat.
// Since billy.File doesn't provide Stat(), we call the filesystem's Stat() method.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name provided to Open/OpenFile.
func (f *File) Name() string {
	return f.name
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Sync implements core.Syncer.
// For backends without Sync (e.g., memfs), this is a no-op.
func (f *File) Sync() error {
	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.File   = (*File)(nil)
	_ fs.File     = (*File)(nil)
	_ io.Seeker   = (*File)(nil)
	_ core.Syncer = (*File)(nil)
)
