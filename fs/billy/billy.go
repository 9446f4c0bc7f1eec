package billy

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/fileaccess/fs/core"
)

// LocalFS wraps billy's osfs bound to a base directory.
// Every name is resolved inside the base directory; symlinks and ".." cannot
// escape it.
type LocalFS struct {
	*base
	root string
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
type MemoryFS struct {
	*base
}

// base holds the core.FS implementation shared by both providers.
type base struct {
	bfs    billy.Filesystem
	fsType core.FSType
}

// NewLocal creates a go-billy-backed local filesystem rooted at root.
// The directory does not need to exist until the first operation.
func NewLocal(root string) *LocalFS {
	return &LocalFS{
		base: &base{
			bfs:    osfs.New(root, osfs.WithBoundOS()),
			fsType: core.FSTypeLocal,
		},
		root: root,
	}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory() *MemoryFS {
	return &MemoryFS{
		base: &base{
			bfs:    memfs.New(),
			fsType: core.FSTypeMemory,
		},
	}
}

// Root returns the base directory the filesystem is bound to.
func (lfs *LocalFS) Root() string {
	return lfs.root
}

// Unwrap returns the underlying billy.Filesystem.
func (b *base) Unwrap() billy.Filesystem {
	return b.bfs
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

func (b *base) newFile(f billy.File, name string, flag int) *File {
	return &File{file: f, fs: b.bfs, name: name, flag: flag}
}

// Open opens the named file for reading.
func (b *base) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := b.bfs.Open(name)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	return b.newFile(f, name, os.O_RDONLY), nil
}

// Stat returns file metadata for the named file.
func (b *base) Stat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	info, err := b.bfs.Stat(name)
	if err != nil {
		return nil, pathError("stat", name, err)
	}
	return info, nil
}

// ReadFile reads the named file and returns its contents.
func (b *base) ReadFile(name string) ([]byte, error) {
	name = normalize(name)
	f, err := b.bfs.Open(name)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (b *base) Exists(name string) (bool, error) {
	_, err := b.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (b *base) Create(name string) (core.File, error) {
	return b.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
}

// OpenFile opens a file with the specified flags and permissions.
// Parent directories are created when O_CREATE is set.
func (b *base) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	f, err := b.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	return b.newFile(f, name, flag), nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (b *base) WriteFile(name string, data []byte, perm fs.FileMode) (err error) {
	f, err := b.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (b *base) MkdirAll(path string, perm fs.FileMode) error {
	path = normalize(path)
	if err := b.bfs.MkdirAll(path, perm); err != nil {
		return pathError("mkdir", path, err)
	}
	return nil
}

// Remove removes the named file or empty directory.
func (b *base) Remove(name string) error {
	name = normalize(name)
	if err := b.bfs.Remove(name); err != nil {
		return pathError("remove", name, err)
	}
	return nil
}

// Type returns the provider type.
func (b *base) Type() core.FSType {
	return b.fsType
}

// pathError wraps err in an *fs.PathError unless it already is one.
// memfs returns bare sentinels; osfs returns *fs.PathError.
func pathError(op, name string, err error) error {
	if _, ok := err.(*fs.PathError); ok {
		return err
	}
	return &fs.PathError{Op: op, Path: name, Err: err}
}

// Compile-time interface checks.
var (
	_ core.FS = (*LocalFS)(nil)
	_ core.FS = (*MemoryFS)(nil)
)
