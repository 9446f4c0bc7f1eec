package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem rooted at a base directory.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
	// FSTypeRemote indicates an object store (MinIO, S3).
	FSTypeRemote
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	case FSTypeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// FS is the filesystem contract scoped file access opens handles through.
// FS embeds fs.FS for stdlib compatibility.
//
// All names are slash-separated and relative to the provider root. Providers
// must report failures as *fs.PathError wrapping the fs.Err* sentinels where
// one applies, so callers can classify them.
type FS interface {
	fs.FS // Ensures stdlib compatibility (provides Open returning fs.File)
	ReadFS
	WriteFS
	ManageFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading.
	// Open on a missing file must fail with an error matching fs.ErrNotExist.
	Open(name string) (fs.File, error)

	// Stat returns file metadata.
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined, not that the file doesn't exist.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named file for writing.
	Create(name string) (File, error)

	// OpenFile opens a file with the specified flags and permissions.
	// Providers must support at least:
	//
	//	os.O_RDONLY
	//	os.O_WRONLY|os.O_CREATE|os.O_TRUNC
	//	os.O_WRONLY|os.O_CREATE|os.O_APPEND
	//
	// and reject anything else with fs.ErrInvalid or ErrUnsupported.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating or truncating it.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary parents.
	// Providers with virtual directories treat this as a no-op.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines file removal.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	Remove(name string) error
}

// File represents an open file handle.
// File extends fs.File with write operations.
type File interface {
	fs.File // Embeds: Read([]byte) (int, error), Close() error, Stat() (fs.FileInfo, error)

	io.Writer

	// Name returns the name of the file as provided to Open or OpenFile.
	Name() string
}

// Syncer allows syncing file contents to stable storage.
//
// Not all File implementations support sync operations. Callers should use
// type assertion to check if this capability is available:
//
//	if s, ok := file.(Syncer); ok {
//	    err := s.Sync()
//	}
type Syncer interface {
	Sync() error
}
