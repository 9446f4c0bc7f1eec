package core

import (
	"errors"
	"io/fs"
)

// Providers report failures as *fs.PathError wrapping one of these values so
// the access layer can classify them without knowing the backend. Local and
// memory providers get them from the OS or go-billy; the object store
// provider translates S3 error codes into them.
var (
	// ErrNotExist: the key or path is missing, including read-mode opens of
	// absent files.
	ErrNotExist = fs.ErrNotExist

	// ErrExist: an exclusive create found an existing entry.
	ErrExist = fs.ErrExist

	// ErrPermission: the OS or the object store refused access.
	ErrPermission = fs.ErrPermission

	// ErrClosed: a handle was used after release, or released twice.
	ErrClosed = fs.ErrClosed

	// ErrUnsupported: the open flags ask for something the provider cannot
	// do, such as O_RDWR on an object store.
	ErrUnsupported = errors.New("operation not supported")
)
