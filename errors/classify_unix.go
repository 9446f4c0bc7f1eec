//go:build unix

package errors

import (
	stderrors "errors"
	"syscall"
)

// isNotDirErrno reports a path whose parent component is not a directory,
// which means the target cannot exist.
func isNotDirErrno(err error) bool {
	return stderrors.Is(err, syscall.ENOTDIR)
}

func isPermissionErrno(err error) bool {
	return stderrors.Is(err, syscall.EACCES) ||
		stderrors.Is(err, syscall.EPERM) ||
		stderrors.Is(err, syscall.EROFS)
}

func isErrno(err error) bool {
	var errno syscall.Errno
	return stderrors.As(err, &errno)
}
