//go:build !unix

package errors

func isNotDirErrno(error) bool { return false }

func isPermissionErrno(error) bool { return false }

func isErrno(error) bool { return false }
