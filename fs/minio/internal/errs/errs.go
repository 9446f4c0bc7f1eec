// Package errs translates MinIO responses into stdlib fs errors.
package errs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/minio/minio-go/v7"
)

// Translate converts MinIO errors to stdlib fs errors so callers can classify
// them without knowing the backend.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return err
	}

	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return fs.ErrNotExist
	case "AccessDenied", "AllAccessDisabled", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return fs.ErrPermission
	case "InvalidObjectName", "KeyTooLongError":
		return fs.ErrInvalid
	}

	return fmt.Errorf("minio: %w", err)
}

// PathError wraps the translated error in a fs.PathError for the given
// operation and path. If the error is nil, returns nil.
func PathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &fs.PathError{Op: op, Path: path, Err: Translate(err)}
}

// PathErrorf creates a fs.PathError with a formatted error message.
func PathErrorf(op, path, format string, args ...interface{}) error {
	return &fs.PathError{Op: op, Path: path, Err: fmt.Errorf(format, args...)}
}
