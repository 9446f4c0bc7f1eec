package access

import "errors"

var (
	errEmptyPath    = errors.New("path is empty")
	errAbsolutePath = errors.New("path must be relative to the base directory")
	errEscapesBase  = errors.New("path escapes the base directory")
	errNoEncoder    = errors.New("encoding has no codec")
)
