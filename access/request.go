package access

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	ferrors "github.com/jmgilman/fileaccess/errors"
)

// Request describes a single file access.
type Request struct {
	// Path is relative to the accessor's base directory.
	Path string
	Mode Mode
	// Encoding is an IANA charset name. Empty selects UTF-8 passthrough.
	Encoding string
}

// Read is shorthand for a read request.
func Read(path string) Request { return Request{Path: path, Mode: ModeRead} }

// Write is shorthand for a write request.
func Write(path string) Request { return Request{Path: path, Mode: ModeWrite} }

// Append is shorthand for an append request.
func Append(path string) Request { return Request{Path: path, Mode: ModeAppend} }

// WithEncoding returns a copy of r using the named encoding.
func (r Request) WithEncoding(name string) Request {
	r.Encoding = name
	return r
}

// Validate checks the request without touching the filesystem. The returned
// error is always of kind InvalidRequest.
func (r Request) Validate() error {
	_, _, err := r.resolve()
	return err
}

// resolve validates the request and returns the provider name (slash
// separated, relative) and the text encoding, nil for UTF-8 passthrough.
func (r Request) resolve() (string, encoding.Encoding, error) {
	if !r.Mode.Valid() {
		return "", nil, invalid(r, "unknown access mode %s", r.Mode)
	}
	name, err := cleanPath(r.Path)
	if err != nil {
		return "", nil, ferrors.WrapWithContext(err, ferrors.KindInvalidRequest,
			"invalid path "+quote(r.Path), requestContext(r))
	}
	enc, err := lookupEncoding(r.Encoding)
	if err != nil {
		return "", nil, ferrors.WrapWithContext(err, ferrors.KindInvalidRequest,
			"unsupported encoding "+quote(r.Encoding), requestContext(r))
	}
	return name, enc, nil
}

func cleanPath(p string) (string, error) {
	switch {
	case strings.TrimSpace(p) == "":
		return "", errEmptyPath
	case filepath.IsAbs(p) || strings.HasPrefix(p, "/") || strings.HasPrefix(p, `\`):
		return "", errAbsolutePath
	case !filepath.IsLocal(p):
		return "", errEscapesBase
	}
	name := filepath.ToSlash(filepath.Clean(p))
	if name == "." {
		return "", errEmptyPath
	}
	return name, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, errNoEncoder
	}
	return enc, nil
}

func invalid(r Request, format string, args ...interface{}) error {
	return ferrors.WithContextMap(ferrors.Newf(ferrors.KindInvalidRequest, format, args...), requestContext(r))
}

func requestContext(r Request) map[string]interface{} {
	return map[string]interface{}{
		"path": r.Path,
		"mode": r.Mode.String(),
	}
}

func quote(s string) string { return `"` + s + `"` }
