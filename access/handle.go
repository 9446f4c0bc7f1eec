package access

import (
	"errors"
	"io"
	"io/fs"

	"golang.org/x/text/encoding"

	ferrors "github.com/jmgilman/fileaccess/errors"
	"github.com/jmgilman/fileaccess/fs/core"
)

// Handle is the open file passed to an access body. It is only valid for the
// duration of the body; any use after the body returns fails with
// fs.ErrClosed.
type Handle interface {
	io.Reader
	io.Writer

	// Name returns the request path the handle was opened for.
	Name() string

	// Mode returns the mode the handle was opened in.
	Mode() Mode
}

type handle struct {
	file  core.File
	name  string
	mode  Mode
	r     io.Reader
	w     io.Writer
	flush io.Closer

	// transcoded is set when an encoding other than UTF-8 is in use.
	transcoded bool
	closed     bool
}

func newHandle(f core.File, name string, mode Mode, enc encoding.Encoding) *handle {
	h := &handle{file: f, name: name, mode: mode, r: f, w: f}
	if enc != nil {
		h.transcoded = true
		if mode.readable() {
			h.r = enc.NewDecoder().Reader(f)
		}
		if mode.writable() {
			w := enc.NewEncoder().Writer(f)
			h.w = w
			h.flush, _ = w.(io.Closer)
		}
	}
	return h
}

func (h *handle) Name() string { return h.name }

func (h *handle) Mode() Mode { return h.mode }

func (h *handle) Read(p []byte) (int, error) {
	if h.closed {
		return 0, h.pathErr("read", fs.ErrClosed)
	}
	if !h.mode.readable() {
		return 0, h.pathErr("read", fs.ErrInvalid)
	}
	n, err := h.r.Read(p)
	return n, h.codecErr(err)
}

func (h *handle) Write(p []byte) (int, error) {
	if h.closed {
		return 0, h.pathErr("write", fs.ErrClosed)
	}
	if !h.mode.writable() {
		return 0, h.pathErr("write", fs.ErrInvalid)
	}
	n, err := h.w.Write(p)
	return n, h.codecErr(err)
}

// close flushes any pending encoder output and releases the file. Both steps
// run even if the flush fails.
func (h *handle) close() error {
	if h.closed {
		return h.pathErr("close", fs.ErrClosed)
	}
	h.closed = true

	var flushErr error
	if h.flush != nil {
		flushErr = h.codecErr(h.flush.Close())
	}
	return errors.Join(flushErr, h.file.Close())
}

// codecErr marks transcoding failures as malformed content. Errors raised by
// the file itself arrive as *fs.PathError and pass through unchanged.
func (h *handle) codecErr(err error) error {
	if err == nil || err == io.EOF || !h.transcoded {
		return err
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	return ferrors.Malformed(err)
}

func (h *handle) pathErr(op string, err error) error {
	return &fs.PathError{Op: op, Path: h.name, Err: err}
}
