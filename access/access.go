package access

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"golang.org/x/text/encoding"

	ferrors "github.com/jmgilman/fileaccess/errors"
	"github.com/jmgilman/fileaccess/fs/core"
	"github.com/jmgilman/fileaccess/internal/logging"
)

// DefaultPerm is the permission used when write or append creates a file.
const DefaultPerm fs.FileMode = 0o644

// Accessor runs scoped file accesses against a single filesystem. It is safe
// for concurrent use.
type Accessor struct {
	fsys     core.FS
	base     string
	reporter Reporter
	logger   *slog.Logger
	perm     fs.FileMode
	onState  func(Request, State)
}

// Option configures an Accessor.
type Option func(*Accessor)

// WithBaseDir sets the directory request paths are shown relative to. It
// defaults to the provider root for local filesystems.
func WithBaseDir(dir string) Option {
	return func(a *Accessor) { a.base = dir }
}

// WithReporter sets the status side channel. Defaults to NopReporter.
func WithReporter(r Reporter) Option {
	return func(a *Accessor) {
		if r != nil {
			a.reporter = r
		}
	}
}

// WithLogger sets the structured logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Accessor) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithPerm sets the permission for files created by write and append.
func WithPerm(perm fs.FileMode) Option {
	return func(a *Accessor) { a.perm = perm }
}

// WithStateHook registers fn to observe every state transition.
func WithStateHook(fn func(Request, State)) Option {
	return func(a *Accessor) { a.onState = fn }
}

// New returns an Accessor over fsys.
func New(fsys core.FS, opts ...Option) *Accessor {
	a := &Accessor{
		fsys:     fsys,
		reporter: NopReporter{},
		logger:   logging.Nop(),
		perm:     DefaultPerm,
	}
	if r, ok := fsys.(interface{ Root() string }); ok {
		a.base = r.Root()
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FS returns the underlying filesystem.
func (a *Accessor) FS() core.FS { return a.fsys }

// Resolve joins p onto the base directory using the platform separator.
// The path is validated the same way Access validates request paths.
func (a *Accessor) Resolve(p string) (string, error) {
	name, err := cleanPath(p)
	if err != nil {
		return "", ferrors.WrapWithContext(err, ferrors.KindInvalidRequest,
			"invalid path "+quote(p), map[string]interface{}{"path": p})
	}
	return filepath.Join(a.base, filepath.FromSlash(name)), nil
}

// Exists reports whether p exists below the base directory. A path through a
// regular file reports false rather than an error.
func (a *Accessor) Exists(p string) (bool, error) {
	name, err := cleanPath(p)
	if err != nil {
		return false, ferrors.WrapWithContext(err, ferrors.KindInvalidRequest,
			"invalid path "+quote(p), map[string]interface{}{"path": p})
	}
	ok, err := a.fsys.Exists(name)
	if err != nil {
		kind := ferrors.Classify(err)
		if kind == ferrors.KindNotFound {
			return false, nil
		}
		return false, ferrors.WrapWithContext(err, kind, message(kind, p), map[string]interface{}{"path": p})
	}
	return ok, nil
}

// MkdirAll creates directory p and any missing parents below the base
// directory.
func (a *Accessor) MkdirAll(p string) error {
	name, err := cleanPath(p)
	if err != nil {
		return ferrors.WrapWithContext(err, ferrors.KindInvalidRequest,
			"invalid path "+quote(p), map[string]interface{}{"path": p})
	}
	if err := a.fsys.MkdirAll(name, 0o755); err != nil {
		kind := ferrors.Classify(err)
		return ferrors.WrapWithContext(err, kind, message(kind, p), map[string]interface{}{"path": p})
	}
	return nil
}

// Access opens the file described by req, runs body against it and releases
// the handle exactly once on every exit path.
//
// Validation failures are reported as KindInvalidRequest and never open
// anything. Failures while opening, in body (including panics) or while
// releasing are classified with errors.Classify. A release failure becomes
// the result only when nothing else failed.
//
// The reporter sees the failure line (if any), then the release line, then
// the continuing line, delivered together for reporters that batch.
func Access[T any](a *Accessor, req Request, body func(Handle) (T, error)) (result T, err error) {
	c := a.begin(req)
	defer c.finish()

	if body == nil {
		return result, c.fail(invalid(req, "no access body given"))
	}

	name, enc, err := req.resolve()
	if err != nil {
		return result, c.fail(err)
	}

	h, err := c.open(name, enc)
	if err != nil {
		return result, c.fail(err)
	}

	defer func() {
		if rerr := c.release(h); rerr != nil && err == nil {
			var zero T
			result, err = zero, rerr
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result, err = zero, c.fail(&panicError{value: r})
		}
	}()

	result, err = body(h)
	if err != nil {
		var zero T
		return zero, c.fail(err)
	}
	return result, nil
}

// Do is Access for bodies that produce no value.
func Do(a *Accessor, req Request, body func(Handle) error) error {
	var fn func(Handle) (struct{}, error)
	if body != nil {
		fn = func(h Handle) (struct{}, error) { return struct{}{}, body(h) }
	}
	_, err := Access(a, req, fn)
	return err
}

// ReadAll reads the whole file named by req.
func ReadAll(a *Accessor, req Request) ([]byte, error) {
	return Access(a, req, func(h Handle) ([]byte, error) {
		return io.ReadAll(h)
	})
}

// WriteAll writes data through a write or append request.
func WriteAll(a *Accessor, req Request, data []byte) error {
	return Do(a, req, func(h Handle) error {
		_, err := h.Write(data)
		return err
	})
}

type call struct {
	a      *Accessor
	req    Request
	state  State
	events []func(Reporter)
	log    *slog.Logger
}

func (a *Accessor) begin(req Request) *call {
	return &call{
		a:     a,
		req:   req,
		state: StateUnopened,
		log:   a.logger.With("path", req.Path, "mode", req.Mode.String()),
	}
}

func (c *call) transition(s State) {
	c.state = s
	if c.a.onState != nil {
		c.a.onState(c.req, s)
	}
}

func (c *call) open(name string, enc encoding.Encoding) (*handle, error) {
	c.transition(StateOpening)
	c.log.Debug("opening file", "resolved", filepath.Join(c.a.base, filepath.FromSlash(name)))

	f, err := c.a.fsys.OpenFile(name, c.req.Mode.flag(), c.a.perm)
	if err != nil {
		c.transition(StateOpenFailed)
		return nil, err
	}

	c.transition(StateOpen)
	return newHandle(f, c.req.Path, c.req.Mode, enc), nil
}

func (c *call) release(h *handle) error {
	if c.state != StateOpen {
		return nil
	}

	err := h.close()
	c.transition(StateClosed)
	if err != nil {
		kind := ferrors.Classify(err)
		c.log.Warn("release failed", "kind", kind.String(), "error", err)
		c.events = append(c.events, func(r Reporter) { r.ReleaseFailed(c.req.Path, err) })
		return ferrors.WrapWithContext(err, kind, "failed to release "+c.req.Path, requestContext(c.req))
	}

	c.log.Debug("file released")
	c.events = append(c.events, func(r Reporter) { r.Closed(c.req.Path) })
	return nil
}

// fail classifies err, records the failure line and returns the error handed
// back to the caller.
func (c *call) fail(err error) error {
	kind := ferrors.Classify(err)

	var (
		out   ferrors.FileError
		cause error
	)
	if fe, ok := err.(ferrors.FileError); ok {
		out = ferrors.WithContextMap(fe, requestContext(c.req))
		cause = fe.Unwrap()
		if cause == nil {
			cause = messageError(fe.Message())
		}
	} else {
		out = ferrors.WrapWithContext(err, kind, message(kind, c.req.Path), requestContext(c.req))
		cause = err
	}

	c.log.Info("file access failed", "kind", kind.String(), "error", cause)
	c.events = append(c.events, func(r Reporter) { r.Failure(kind, cause) })
	return out
}

func (c *call) finish() {
	c.events = append(c.events, func(r Reporter) { r.Continuing() })

	replay := func(r Reporter) {
		for _, ev := range c.events {
			ev(r)
		}
	}
	if br, ok := c.a.reporter.(BatchReporter); ok {
		if err := br.Batch(replay); err != nil {
			c.log.Warn("writing status lines failed", "error", err)
		}
		return
	}
	replay(c.a.reporter)
}

// message returns the caller facing text for a failure of kind on path.
func message(kind ferrors.Kind, path string) string {
	switch kind {
	case ferrors.KindNotFound:
		return path + " was not found"
	case ferrors.KindPermissionDenied:
		return "permission denied accessing " + path
	case ferrors.KindMalformedContent:
		return path + " contains malformed content"
	case ferrors.KindGenericOSFailure:
		return "I/O failure accessing " + path
	case ferrors.KindInvalidRequest:
		return "invalid request for " + path
	default:
		return "unexpected failure accessing " + path
	}
}

type messageError string

func (e messageError) Error() string { return string(e) }

type panicError struct {
	value interface{}
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}
