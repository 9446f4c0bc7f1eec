package access

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	ferrors "github.com/jmgilman/fileaccess/errors"
)

// Status lines written by ConsoleReporter.
const (
	ClosedLine     = "File closed"
	ContinuingLine = "Continuing the program..."
)

// Reporter receives the status side channel of each access.
type Reporter interface {
	// Failure is called once when an access fails, before release.
	Failure(kind ferrors.Kind, cause error)
	// Closed is called after the handle was released successfully.
	Closed(name string)
	// ReleaseFailed is called instead of Closed when release fails.
	ReleaseFailed(name string, err error)
	// Continuing is called last on every exit path.
	Continuing()
}

// BatchReporter is a Reporter that can group the notifications of one call so
// they are emitted together. Access uses Batch when the reporter supports it.
type BatchReporter interface {
	Reporter
	Batch(fn func(Reporter)) error
}

// ConsoleReporter writes one line per notification. It is safe for
// concurrent use and never interleaves the lines of two calls.
type ConsoleReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleReporter returns a reporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

func (c *ConsoleReporter) Failure(kind ferrors.Kind, cause error) {
	c.write(failureLine(kind, cause))
}

func (c *ConsoleReporter) Closed(string) {
	c.write(ClosedLine)
}

func (c *ConsoleReporter) ReleaseFailed(_ string, err error) {
	c.write(failureLine(ferrors.Classify(err), err))
}

func (c *ConsoleReporter) Continuing() {
	c.write(ContinuingLine)
}

// Batch runs fn against a buffer and writes everything it produced in a
// single locked write.
func (c *ConsoleReporter) Batch(fn func(Reporter)) error {
	buf := &lineBuffer{}
	fn(buf)

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.w.Write(buf.Bytes())
	return err
}

func (c *ConsoleReporter) write(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.w, line)
}

type lineBuffer struct {
	bytes.Buffer
}

func (b *lineBuffer) Failure(kind ferrors.Kind, cause error) {
	b.line(failureLine(kind, cause))
}

func (b *lineBuffer) Closed(string) { b.line(ClosedLine) }

func (b *lineBuffer) ReleaseFailed(_ string, err error) {
	b.line(failureLine(ferrors.Classify(err), err))
}

func (b *lineBuffer) Continuing() { b.line(ContinuingLine) }

func (b *lineBuffer) line(s string) {
	b.WriteString(s)
	b.WriteByte('\n')
}

func failureLine(kind ferrors.Kind, cause error) string {
	if cause == nil {
		return kind.String()
	}
	return fmt.Sprintf("%s: %v", kind, cause)
}

// NopReporter discards all notifications.
type NopReporter struct{}

func (NopReporter) Failure(ferrors.Kind, error) {}
func (NopReporter) Closed(string)               {}
func (NopReporter) ReleaseFailed(string, error) {}
func (NopReporter) Continuing()                 {}

var (
	_ BatchReporter = (*ConsoleReporter)(nil)
	_ Reporter      = NopReporter{}
)
