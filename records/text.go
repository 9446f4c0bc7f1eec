package records

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jmgilman/fileaccess/access"
	ferrors "github.com/jmgilman/fileaccess/errors"
)

// maxLineSize bounds a single line read by the line helpers.
const maxLineSize = 1 << 20

// ReadText returns the whole file as a string. The content must be valid
// UTF-8.
func ReadText(a *access.Accessor, path string) (string, error) {
	return access.Access(a, access.Read(path), func(h access.Handle) (string, error) {
		data, err := io.ReadAll(h)
		if err != nil {
			return "", err
		}
		if err := ferrors.ValidUTF8(data); err != nil {
			return "", err
		}
		return string(data), nil
	})
}

// WriteText replaces the file content with s.
func WriteText(a *access.Accessor, path, s string) error {
	return access.WriteAll(a, access.Write(path), []byte(s))
}

// AppendText adds s to the end of the file, creating it if needed.
func AppendText(a *access.Accessor, path, s string) error {
	return access.WriteAll(a, access.Append(path), []byte(s))
}

// ReadLines returns every line of the file without line terminators.
func ReadLines(a *access.Accessor, path string) ([]string, error) {
	return ScanLines(a, path, nil)
}

// ScanLines reads lines until stop reports true or the file ends. The line
// that stopped the scan is included in the result. A nil stop reads the
// whole file.
func ScanLines(a *access.Accessor, path string, stop func(line string) bool) ([]string, error) {
	return access.Access(a, access.Read(path), func(h access.Handle) ([]string, error) {
		sc := bufio.NewScanner(h)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		var lines []string
		for n := 1; sc.Scan(); n++ {
			raw := sc.Bytes()
			if !utf8.Valid(raw) {
				return nil, ferrors.Malformed(fmt.Errorf("line %d: %w", n, ferrors.ErrInvalidUTF8))
			}
			line := string(raw)
			lines = append(lines, line)
			if stop != nil && stop(line) {
				break
			}
		}
		if err := sc.Err(); err != nil {
			if ferrors.Is(err, bufio.ErrTooLong) {
				return nil, ferrors.Malformed(err)
			}
			return nil, err
		}
		return lines, nil
	})
}

// Contains returns a ScanLines stop predicate matching lines containing sub.
func Contains(sub string) func(string) bool {
	return func(line string) bool { return strings.Contains(line, sub) }
}

// WriteLines replaces the file with lines, each terminated by a newline.
func WriteLines(a *access.Accessor, path string, lines []string) error {
	return access.WriteAll(a, access.Write(path), joinLines(lines))
}

// AppendLines adds lines to the end of the file, each terminated by a
// newline.
func AppendLines(a *access.Accessor, path string, lines ...string) error {
	return access.WriteAll(a, access.Append(path), joinLines(lines))
}

func joinLines(lines []string) []byte {
	var buf bytes.Buffer
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
