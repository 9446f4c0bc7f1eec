package access

import (
	"fmt"
	"os"
	"strings"
)

// Mode selects how a file is opened.
type Mode int

const (
	// ModeRead opens an existing file for reading.
	ModeRead Mode = iota + 1
	// ModeWrite creates the file or truncates an existing one.
	ModeWrite
	// ModeAppend creates the file or positions writes at its end.
	ModeAppend
)

// ParseMode converts a mode name to a Mode. Single letter forms
// ("r", "w", "a") are accepted.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "read", "r":
		return ModeRead, nil
	case "write", "w":
		return ModeWrite, nil
	case "append", "a":
		return ModeAppend, nil
	default:
		return 0, fmt.Errorf("unknown access mode %q", name)
	}
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeAppend:
		return "append"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= ModeRead && m <= ModeAppend
}

func (m Mode) flag() int {
	switch m {
	case ModeWrite:
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case ModeAppend:
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	default:
		return os.O_RDONLY
	}
}

func (m Mode) readable() bool { return m == ModeRead }

func (m Mode) writable() bool { return m == ModeWrite || m == ModeAppend }
