package fstest

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/jmgilman/fileaccess/fs/core"
)

// Flag sets every provider must support.
const (
	readFlag   = os.O_RDONLY
	writeFlag  = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	appendFlag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
)

// TestModes tests the read, write and append open modes with POSIXTestConfig.
func TestModes(t *testing.T, filesystem core.FS) {
	TestModesWithConfig(t, filesystem, POSIXTestConfig())
}

// TestModesWithConfig tests the open modes with behavior configuration.
func TestModesWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	config.run(t, "Modes", "WriteCreates", func(t *testing.T) {
		writeThrough(t, filesystem, "created.txt", writeFlag, "a\nb\nc\n")
		expectContent(t, filesystem, "created.txt", "a\nb\nc\n")
	})

	config.run(t, "Modes", "WriteTruncates", func(t *testing.T) {
		writeThrough(t, filesystem, "truncated.txt", writeFlag, "a much longer first version\n")
		writeThrough(t, filesystem, "truncated.txt", writeFlag, "short\n")
		expectContent(t, filesystem, "truncated.txt", "short\n")
	})

	config.run(t, "Modes", "AppendCreates", func(t *testing.T) {
		writeThrough(t, filesystem, "appended-new.txt", appendFlag, "first\n")
		expectContent(t, filesystem, "appended-new.txt", "first\n")
	})

	config.run(t, "Modes", "AppendExtends", func(t *testing.T) {
		writeThrough(t, filesystem, "appended.txt", writeFlag, "head\n")
		writeThrough(t, filesystem, "appended.txt", appendFlag, "New entry\n")
		writeThrough(t, filesystem, "appended.txt", appendFlag, "New entry\n")
		expectContent(t, filesystem, "appended.txt", "head\nNew entry\nNew entry\n")
	})

	config.run(t, "Modes", "BinaryRoundTrip", func(t *testing.T) {
		payload := []byte{0x00, 0xff, 0x10, '\r', '\n', 0x7f}
		writeThrough(t, filesystem, "binary.bin", writeFlag, string(payload))
		expectContent(t, filesystem, "binary.bin", string(payload))
	})

	config.run(t, "Modes", "NestedCreate", func(t *testing.T) {
		if !config.ImplicitParentDirs {
			t.Skip("provider requires parent directories")
			return
		}
		writeThrough(t, filesystem, "nested/dir/file.txt", writeFlag, "deep\n")
		expectContent(t, filesystem, "nested/dir/file.txt", "deep\n")
	})
}

func writeThrough(t *testing.T, filesystem core.FS, name string, flag int, content string) {
	t.Helper()
	f, err := filesystem.OpenFile(name, flag, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q, %#x): got error %v", name, flag, err)
	}
	if _, err := io.WriteString(f, content); err != nil {
		_ = f.Close()
		t.Fatalf("Write(%q): got error %v", name, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(%q): got error %v", name, err)
	}
}

func expectContent(t *testing.T, filesystem core.FS, name, want string) {
	t.Helper()
	got, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v", name, err)
	}
	if !bytes.Equal(got, []byte(want)) {
		t.Errorf("ReadFile(%q): got %q, want %q", name, got, want)
	}
}
