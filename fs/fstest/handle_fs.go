package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/fileaccess/fs/core"
)

// TestHandles tests handle release and mode restrictions with POSIXTestConfig.
func TestHandles(t *testing.T, filesystem core.FS) {
	TestHandlesWithConfig(t, filesystem, POSIXTestConfig())
}

// TestHandlesWithConfig tests handle behavior with behavior configuration.
func TestHandlesWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	if err := filesystem.WriteFile("handle.txt", []byte("content\n"), 0o644); err != nil {
		t.Fatalf("WriteFile(handle.txt): setup failed: %v", err)
	}

	config.run(t, "Handles", "DoubleClose", func(t *testing.T) {
		f, err := filesystem.OpenFile("handle.txt", readFlag, 0)
		if err != nil {
			t.Fatalf("OpenFile(): got error %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("first Close(): got error %v", err)
		}
		if err := f.Close(); !errors.Is(err, fs.ErrClosed) {
			t.Errorf("second Close(): got %v, want fs.ErrClosed", err)
		}
	})

	config.run(t, "Handles", "ReadAfterClose", func(t *testing.T) {
		f, err := filesystem.OpenFile("handle.txt", readFlag, 0)
		if err != nil {
			t.Fatalf("OpenFile(): got error %v", err)
		}
		_ = f.Close()
		if _, err := f.Read(make([]byte, 4)); err == nil {
			t.Errorf("Read() after Close(): got nil error")
		}
	})

	config.run(t, "Handles", "WriteOnReadHandle", func(t *testing.T) {
		f, err := filesystem.OpenFile("handle.txt", readFlag, 0)
		if err != nil {
			t.Fatalf("OpenFile(): got error %v", err)
		}
		defer func() { _ = f.Close() }()
		if _, err := f.Write([]byte("nope")); err == nil {
			t.Errorf("Write() on read handle: got nil error")
		}
	})

	config.run(t, "Handles", "ReadOnWriteHandle", func(t *testing.T) {
		f, err := filesystem.OpenFile("handle-w.txt", writeFlag, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(): got error %v", err)
		}
		defer func() { _ = f.Close() }()
		if _, err := f.Read(make([]byte, 4)); err == nil {
			t.Errorf("Read() on write handle: got nil error")
		}
	})

	config.run(t, "Handles", "Name", func(t *testing.T) {
		f, err := filesystem.OpenFile("handle.txt", readFlag, 0)
		if err != nil {
			t.Fatalf("OpenFile(): got error %v", err)
		}
		defer func() { _ = f.Close() }()
		if f.Name() != "handle.txt" {
			t.Errorf("Name(): got %q, want %q", f.Name(), "handle.txt")
		}
	})
}
