package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/fileaccess/fs/core"
)

// TestRead tests Open, Stat, ReadFile and Exists with POSIXTestConfig.
func TestRead(t *testing.T, filesystem core.FS) {
	TestReadWithConfig(t, filesystem, POSIXTestConfig())
}

// TestReadWithConfig tests read operations with behavior configuration.
func TestReadWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	testContent := []byte("test file content\n")

	if err := filesystem.MkdirAll("testdir", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("testdir/testfile.txt", testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(testdir/testfile.txt): setup failed: %v", err)
	}

	config.run(t, "Read", "Open", func(t *testing.T) {
		f, err := filesystem.Open("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Open(%q): got error %v, want nil", "testdir/testfile.txt", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				t.Errorf("Close(): got error %v", closeErr)
			}
		}()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll(): got error %v", err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("ReadAll(): got %q, want %q", data, testContent)
		}
	})

	config.run(t, "Read", "OpenNotExist", func(t *testing.T) {
		_, err := filesystem.Open("nonexistent.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", "nonexistent.txt", err)
		}
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			t.Errorf("Open(%q): got %T, want *fs.PathError", "nonexistent.txt", err)
		}
	})

	config.run(t, "Read", "OpenFileReadNotExist", func(t *testing.T) {
		_, err := filesystem.OpenFile("nonexistent.txt", readFlag, 0)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("OpenFile(%q, O_RDONLY): got error %v, want fs.ErrNotExist", "nonexistent.txt", err)
		}
	})

	config.run(t, "Read", "Stat", func(t *testing.T) {
		info, err := filesystem.Stat("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Stat(): got error %v", err)
		}
		if info.IsDir() {
			t.Errorf("Stat(): IsDir() = true, want false")
		}
		if info.Size() != int64(len(testContent)) {
			t.Errorf("Stat(): Size() = %d, want %d", info.Size(), len(testContent))
		}
	})

	config.run(t, "Read", "ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("ReadFile(): got error %v", err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("ReadFile(): got %q, want %q", data, testContent)
		}
	})

	config.run(t, "Read", "Exists", func(t *testing.T) {
		ok, err := filesystem.Exists("testdir/testfile.txt")
		if err != nil || !ok {
			t.Errorf("Exists(file): got (%v, %v), want (true, nil)", ok, err)
		}
		ok, err = filesystem.Exists("nonexistent.txt")
		if err != nil || ok {
			t.Errorf("Exists(missing): got (%v, %v), want (false, nil)", ok, err)
		}
	})

	config.run(t, "Read", "Remove", func(t *testing.T) {
		if err := filesystem.WriteFile("remove-me.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(): setup failed: %v", err)
		}
		if err := filesystem.Remove("remove-me.txt"); err != nil {
			t.Fatalf("Remove(): got error %v", err)
		}
		if ok, _ := filesystem.Exists("remove-me.txt"); ok {
			t.Errorf("Exists() after Remove(): got true, want false")
		}
	})
}
