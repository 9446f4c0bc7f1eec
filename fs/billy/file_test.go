package billy

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
)

// TestFile_Name verifies Name() returns the stored filename.
func TestFile_Name(t *testing.T) {
	bfs := memfs.New()
	bf, err := bfs.Create("test-file.txt")
	if err != nil {
		t.Fatalf("Failed to create billy file: %v", err)
	}
	defer func() { _ = bf.Close() }()

	file := &File{file: bf, fs: bfs, name: "dir/test-file.txt", flag: os.O_WRONLY}
	if got := file.Name(); got != "dir/test-file.txt" {
		t.Errorf("Name() = %q, want %q", got, "dir/test-file.txt")
	}
}

// TestFile_CloseOnce verifies the backend file is closed exactly once.
func TestFile_CloseOnce(t *testing.T) {
	mem := NewMemory()
	f, err := mem.OpenFile("once.txt", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := f.Close(); !errors.Is(err, iofs.ErrClosed) {
		t.Errorf("second Close() error = %v, want ErrClosed", err)
	}
	if _, err := f.Write([]byte("late")); !errors.Is(err, iofs.ErrClosed) {
		t.Errorf("Write() after Close() error = %v, want ErrClosed", err)
	}
}

// TestFile_ModeRestrictions verifies read/write checks use the open flags.
func TestFile_ModeRestrictions(t *testing.T) {
	mem := NewMemory()
	if err := mem.WriteFile("data.txt", []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := mem.OpenFile("data.txt", os.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile(read) error = %v", err)
	}
	defer func() { _ = r.Close() }()
	if _, err := r.Write([]byte("x")); !errors.Is(err, iofs.ErrInvalid) {
		t.Errorf("Write() on read handle error = %v, want ErrInvalid", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != "content" {
		t.Errorf("ReadAll() = %q, want %q", data, "content")
	}

	w, err := mem.OpenFile("data.txt", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(append) error = %v", err)
	}
	defer func() { _ = w.Close() }()
	if _, err := w.Read(make([]byte, 1)); !errors.Is(err, iofs.ErrInvalid) {
		t.Errorf("Read() on append handle error = %v, want ErrInvalid", err)
	}
}

// TestFile_Stat verifies Stat goes through the filesystem.
func TestFile_Stat(t *testing.T) {
	mem := NewMemory()
	if err := mem.WriteFile("stat.txt", []byte("12345"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := mem.Open("stat.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != 5 {
		t.Errorf("Size() = %d, want 5", info.Size())
	}
}
