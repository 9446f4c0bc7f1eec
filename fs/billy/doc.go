// Package billy provides go-billy-backed implementations of core.FS.
//
// LocalFS wraps osfs bound to a base directory, so every name handed to it
// resolves inside that directory. MemoryFS wraps memfs and is what tests and
// the "memory" backend use.
//
// Usage:
//
//	fsys := billy.NewLocal("/srv/data")
//	data, err := fsys.ReadFile("demo_files/data.txt")
//
//	mem := billy.NewMemory()
//	err := mem.WriteFile("temp.txt", []byte("data"), 0644)
//
// Both providers report failures as *fs.PathError wrapping the stdlib
// sentinels, matching the core error contract.
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines. File
// handles are not safe for concurrent use.
package billy
