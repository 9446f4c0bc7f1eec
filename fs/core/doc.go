// Package core defines the filesystem contract used by scoped file access.
//
// Providers (fs/billy for local and in-memory storage, fs/minio for object
// stores) implement FS. The access package never talks to a provider's
// native API; it opens a File through OpenFile with one of three flag sets
// (read, write, append) and closes it exactly once.
//
// # Error contract
//
// Providers report failures as *fs.PathError wrapping the stdlib sentinels
// re-exported here (ErrNotExist, ErrPermission, ErrClosed). The errors
// package classifies on those sentinels, so a provider that returns its own
// error types for a missing file breaks NotFound reporting.
//
// # Stdlib compatibility
//
// FS embeds fs.FS, so providers work with fs.WalkDir, fs.ReadFile and friends.
package core
