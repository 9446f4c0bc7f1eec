package core

import (
	"io/fs"
	"path"
	"strings"
)

// CopyFromFS copies every regular file under srcRoot in src (typically an
// embed.FS) into dst, preserving the directory layout and permissions.
// Use "." to copy the entire source filesystem.
//
// Existing destination files are overwritten.
//
// Example:
//
//	//go:embed demo_files/*
//	var demoFS embed.FS
//
//	err := core.CopyFromFS(demoFS, dst, "demo_files")
func CopyFromFS(src fs.FS, dst FS, srcRoot string) error {
	return fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(src, filePath)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		dstPath := filePath
		if srcRoot != "." && srcRoot != "" {
			dstPath = strings.TrimPrefix(filePath, srcRoot)
			dstPath = strings.TrimPrefix(dstPath, "/")
		}

		if dir := path.Dir(dstPath); dir != "." && dir != "" {
			if err := dst.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}

		// Embedded files report 0444; seeded copies must stay writable.
		return dst.WriteFile(dstPath, data, info.Mode().Perm()|0o200)
	})
}
