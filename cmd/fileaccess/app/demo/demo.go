// Package demo embeds the sample files written by the seed command.
package demo

import (
	"embed"
	"io/fs"
)

// Dir is the directory the demo files are seeded into.
const Dir = "demo_files"

//go:embed demo_files
var files embed.FS

// FS returns the embedded files rooted so that Dir is a top-level entry.
func FS() fs.FS {
	return files
}

// Names lists the seeded file paths relative to the base directory.
func Names() ([]string, error) {
	var names []string
	err := fs.WalkDir(files, Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, p)
		}
		return nil
	})
	return names, err
}
