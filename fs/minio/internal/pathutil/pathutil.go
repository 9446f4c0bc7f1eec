// Package pathutil maps filesystem names onto MinIO/S3 object keys.
package pathutil

import (
	"path"
	"strings"
)

// Normalize cleans a name into key form: forward slashes, no "." or ".."
// segments, no leading or trailing slash. Returns "." for empty names.
//
// ".." segments are resolved against a virtual root, so a name can never
// address a key outside the prefix it is joined to.
func Normalize(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Clean("/" + name)
	name = strings.Trim(name, "/")
	if name == "" {
		return "."
	}
	return name
}

// NormalizePrefix normalizes a key prefix. Returns "" for empty or "." prefixes.
func NormalizePrefix(prefix string) string {
	if n := Normalize(prefix); n != "." {
		return n
	}
	return ""
}

// JoinPath joins a prefix with a name to create a full S3 key.
func JoinPath(prefix, name string) string {
	name = Normalize(name)
	if name == "." {
		return prefix
	}
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
