// Package keys maps host paths onto MinIO/S3 object keys.
//
// A file is stored at its key. A directory is a zero-length marker object
// whose key ends in "/", or exists implicitly while any key shares its
// prefix.
package keys

import (
	"path"
	"strings"
)

// Normalize cleans a path and ensures forward slashes.
// It applies: backslashes → Clean → Trim slashes
// Returns "." for empty paths and the root.
func Normalize(p string) string {
	if p == "" {
		return "."
	}
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.Trim(path.Clean(p), "/")
	if p == "" {
		return "."
	}
	return p
}

// NormalizePrefix normalizes the bucket prefix:
// - Converts backslashes to forward slashes
// - Removes leading and trailing slashes
// - Returns empty string if prefix is "." or empty.
func NormalizePrefix(prefix string) string {
	if n := Normalize(prefix); n != "." {
		return n
	}
	return ""
}

// Join joins the prefix with a normalized name.
// The root name "." yields the prefix itself.
func Join(prefix, name string) string {
	switch {
	case name == ".":
		return prefix
	case prefix == "":
		return name
	}
	return prefix + "/" + name
}

// Dir returns the listing prefix for a directory key: the key with a
// trailing "/", or "" for the bucket root.
func Dir(key string) string {
	if key == "" {
		return ""
	}
	return key + "/"
}

// Parent returns the parent of a normalized name, "." at the top.
func Parent(name string) string {
	i := strings.LastIndexByte(name, '/')
	if i < 0 {
		return "."
	}
	return name[:i]
}

// IsRoot reports whether a normalized name is the root.
func IsRoot(name string) bool {
	return name == "."
}
