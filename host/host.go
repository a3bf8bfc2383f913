package host

import (
	"io/fs"
	"time"
)

// Handle identifies an open read stream owned by a host.
type Handle uint64

// Info describes a path entry without following symbolic links.
type Info struct {
	IsDir     bool
	IsSymLink bool
	Size      int64
	Mode      fs.FileMode
	ModTime   time.Time
}

// Files defines whole-file and streaming operations.
//
// All paths are raw bytes that have already been checked for NUL.
// Failures should be *Error values so the tag survives; any other error is
// classified by its text.
type Files interface {
	// OpenRead opens path for streaming reads positioned at the start.
	OpenRead(path []byte) (Handle, error)

	// ReadLine returns the next line including its '\n' terminator, or the
	// remaining bytes of an unterminated final line. It returns an empty
	// slice at end of stream, every time it is called there.
	ReadLine(h Handle) ([]byte, error)

	// Close releases the stream. Closing an unknown handle is an error.
	Close(h Handle) error

	// ReadAll reads the entire file.
	ReadAll(path []byte) ([]byte, error)

	// WriteBytes creates or truncates path and writes data.
	// The parent directory must exist.
	WriteBytes(path []byte, data []byte) error

	// Delete removes a single file. Directories are rejected.
	Delete(path []byte) error
}

// Dirs defines directory operations.
type Dirs interface {
	// List returns the names of the entries in path, in host order.
	List(path []byte) ([][]byte, error)

	// Create creates a single directory. The parent must exist.
	Create(path []byte) error

	// CreateAll creates path and any missing ancestors. It fails if path
	// already exists.
	CreateAll(path []byte) error

	// DeleteEmpty removes an empty directory.
	DeleteEmpty(path []byte) error

	// DeleteAll removes a directory and everything beneath it.
	DeleteAll(path []byte) error
}

// Stater defines metadata queries.
type Stater interface {
	// Lstat describes path without following a final symbolic link.
	Lstat(path []byte) (Info, error)
}

// Host is the complete set of native operations pathfs delegates to.
type Host interface {
	Files
	Dirs
	Stater
}

// Linker is an optional capability for hosts that support symbolic links.
//
// Use a type assertion to check for it:
//
//	if l, ok := h.(host.Linker); ok {
//	    err := l.Symlink([]byte("target"), []byte("link"))
//	}
type Linker interface {
	// Symlink creates link pointing at target. target is stored as-is.
	Symlink(target, link []byte) error
}
