package pathfs

import (
	"io/fs"
	"time"

	platformerrors "github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/host"
)

// EntryType classifies a path entry itself, without following links.
type EntryType int

const (
	// TypeFile is a regular file or any other non-directory entry.
	TypeFile EntryType = iota
	// TypeDirectory is a directory.
	TypeDirectory
	// TypeSymLink is a symbolic link, whatever it points at.
	TypeSymLink
)

// String returns a string representation of the EntryType.
func (t EntryType) String() string {
	switch t {
	case TypeDirectory:
		return "directory"
	case TypeSymLink:
		return "symlink"
	default:
		return "file"
	}
}

// Metadata is a snapshot of an entry's attributes.
type Metadata struct {
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time
}

func typeOf(info host.Info) EntryType {
	switch {
	case info.IsSymLink:
		return TypeSymLink
	case info.IsDir:
		return TypeDirectory
	default:
		return TypeFile
	}
}

func (f *FS) lstat(op string, p fspath.Path) (host.Info, error) {
	b, err := resolve(op, p)
	if err != nil {
		return host.Info{}, f.failed(platformerrors.MapMetadata(op, p, err))
	}
	info, err := f.host.Lstat(b)
	if err != nil {
		return host.Info{}, f.failed(platformerrors.MapMetadata(op, p, err))
	}
	return info, nil
}

// QueryType reports what kind of entry p is. A symbolic link is reported as
// TypeSymLink even when it points at a directory.
// Failures are *errors.MetadataError values.
func (f *FS) QueryType(p fspath.Path) (EntryType, error) {
	info, err := f.lstat("stat", p)
	if err != nil {
		return 0, err
	}
	return typeOf(info), nil
}

// IsFile reports whether p is a regular file. It returns false without an
// error for other kinds of entry and the QueryType error when p cannot be
// queried, including when it does not exist.
func (f *FS) IsFile(p fspath.Path) (bool, error) {
	return f.is(p, TypeFile)
}

// IsDir reports whether p is a directory. See IsFile.
func (f *FS) IsDir(p fspath.Path) (bool, error) {
	return f.is(p, TypeDirectory)
}

// IsSymLink reports whether p is a symbolic link. See IsFile.
func (f *FS) IsSymLink(p fspath.Path) (bool, error) {
	return f.is(p, TypeSymLink)
}

func (f *FS) is(p fspath.Path, want EntryType) (bool, error) {
	t, err := f.QueryType(p)
	if err != nil {
		return false, err
	}
	return t == want, nil
}

// Stat returns the metadata of p without following a final symbolic link.
func (f *FS) Stat(p fspath.Path) (Metadata, error) {
	info, err := f.lstat("stat", p)
	if err != nil {
		return Metadata{}, err
	}
	return metadataOf(info), nil
}

func metadataOf(info host.Info) Metadata {
	return Metadata{Size: info.Size, Mode: info.Mode, ModTime: info.ModTime}
}
