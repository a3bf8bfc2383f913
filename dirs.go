package pathfs

import (
	platformerrors "github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fspath"
)

// Entry is a snapshot of one directory entry taken when it was listed.
type Entry struct {
	Path     fspath.Path
	Type     EntryType
	Metadata Metadata
}

// List returns the entries of directory p in host order, which is not
// necessarily sorted. Each result is a Native path joined onto p.
// Failures are *errors.DirError values.
func (f *FS) List(p fspath.Path) ([]fspath.Path, error) {
	names, err := f.list(p)
	if err != nil {
		return nil, err
	}
	out := make([]fspath.Path, len(names))
	for i, name := range names {
		out[i] = p.Child(name)
	}
	return out, nil
}

// Entries lists p and describes each entry without following links.
// An entry that cannot be described fails the whole call with a
// *errors.DirError carrying the entry's path.
func (f *FS) Entries(p fspath.Path) ([]Entry, error) {
	const op = "entries"
	names, err := f.list(p)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(names))
	for _, name := range names {
		child := p.Child(name)
		b, err := resolve(op, child)
		if err != nil {
			return nil, f.failed(platformerrors.MapDir(op, child, err))
		}
		info, err := f.host.Lstat(b)
		if err != nil {
			return nil, f.failed(platformerrors.MapDir(op, child, err))
		}
		out = append(out, Entry{Path: child, Type: typeOf(info), Metadata: metadataOf(info)})
	}
	return out, nil
}

func (f *FS) list(p fspath.Path) ([][]byte, error) {
	const op = "list"
	b, err := resolve(op, p)
	if err != nil {
		return nil, f.failed(platformerrors.MapDir(op, p, err))
	}
	names, err := f.host.List(b)
	if err != nil {
		return nil, f.failed(platformerrors.MapDir(op, p, err))
	}
	return names, nil
}

// dir runs a single directory effect on p and maps its failure.
func (f *FS) dir(op string, p fspath.Path, effect func([]byte) error) error {
	b, err := resolve(op, p)
	if err == nil {
		err = effect(b)
	}
	return f.failed(platformerrors.MapDir(op, p, err))
}

// CreateDir creates directory p. The parent must exist and p must not.
func (f *FS) CreateDir(p fspath.Path) error {
	return f.dir("mkdir", p, f.host.Create)
}

// CreateAll creates p and any missing ancestors. It fails with
// KindAlreadyExists if p exists as anything, including a directory.
//
// Creation is not transactional: ancestors created before a failure are
// left in place.
func (f *FS) CreateAll(p fspath.Path) error {
	return f.dir("mkdirall", p, f.host.CreateAll)
}

// DeleteEmpty removes the empty directory p. A non-empty directory is
// KindOther with code errors.CodeDirectoryNotEmpty and is left untouched.
func (f *FS) DeleteEmpty(p fspath.Path) error {
	return f.dir("rmdir", p, f.host.DeleteEmpty)
}

// DeleteAll removes p and everything beneath it.
//
// Deletion is not transactional: after a failure part of the tree may be
// gone, and the error does not say which part.
func (f *FS) DeleteAll(p fspath.Path) error {
	return f.dir("rmdirall", p, f.host.DeleteAll)
}
