package host

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jmgilman/go/pathfs/fspath"
)

// Tag is a host-reported failure category.
// Hosts report failures as tags drawn from the vocabulary below; callers
// must tolerate tags outside it.
type Tag string

const (
	TagNotFound          Tag = "not found"
	TagPermissionDenied  Tag = "permission denied"
	TagAlreadyExists     Tag = "already exists"
	TagNotADirectory     Tag = "not a directory"
	TagIsADirectory      Tag = "is a directory"
	TagDirectoryNotEmpty Tag = "directory not empty"
	TagReadOnly          Tag = "read-only filesystem"
	TagInvalidInput      Tag = "invalid input"
	TagBadHandle         Tag = "bad handle"
	TagInterrupted       Tag = "interrupted"
	TagTimedOut          Tag = "timed out"
	TagUnsupported       Tag = "unsupported"
	TagStorageFull       Tag = "storage full"
	TagOther             Tag = "other"
)

// Tags returns the documented tag vocabulary.
func Tags() []Tag {
	return []Tag{
		TagNotFound,
		TagPermissionDenied,
		TagAlreadyExists,
		TagNotADirectory,
		TagIsADirectory,
		TagDirectoryNotEmpty,
		TagReadOnly,
		TagInvalidInput,
		TagBadHandle,
		TagInterrupted,
		TagTimedOut,
		TagUnsupported,
		TagStorageFull,
		TagOther,
	}
}

// ErrBadHandle is returned for operations on unknown or closed handles.
var ErrBadHandle = errors.New("bad handle")

// Error is a tagged host failure.
type Error struct {
	Op   string
	Path []byte
	Tag  Tag
	Err  error
}

func (e *Error) Error() string {
	msg := string(e.Tag)
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Path == nil {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, fspath.FromNative(e.Path), msg)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a tagged error for op on path. The tag is derived from err
// with Classify unless err is already an *Error.
func NewError(op string, path []byte, err error) error {
	if err == nil {
		return nil
	}
	var he *Error
	if errors.As(err, &he) {
		return err
	}
	return &Error{Op: op, Path: path, Tag: Classify(err), Err: err}
}

// Errorf builds an *Error with an explicit tag and formatted cause.
func Errorf(op string, path []byte, tag Tag, format string, args ...any) error {
	return &Error{Op: op, Path: path, Tag: tag, Err: fmt.Errorf(format, args...)}
}

// Classify maps a Go error onto the tag vocabulary.
// It recognizes io/fs sentinels, NUL rejection and platform errno values,
// and returns TagOther for anything else.
func Classify(err error) Tag {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, fspath.ErrContainsNUL):
		return TagInvalidInput
	case errors.Is(err, ErrBadHandle), errors.Is(err, fs.ErrClosed):
		return TagBadHandle
	case errors.Is(err, fs.ErrInvalid):
		return TagInvalidInput
	}
	if tag := classifyErrno(err); tag != "" {
		return tag
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return TagNotFound
	case errors.Is(err, fs.ErrPermission):
		return TagPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return TagAlreadyExists
	case errors.Is(err, errors.ErrUnsupported):
		return TagUnsupported
	}
	return TagOther
}

// TagOf extracts the tag from an error returned by a host.
//
// An *Error yields its Tag. Known Go errors are classified. Any other error
// is treated as a bare tag string, so a host that reports errors.New("not
// found") is understood.
func TagOf(err error) Tag {
	if err == nil {
		return ""
	}
	var he *Error
	if errors.As(err, &he) {
		return he.Tag
	}
	if tag := Classify(err); tag != TagOther {
		return tag
	}
	return Tag(err.Error())
}
