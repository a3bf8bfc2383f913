package errors

import (
	"fmt"
	"io/fs"

	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/host"
)

// fsError is the shared implementation of the taxonomy errors.
// It is private to enforce construction through the mapper.
type fsError struct {
	taxonomy taxonomy
	kind     Kind
	code     ErrorCode
	op       string
	path     fspath.Path
	tag      host.Tag
	message  string
	extra    map[string]interface{}
	cause    error
}

// Error returns the string representation of the error.
// Format: "[CODE] op path: detail".
func (e *fsError) Error() string {
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Kind returns the taxonomy category.
func (e *fsError) Kind() Kind {
	return e.kind
}

// Op returns the operation that failed.
func (e *fsError) Op() string {
	return e.op
}

// Path returns the path the operation was applied to. It is the zero Path
// for stream operations, which are identified by handle.
func (e *fsError) Path() fspath.Path {
	return e.path
}

// Tag returns the host tag the error was mapped from.
func (e *fsError) Tag() host.Tag {
	return e.tag
}

// Code returns the error code.
func (e *fsError) Code() ErrorCode {
	return e.code
}

// Classification returns the default classification of the error code.
func (e *fsError) Classification() ErrorClassification {
	return getDefaultClassification(e.code)
}

// Message returns the error message.
func (e *fsError) Message() string {
	return e.message
}

// Context returns the operation, path, tag and kind as a fresh map.
func (e *fsError) Context() map[string]interface{} {
	ctx := make(map[string]interface{}, 5+len(e.extra))
	for k, v := range e.extra {
		ctx[k] = v
	}
	ctx["taxonomy"] = e.taxonomy.String()
	ctx["op"] = e.op
	ctx["kind"] = e.kind.String()
	ctx["tag"] = string(e.tag)
	if !e.path.IsEmpty() {
		ctx["path"] = e.path.String()
	}
	return ctx
}

// Unwrap returns the host error.
func (e *fsError) Unwrap() error {
	return e.cause
}

// Is lets errors.Is match the io/fs sentinels for the modeled kinds.
func (e *fsError) Is(target error) bool {
	switch target {
	case fs.ErrNotExist:
		return e.kind == KindNotFound
	case fs.ErrPermission:
		return e.kind == KindPermissionDenied
	case fs.ErrExist:
		return e.kind == KindAlreadyExists
	}
	return false
}

// DecodeError reports a file that was read successfully but is not valid
// UTF-8. It is distinct from ReadError so callers can tell "unreadable"
// from "readable but not text".
type DecodeError struct {
	// Path is the file that was read.
	Path fspath.Path
	// Offset is the byte offset of the first invalid sequence.
	Offset int
}

// NewDecodeError creates a DecodeError for path at offset.
func NewDecodeError(path fspath.Path, offset int) *DecodeError {
	return &DecodeError{Path: path, Offset: offset}
}

// Error returns the string representation of the error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("[%s] %s", CodeDecodeFailed, e.Message())
}

// Code returns CodeDecodeFailed.
func (e *DecodeError) Code() ErrorCode {
	return CodeDecodeFailed
}

// Classification returns ClassificationPermanent.
func (e *DecodeError) Classification() ErrorClassification {
	return ClassificationPermanent
}

// Message returns the error message.
func (e *DecodeError) Message() string {
	return fmt.Sprintf("decode %s: invalid UTF-8 at offset %d", e.Path, e.Offset)
}

// Context returns the path and offset.
func (e *DecodeError) Context() map[string]interface{} {
	return map[string]interface{}{
		"path":   e.Path.String(),
		"offset": e.Offset,
	}
}

// Unwrap returns nil; a decode failure has no underlying host error.
func (e *DecodeError) Unwrap() error {
	return nil
}
