package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"

	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/host"
)

// mapping is the classification of a single host tag.
type mapping struct {
	kind Kind
	code ErrorCode
}

// tagTable is the single source of truth for translating host tags.
// Every tag in host.Tags() must have a row; supporting a new host category
// means adding exactly one row here.
var tagTable = map[host.Tag]mapping{
	host.TagNotFound:          {KindNotFound, CodeNotFound},
	host.TagPermissionDenied:  {KindPermissionDenied, CodePermissionDenied},
	host.TagReadOnly:          {KindPermissionDenied, CodeReadOnly},
	host.TagAlreadyExists:     {KindAlreadyExists, CodeAlreadyExists},
	host.TagNotADirectory:     {KindNotADirectory, CodeNotADirectory},
	host.TagIsADirectory:      {KindOther, CodeIsADirectory},
	host.TagDirectoryNotEmpty: {KindOther, CodeDirectoryNotEmpty},
	host.TagInvalidInput:      {KindOther, CodeInvalidInput},
	host.TagBadHandle:         {KindOther, CodeBadHandle},
	host.TagInterrupted:       {KindOther, CodeInterrupted},
	host.TagTimedOut:          {KindOther, CodeTimeout},
	host.TagUnsupported:       {KindOther, CodeUnsupported},
	host.TagStorageFull:       {KindOther, CodeStorageFull},
	host.TagOther:             {KindOther, CodeUnknown},
}

// lookup returns the mapping for tag, falling back to KindOther/CodeUnknown
// for tags outside the vocabulary.
func lookup(tag host.Tag) mapping {
	if m, ok := tagTable[tag]; ok {
		return m
	}
	return mapping{kind: KindOther, code: CodeUnknown}
}

// classify builds the shared error value for a taxonomy.
func classify(tax taxonomy, op string, path fspath.Path, err error) fsError {
	tag := host.TagOf(err)
	m := lookup(tag)
	kind := m.kind
	if !tax.admits(kind) {
		kind = KindOther
	}
	return fsError{
		taxonomy: tax,
		kind:     kind,
		code:     m.code,
		op:       op,
		path:     path,
		tag:      tag,
		message:  describe(op, path, err),
		cause:    err,
	}
}

// describe renders "op path: detail".
func describe(op string, path fspath.Path, err error) string {
	if path.IsEmpty() {
		return fmt.Sprintf("%s: %s", op, detailOf(err))
	}
	return fmt.Sprintf("%s %s: %s", op, path, detailOf(err))
}

// detailOf returns the innermost host message so the tag text and the host's
// own op/path prefix are not repeated.
func detailOf(err error) string {
	var he *host.Error
	if stderrors.As(err, &he) {
		if he.Err != nil {
			return he.Err.Error()
		}
		return string(he.Tag)
	}
	return err.Error()
}

// MapMetadata translates a host failure into a *MetadataError.
// Returns nil if err is nil.
func MapMetadata(op string, path fspath.Path, err error) error {
	if err == nil {
		return nil
	}
	return &MetadataError{classify(taxMetadata, op, path, err)}
}

// MapRead translates a host failure into a *ReadError.
// Returns nil if err is nil.
func MapRead(op string, path fspath.Path, err error) error {
	if err == nil {
		return nil
	}
	return &ReadError{classify(taxRead, op, path, err)}
}

// MapStream translates a failure on an open stream into a *ReadError.
// The handle is recorded in the error context instead of a path.
// Returns nil if err is nil.
func MapStream(op string, handle uint64, err error) error {
	if err == nil {
		return nil
	}
	e := classify(taxRead, op, fspath.Path{}, err)
	e.message = fmt.Sprintf("%s #%s: %s", op, strconv.FormatUint(handle, 10), detailOf(err))
	e.extra = map[string]interface{}{"handle": handle}
	return &ReadError{e}
}

// MapWrite translates a host failure into a *WriteError.
// Returns nil if err is nil.
func MapWrite(op string, path fspath.Path, err error) error {
	if err == nil {
		return nil
	}
	return &WriteError{classify(taxWrite, op, path, err)}
}

// MapDir translates a host failure into a *DirError.
// Returns nil if err is nil.
func MapDir(op string, path fspath.Path, err error) error {
	if err == nil {
		return nil
	}
	return &DirError{classify(taxDir, op, path, err)}
}
