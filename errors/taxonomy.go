package errors

// Kind is the category of a filesystem failure.
//
// Each taxonomy admits a closed subset of kinds; anything outside the subset
// is reported as KindOther, which always keeps the host's original message.
type Kind int

const (
	// KindOther is the escape category for failures not otherwise modeled.
	KindOther Kind = iota
	// KindNotFound indicates the path does not exist.
	KindNotFound
	// KindPermissionDenied indicates access to the path was refused.
	KindPermissionDenied
	// KindAlreadyExists indicates the path already exists.
	KindAlreadyExists
	// KindNotADirectory indicates a directory was required.
	KindNotADirectory
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindAlreadyExists:
		return "already exists"
	case KindNotADirectory:
		return "not a directory"
	default:
		return "other"
	}
}

// taxonomy identifies one of the closed error sets.
type taxonomy int

const (
	taxMetadata taxonomy = iota
	taxRead
	taxWrite
	taxDir
)

func (t taxonomy) String() string {
	switch t {
	case taxRead:
		return "read"
	case taxWrite:
		return "write"
	case taxDir:
		return "directory"
	default:
		return "metadata"
	}
}

// admits reports whether kind belongs to the taxonomy.
func (t taxonomy) admits(kind Kind) bool {
	switch kind {
	case KindOther, KindNotFound, KindPermissionDenied:
		return true
	case KindAlreadyExists:
		return t == taxWrite || t == taxDir
	case KindNotADirectory:
		return t == taxDir
	}
	return false
}

// MetadataError reports a failed metadata query.
// Kind is one of KindNotFound, KindPermissionDenied or KindOther.
type MetadataError struct{ fsError }

// ReadError reports a failed read, open or stream operation.
// Kind is one of KindNotFound, KindPermissionDenied or KindOther.
type ReadError struct{ fsError }

// WriteError reports a failed write or file deletion.
// Kind is one of KindNotFound, KindPermissionDenied, KindAlreadyExists or
// KindOther.
type WriteError struct{ fsError }

// DirError reports a failed directory operation.
// Kind is one of KindNotFound, KindPermissionDenied, KindAlreadyExists,
// KindNotADirectory or KindOther.
type DirError struct{ fsError }

// Compile-time interface checks.
var (
	_ PlatformError = (*MetadataError)(nil)
	_ PlatformError = (*ReadError)(nil)
	_ PlatformError = (*WriteError)(nil)
	_ PlatformError = (*DirError)(nil)
	_ PlatformError = (*DecodeError)(nil)
)
