package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates the path does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates the path exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeNotADirectory indicates a directory was required but something else was found.
	CodeNotADirectory ErrorCode = "NOT_A_DIRECTORY"

	// CodeIsADirectory indicates a file was required but a directory was found.
	CodeIsADirectory ErrorCode = "IS_A_DIRECTORY"

	// CodeDirectoryNotEmpty indicates a directory still has entries.
	CodeDirectoryNotEmpty ErrorCode = "DIRECTORY_NOT_EMPTY"

	// Permission errors.

	// CodePermissionDenied indicates the caller may not access the path.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// CodeReadOnly indicates the path or filesystem is read-only.
	CodeReadOnly ErrorCode = "READ_ONLY"

	// Validation errors.

	// CodeInvalidInput indicates the path or arguments were rejected,
	// for example a path containing a NUL byte.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeBadHandle indicates an unknown or already-closed stream handle.
	CodeBadHandle ErrorCode = "BAD_HANDLE"

	// CodeDecodeFailed indicates file content is not valid UTF-8.
	CodeDecodeFailed ErrorCode = "DECODE_FAILED"

	// Infrastructure errors.

	// CodeInterrupted indicates the host call was interrupted.
	CodeInterrupted ErrorCode = "INTERRUPTED"

	// CodeTimeout indicates the host call exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeStorageFull indicates the device or bucket has no space left.
	CodeStorageFull ErrorCode = "STORAGE_FULL"

	// CodeUnsupported indicates the host does not support the operation.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates a host failure outside the documented vocabulary.
	CodeUnknown ErrorCode = "UNKNOWN"
)
