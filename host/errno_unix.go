//go:build unix

package host

import (
	"errors"
	"syscall"
)

func classifyErrno(err error) Tag {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return ""
	}
	switch errno {
	case syscall.ENOENT:
		return TagNotFound
	case syscall.EACCES, syscall.EPERM:
		return TagPermissionDenied
	case syscall.EEXIST:
		return TagAlreadyExists
	case syscall.ENOTDIR:
		return TagNotADirectory
	case syscall.EISDIR:
		return TagIsADirectory
	case syscall.ENOTEMPTY:
		return TagDirectoryNotEmpty
	case syscall.EROFS:
		return TagReadOnly
	case syscall.EINVAL, syscall.ENAMETOOLONG:
		return TagInvalidInput
	case syscall.EBADF:
		return TagBadHandle
	case syscall.EINTR:
		return TagInterrupted
	case syscall.ETIMEDOUT:
		return TagTimedOut
	case syscall.ENOSPC:
		return TagStorageFull
	case syscall.ENOTSUP:
		return TagUnsupported
	}
	return ""
}
