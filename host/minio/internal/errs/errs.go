// Package errs translates MinIO failures into host errors.
package errs

import (
	"errors"
	"net"

	"github.com/minio/minio-go/v7"

	"github.com/jmgilman/go/pathfs/host"
)

// Translate returns the host tag for a MinIO error.
func Translate(err error) host.Tag {
	if err == nil {
		return ""
	}

	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return host.TagNotFound
	case "AccessDenied":
		return host.TagPermissionDenied
	case "RequestTimeout", "SlowDown":
		return host.TagTimedOut
	case "XMinioStorageFull", "QuotaExceeded":
		return host.TagStorageFull
	case "InvalidObjectName", "KeyTooLongError":
		return host.TagInvalidInput
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return host.TagTimedOut
	}
	return host.Classify(err)
}

// Wrap builds a host error for op on path. Returns nil if err is nil.
func Wrap(op string, path []byte, err error) error {
	if err == nil {
		return nil
	}
	var he *host.Error
	if errors.As(err, &he) {
		return err
	}
	return &host.Error{Op: op, Path: path, Tag: Translate(err), Err: err}
}

// IsNotFound reports whether err means the key or bucket does not exist.
func IsNotFound(err error) bool {
	return Translate(err) == host.TagNotFound
}
