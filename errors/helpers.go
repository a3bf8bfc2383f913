package errors

import (
	stderrors "errors"

	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/host"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Taxonomy errors match the io/fs sentinels for their kind:
//
//	if errors.Is(err, fs.ErrNotExist) {
//	    // Handle missing path
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var dirErr *errors.DirError
//	if errors.As(err, &dirErr) && dirErr.Kind() == errors.KindAlreadyExists {
//	    // Directory is already there
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// kinded is implemented by every taxonomy error.
type kinded interface {
	Kind() Kind
	Path() fspath.Path
	Tag() host.Tag
}

// KindOf returns the taxonomy Kind of err.
// Returns KindOther if err is nil or not a taxonomy error.
func KindOf(err error) Kind {
	var k kinded
	if stderrors.As(err, &k) {
		return k.Kind()
	}
	return KindOther
}

// TagOf returns the host tag a taxonomy error was mapped from.
// Returns the empty tag if err is nil or not a taxonomy error.
func TagOf(err error) host.Tag {
	var k kinded
	if stderrors.As(err, &k) {
		return k.Tag()
	}
	return ""
}

// PathOf returns the path attached to err, if any.
func PathOf(err error) (fspath.Path, bool) {
	var k kinded
	if stderrors.As(err, &k) {
		return k.Path(), !k.Path().IsEmpty()
	}
	var de *DecodeError
	if stderrors.As(err, &de) {
		return de.Path, true
	}
	return fspath.Path{}, false
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not a PlatformError.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeDirectoryNotEmpty {
//	    // Fall back to DeleteAll
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}

	return CodeUnknown
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not a PlatformError.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not a PlatformError (safe default).
//
// pathfs never retries on its own; this is for callers that do.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
