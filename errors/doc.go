// Package errors provides the pathfs error taxonomy and the mapper that
// translates host failures into it.
//
// Every fallible pathfs operation reports one of the taxonomy errors:
//
//   - *MetadataError: KindNotFound, KindPermissionDenied, KindOther
//   - *ReadError: KindNotFound, KindPermissionDenied, KindOther
//   - *WriteError: KindNotFound, KindPermissionDenied, KindAlreadyExists, KindOther
//   - *DirError: KindNotFound, KindPermissionDenied, KindAlreadyExists,
//     KindNotADirectory, KindOther
//   - *DecodeError: file read successfully but content is not valid UTF-8
//
// KindOther is the escape category. It keeps the host's message and tag, and
// its ErrorCode still distinguishes the host category (for example
// CodeDirectoryNotEmpty or CodeIsADirectory).
//
// # Mapping
//
// Hosts report failures as tags (see host.Tags). MapRead, MapWrite, MapDir
// and MapMetadata look the tag up in a single table and clamp the result to
// the taxonomy's closed set. Unknown tags become KindOther with the original
// message; the mapper never fails.
//
// # Platform errors
//
// All taxonomy errors implement PlatformError: a code, a retry
// classification, a message, context metadata and the wrapped host error.
// They work with the standard library:
//
//	var readErr *errors.ReadError
//	if errors.As(err, &readErr) && readErr.Kind() == errors.KindNotFound {
//	    // Handle missing file
//	}
//
//	if errors.Is(err, fs.ErrNotExist) {
//	    // Same check through the io/fs sentinel
//	}
//
// ToJSON and MarshalJSON render a flat body without the host error chain.
package errors
