// Package fspath provides the Path value used throughout pathfs.
//
// Operating system paths are byte sequences that are not guaranteed to be
// valid text. A Path records how it was constructed:
//
//   - Text: validated-by-convention Go text (FromText)
//   - Native: bytes handed back by the host, e.g. from a directory listing
//   - Raw: bytes supplied by the caller, bypassing validation (FromBytes)
//
// Every operation resolves a Path to bytes with Bytes, which rejects an
// embedded NUL rather than truncating at it. Display is always possible:
//
//	p := fspath.FromBytes([]byte{'a', 0xff, 'b'})
//	fmt.Println(p) // "a�b"
//
// Paths are never cleaned or canonicalized.
package fspath
