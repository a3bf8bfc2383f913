package fspath

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind identifies how a Path was constructed.
type Kind uint8

const (
	// Text indicates a path supplied as Go text. It is assumed, but not
	// guaranteed, to be UTF-8. Text is the zero value.
	Text Kind = iota
	// Native indicates path bytes as returned by the host (e.g. a listing).
	Native
	// Raw indicates path bytes supplied directly by the caller.
	Raw
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Native:
		return "native"
	case Raw:
		return "raw"
	default:
		return "unknown"
	}
}

// ErrContainsNUL is returned when a path with an embedded NUL byte is
// resolved for a host call.
var ErrContainsNUL = errors.New("path contains NUL byte")

// NULError reports the position of the first NUL byte in a path.
type NULError struct {
	Offset int
}

func (e *NULError) Error() string {
	return fmt.Sprintf("%s at offset %d", ErrContainsNUL, e.Offset)
}

// Unwrap returns ErrContainsNUL.
func (e *NULError) Unwrap() error {
	return ErrContainsNUL
}

// Path is an immutable filesystem path.
//
// The bytes (or text) are stored in a Go string, which makes a Path safe to
// copy and share. Two paths of different kinds that resolve to the same bytes
// are Equal; use Equal rather than == to compare paths.
type Path struct {
	kind Kind
	s    string
}

// FromText wraps text without validating it.
func FromText(s string) Path {
	return Path{kind: Text, s: s}
}

// FromBytes wraps caller-supplied bytes without validation. The slice is
// copied.
func FromBytes(b []byte) Path {
	return Path{kind: Raw, s: string(b)}
}

// FromNative wraps bytes that originate from the host. The slice is copied.
func FromNative(b []byte) Path {
	return Path{kind: Native, s: string(b)}
}

// Kind returns how the path was constructed.
func (p Path) Kind() Kind {
	return p.kind
}

// Bytes resolves the path to the bytes handed to the host.
// It fails with a *NULError if the path contains a NUL byte.
func (p Path) Bytes() ([]byte, error) {
	if i := strings.IndexByte(p.s, 0); i >= 0 {
		return nil, &NULError{Offset: i}
	}
	return []byte(p.s), nil
}

// String returns the display form of the path. Invalid UTF-8 sequences are
// replaced with U+FFFD; String never fails.
func (p Path) String() string {
	if utf8.ValidString(p.s) {
		return p.s
	}
	return strings.ToValidUTF8(p.s, string(utf8.RuneError))
}

// MarshalText implements encoding.TextMarshaler using the display form.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// IsValidText reports whether the path bytes are valid UTF-8.
func (p Path) IsValidText() bool {
	return utf8.ValidString(p.s)
}

// IsEmpty reports whether the path has no bytes.
func (p Path) IsEmpty() bool {
	return p.s == ""
}

// Equal reports whether p and o resolve to the same bytes, regardless of kind.
func (p Path) Equal(o Path) bool {
	return p.s == o.s
}

// Compare orders paths by their resolved bytes.
func (p Path) Compare(o Path) int {
	return strings.Compare(p.s, o.s)
}

// Base returns the final component of the path, keeping the kind.
// A trailing separator is not stripped: the base of "a/b/" is empty.
func (p Path) Base() Path {
	return Path{kind: p.kind, s: p.s[lastSeparator(p.s)+1:]}
}

// WithExtension replaces the extension of the final component with ext.
//
// Everything from the last '.' in the final component onward is replaced by
// "." + ext. If the final component has no '.', "." + ext is appended.
// The kind of p is preserved.
func (p Path) WithExtension(ext string) Path {
	start := lastSeparator(p.s) + 1
	stem := p.s
	if dot := strings.LastIndexByte(p.s[start:], '.'); dot >= 0 {
		stem = p.s[:start+dot]
	}
	return Path{kind: p.kind, s: stem + "." + ext}
}

// Child joins name onto p with a '/' separator. The result is Native since
// names passed here come from host listings. No cleaning is performed.
func (p Path) Child(name []byte) Path {
	if p.s == "" {
		return FromNative(name)
	}
	if isSeparator(p.s[len(p.s)-1]) {
		return Path{kind: Native, s: p.s + string(name)}
	}
	var b bytes.Buffer
	b.Grow(len(p.s) + 1 + len(name))
	b.WriteString(p.s)
	b.WriteByte('/')
	b.Write(name)
	return Path{kind: Native, s: b.String()}
}

// lastSeparator returns the index of the last path separator in s, or -1.
func lastSeparator(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if isSeparator(s[i]) {
			return i
		}
	}
	return -1
}
