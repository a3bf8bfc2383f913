package pathfs

import (
	"unicode/utf8"

	platformerrors "github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fspath"
)

// WriteBytes creates or truncates p and writes data to it.
// Failures are *errors.WriteError values carrying p.
func (f *FS) WriteBytes(p fspath.Path, data []byte) error {
	const op = "write"
	b, err := resolve(op, p)
	if err == nil {
		err = f.host.WriteBytes(b, data)
	}
	return f.failed(platformerrors.MapWrite(op, p, err))
}

// WriteText writes text to p as UTF-8. It cannot fail for encoding reasons.
func (f *FS) WriteText(p fspath.Path, text string) error {
	return f.WriteBytes(p, []byte(text))
}

// ReadBytes reads the whole file at p.
// Failures are *errors.ReadError values carrying p.
func (f *FS) ReadBytes(p fspath.Path) ([]byte, error) {
	const op = "read"
	b, err := resolve(op, p)
	if err != nil {
		return nil, f.failed(platformerrors.MapRead(op, p, err))
	}
	data, err := f.host.ReadAll(b)
	if err != nil {
		return nil, f.failed(platformerrors.MapRead(op, p, err))
	}
	return data, nil
}

// ReadText reads the whole file at p as UTF-8 text.
//
// A file that cannot be read yields an *errors.ReadError. A file that was
// read but is not valid UTF-8 yields an *errors.DecodeError with the offset
// of the first invalid byte.
func (f *FS) ReadText(p fspath.Path) (string, error) {
	data, err := f.ReadBytes(p)
	if err != nil {
		return "", err
	}
	if off := invalidUTF8(data); off >= 0 {
		return "", f.failed(platformerrors.NewDecodeError(p, off))
	}
	return string(data), nil
}

// Delete removes the single file at p. Directories are rejected.
// Failures are *errors.WriteError values; a read-only file is reported as
// KindPermissionDenied.
func (f *FS) Delete(p fspath.Path) error {
	const op = "delete"
	b, err := resolve(op, p)
	if err == nil {
		err = f.host.Delete(b)
	}
	return f.failed(platformerrors.MapWrite(op, p, err))
}

// invalidUTF8 returns the offset of the first invalid sequence, or -1.
func invalidUTF8(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
