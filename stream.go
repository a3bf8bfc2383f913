package pathfs

import (
	"bytes"
	"iter"

	platformerrors "github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/host"
)

// Handle identifies an open line stream. It is owned by the caller that
// opened it and must be closed exactly once. FS keeps no handle table; use
// after close is reported by the host.
type Handle uint64

// Open opens p for line-oriented reading from the start of the file.
// Failures are *errors.ReadError values carrying p.
func (f *FS) Open(p fspath.Path) (Handle, error) {
	const op = "open"
	b, err := resolve(op, p)
	if err != nil {
		return 0, f.failed(platformerrors.MapRead(op, p, err))
	}
	h, err := f.host.OpenRead(b)
	if err != nil {
		return 0, f.failed(platformerrors.MapRead(op, p, err))
	}
	return Handle(h), nil
}

// ReadLine returns the next line without its "\n" or "\r\n" terminator.
//
// At end of stream it returns an empty line and a nil error, every time it
// is called. A blank line in the file is also returned as empty; use
// ReadLines or Lines to iterate without that ambiguity.
// Failures are *errors.ReadError values.
func (f *FS) ReadLine(h Handle) ([]byte, error) {
	line, err := f.next(h)
	if err != nil {
		return nil, err
	}
	return trimEOL(line), nil
}

// Close releases the stream. It never fails; a host error is logged at
// debug level and discarded.
func (f *FS) Close(h Handle) {
	if err := f.host.Close(host.Handle(h)); err != nil {
		f.logger.Debug("close failed", "handle", uint64(h), "error", err)
	}
}

// ReadLines calls fn for each line of p, terminators removed. The stream is
// closed on every exit path once it has been opened, including when fn
// returns an error or panics. An error from fn stops iteration and is
// returned as is.
func (f *FS) ReadLines(p fspath.Path, fn func(line []byte) error) error {
	h, err := f.Open(p)
	if err != nil {
		return err
	}
	defer f.Close(h)

	for {
		line, err := f.next(h)
		if err != nil {
			return err
		}
		if len(line) == 0 {
			return nil
		}
		if err := fn(trimEOL(line)); err != nil {
			return err
		}
	}
}

// Lines returns an iterator over the lines of p, terminators removed.
// A failure is yielded once as the final element. The stream is closed
// when the loop ends, including on break.
//
//	for line, err := range fsys.Lines(p) {
//	    if err != nil {
//	        return err
//	    }
//	    process(line)
//	}
func (f *FS) Lines(p fspath.Path) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		h, err := f.Open(p)
		if err != nil {
			yield(nil, err)
			return
		}
		defer f.Close(h)

		for {
			line, err := f.next(h)
			if err != nil {
				yield(nil, err)
				return
			}
			if len(line) == 0 || !yield(trimEOL(line), nil) {
				return
			}
		}
	}
}

// next returns the host line with its terminator still attached, so an
// empty result always means end of stream.
func (f *FS) next(h Handle) ([]byte, error) {
	line, err := f.host.ReadLine(host.Handle(h))
	if err != nil {
		return nil, f.failed(platformerrors.MapStream("readline", uint64(h), err))
	}
	return line, nil
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}
