package billy

import (
	"bufio"
	"errors"
	"io"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/go/pathfs/host"
)

// stream is an open file and its line reader.
type stream struct {
	file   billy.File
	reader *bufio.Reader
}

// OpenRead opens a file for streaming reads.
func (h *Host) OpenRead(path []byte) (host.Handle, error) {
	const op = "open"
	name := normalize(path)
	if err := h.statFile(op, path, name); err != nil {
		return 0, err
	}
	f, err := h.bfs.Open(name)
	if err != nil {
		return 0, host.NewError(op, path, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.streams[h.next] = &stream{file: f, reader: bufio.NewReader(f)}
	return h.next, nil
}

func (h *Host) lookup(op string, hd host.Handle) (*stream, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.streams[hd]
	if !ok {
		return nil, &host.Error{Op: op, Tag: host.TagBadHandle, Err: host.ErrBadHandle}
	}
	return s, nil
}

// ReadLine returns the next line including its terminator, or an empty
// slice at end of file.
func (h *Host) ReadLine(hd host.Handle) ([]byte, error) {
	const op = "readline"
	s, err := h.lookup(op, hd)
	if err != nil {
		return nil, err
	}
	line, err := s.reader.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, host.NewError(op, nil, err)
	}
	return line, nil
}

// Close closes the file behind hd and forgets the handle, even if closing
// the file fails.
func (h *Host) Close(hd host.Handle) error {
	const op = "close"
	h.mu.Lock()
	s, ok := h.streams[hd]
	delete(h.streams, hd)
	h.mu.Unlock()
	if !ok {
		return &host.Error{Op: op, Tag: host.TagBadHandle, Err: host.ErrBadHandle}
	}
	return host.NewError(op, nil, s.file.Close())
}
