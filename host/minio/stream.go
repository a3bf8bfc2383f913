package minio

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/jmgilman/go/pathfs/host"
	"github.com/jmgilman/go/pathfs/host/minio/internal/errs"
	"github.com/jmgilman/go/pathfs/host/minio/internal/keys"
)

// stream is an open object download and its line reader.
type stream struct {
	object *minio.Object
	reader *bufio.Reader
}

// OpenRead starts a streaming download of path.
func (h *Host) OpenRead(path []byte) (host.Handle, error) {
	const op = "open"
	ctx := context.Background()
	name := keys.Normalize(string(path))
	if _, err := h.requireFile(ctx, op, path, name); err != nil {
		return 0, err
	}

	obj, err := h.client.GetObject(ctx, h.bucket, h.key(name), minio.GetObjectOptions{})
	if err != nil {
		return 0, errs.Wrap(op, path, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.streams[h.next] = &stream{object: obj, reader: bufio.NewReader(obj)}
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
// slice at end of object.
func (h *Host) ReadLine(hd host.Handle) ([]byte, error) {
	const op = "readline"
	s, err := h.lookup(op, hd)
	if err != nil {
		return nil, err
	}
	line, err := s.reader.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errs.Wrap(op, nil, err)
	}
	return line, nil
}

// Close ends the download behind hd and forgets the handle.
func (h *Host) Close(hd host.Handle) error {
	const op = "close"
	h.mu.Lock()
	s, ok := h.streams[hd]
	delete(h.streams, hd)
	h.mu.Unlock()
	if !ok {
		return &host.Error{Op: op, Tag: host.TagBadHandle, Err: host.ErrBadHandle}
	}
	return errs.Wrap(op, nil, s.object.Close())
}
