package minio

import (
	"bytes"
	"context"
	"io/fs"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/pathfs/host"
	"github.com/jmgilman/go/pathfs/host/minio/internal/errs"
	"github.com/jmgilman/go/pathfs/host/minio/internal/keys"
)

const markerContentType = "application/x-directory"

// requireDir fails unless name is a directory. An object at name reports
// not-a-directory.
func (h *Host) requireDir(ctx context.Context, op string, path []byte, name string) error {
	_, ok, err := h.statFile(ctx, name)
	if err != nil {
		return errs.Wrap(op, path, err)
	}
	if ok {
		return host.Errorf(op, path, host.TagNotADirectory, "not a directory")
	}
	dir, err := h.isDir(ctx, name)
	if err != nil {
		return errs.Wrap(op, path, err)
	}
	if !dir {
		return &host.Error{Op: op, Path: path, Tag: host.TagNotFound, Err: fs.ErrNotExist}
	}
	return nil
}

// exists reports whether name is a file or a directory.
func (h *Host) exists(ctx context.Context, name string) (bool, error) {
	_, ok, err := h.statFile(ctx, name)
	if err != nil || ok {
		return ok, err
	}
	return h.isDir(ctx, name)
}

// putMarker writes the directory marker for name.
func (h *Host) putMarker(ctx context.Context, name string) error {
	_, err := h.client.PutObject(ctx, h.bucket, keys.Dir(h.key(name)), bytes.NewReader(nil), 0,
		minio.PutObjectOptions{ContentType: markerContentType})
	return err
}

// List returns the immediate children of path, sorted by name.
func (h *Host) List(path []byte) ([][]byte, error) {
	const op = "list"
	ctx := context.Background()
	name := keys.Normalize(string(path))
	if err := h.requireDir(ctx, op, path, name); err != nil {
		return nil, err
	}

	dir := keys.Dir(h.key(name))
	seen := make(map[string]bool)
	var names []string
	for object := range h.client.ListObjects(ctx, h.bucket, minio.ListObjectsOptions{
		Prefix:    dir,
		Recursive: false,
	}) {
		if object.Err != nil {
			return nil, errs.Wrap(op, path, object.Err)
		}
		if object.Key == dir {
			continue
		}
		child := strings.TrimSuffix(strings.TrimPrefix(object.Key, dir), "/")
		if child == "" || seen[child] {
			continue
		}
		seen[child] = true
		names = append(names, child)
	}

	sort.Strings(names)
	out := make([][]byte, len(names))
	for i, n := range names {
		out[i] = []byte(n)
	}
	return out, nil
}

// Create writes the marker for a single directory. Parent directories are
// implicit, but an object standing in for the parent is rejected.
func (h *Host) Create(path []byte) error {
	const op = "mkdir"
	ctx := context.Background()
	name := keys.Normalize(string(path))
	found, err := h.exists(ctx, name)
	if err != nil {
		return errs.Wrap(op, path, err)
	}
	if found {
		return &host.Error{Op: op, Path: path, Tag: host.TagAlreadyExists, Err: fs.ErrExist}
	}
	if _, ok, err := h.statFile(ctx, keys.Parent(name)); err != nil {
		return errs.Wrap(op, path, err)
	} else if ok {
		return host.Errorf(op, path, host.TagNotADirectory, "parent is not a directory")
	}
	return errs.Wrap(op, path, h.putMarker(ctx, name))
}

// CreateAll writes the marker for path after checking that no ancestor is
// an object. Ancestors exist implicitly beneath the new marker.
func (h *Host) CreateAll(path []byte) error {
	const op = "mkdirall"
	ctx := context.Background()
	name := keys.Normalize(string(path))
	found, err := h.exists(ctx, name)
	if err != nil {
		return errs.Wrap(op, path, err)
	}
	if found {
		return &host.Error{Op: op, Path: path, Tag: host.TagAlreadyExists, Err: fs.ErrExist}
	}
	for parent := keys.Parent(name); !keys.IsRoot(parent); parent = keys.Parent(parent) {
		_, ok, err := h.statFile(ctx, parent)
		if err != nil {
			return errs.Wrap(op, path, err)
		}
		if ok {
			return host.Errorf(op, path, host.TagNotADirectory, "%s is not a directory", parent)
		}
	}
	return errs.Wrap(op, path, h.putMarker(ctx, name))
}

// DeleteEmpty removes the marker of an empty directory.
func (h *Host) DeleteEmpty(path []byte) error {
	const op = "rmdir"
	ctx := context.Background()
	name := keys.Normalize(string(path))
	if err := h.requireDir(ctx, op, path, name); err != nil {
		return err
	}

	dir := keys.Dir(h.key(name))
	objects, err := h.listAll(ctx, dir)
	if err != nil {
		return errs.Wrap(op, path, err)
	}
	for _, key := range objects {
		if key != dir {
			return host.Errorf(op, path, host.TagDirectoryNotEmpty, "directory not empty")
		}
	}
	if keys.IsRoot(name) {
		return nil
	}
	return errs.Wrap(op, path, h.client.RemoveObject(ctx, h.bucket, dir, minio.RemoveObjectOptions{}))
}

// DeleteAll removes every object beneath path, including its marker.
// Removals run concurrently, bounded by Config.MaxDeleteConcurrency. Objects
// removed before a failure stay removed.
func (h *Host) DeleteAll(path []byte) error {
	const op = "rmdirall"
	ctx := context.Background()
	name := keys.Normalize(string(path))
	if err := h.requireDir(ctx, op, path, name); err != nil {
		return err
	}

	objects, err := h.listAll(ctx, keys.Dir(h.key(name)))
	if err != nil {
		return errs.Wrap(op, path, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)
	for _, key := range objects {
		g.Go(func() error {
			return h.client.RemoveObject(ctx, h.bucket, key, minio.RemoveObjectOptions{})
		})
	}
	return errs.Wrap(op, path, g.Wait())
}

// listAll returns every key under prefix, recursively.
func (h *Host) listAll(ctx context.Context, prefix string) ([]string, error) {
	var out []string
	for object := range h.client.ListObjects(ctx, h.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, object.Err
		}
		out = append(out, object.Key)
	}
	return out, nil
}
