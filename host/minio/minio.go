package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jmgilman/go/pathfs/host"
	"github.com/jmgilman/go/pathfs/host/minio/internal/errs"
	"github.com/jmgilman/go/pathfs/host/minio/internal/keys"
)

const defaultDeleteConcurrency = 10

// Host implements host.Host on a MinIO/S3 bucket.
//
// Directories are zero-length marker objects ending in "/". A directory also
// exists implicitly while any object shares its prefix, so parent
// directories never need to be created before writing. Symbolic links are
// not supported.
type Host struct {
	client      *minio.Client
	bucket      string
	prefix      string
	concurrency int

	mu      sync.Mutex
	streams map[host.Handle]*stream
	next    host.Handle
}

// New creates a MinIO-backed host.
//
// Example with configuration:
//
//	h, err := minio.New(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    Bucket:    "my-bucket",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	    UseSSL:    false,
//	})
//
// Example with pre-configured client:
//
//	client, _ := minio.New("localhost:9000", &minio.Options{...})
//	h, err := minio.New(minio.Config{
//	    Client: client,
//	    Bucket: "my-bucket",
//	})
func New(cfg Config) (*Host, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create MinIO client: %w", err)
		}
	}

	concurrency := cfg.MaxDeleteConcurrency
	if concurrency == 0 {
		concurrency = defaultDeleteConcurrency
	}

	return &Host{
		client:      client,
		bucket:      cfg.Bucket,
		prefix:      keys.NormalizePrefix(cfg.Prefix),
		concurrency: concurrency,
		streams:     make(map[host.Handle]*stream),
	}, nil
}

// Client returns the underlying MinIO client.
func (h *Host) Client() *minio.Client {
	return h.client
}

// Bucket returns the bucket name.
func (h *Host) Bucket() string {
	return h.bucket
}

// key returns the object key for a normalized name.
func (h *Host) key(name string) string {
	return keys.Join(h.prefix, name)
}

// statFile looks up the object stored at name. A missing object is not an
// error; ok reports whether it exists.
func (h *Host) statFile(ctx context.Context, name string) (minio.ObjectInfo, bool, error) {
	if keys.IsRoot(name) {
		return minio.ObjectInfo{}, false, nil
	}
	info, err := h.client.StatObject(ctx, h.bucket, h.key(name), minio.StatObjectOptions{})
	if err != nil {
		if errs.IsNotFound(err) {
			return minio.ObjectInfo{}, false, nil
		}
		return minio.ObjectInfo{}, false, err
	}
	return info, true, nil
}

// isDir reports whether name is a directory, either through its marker
// object or because objects exist beneath it.
func (h *Host) isDir(ctx context.Context, name string) (bool, error) {
	if keys.IsRoot(name) {
		return true, nil
	}
	dir := keys.Dir(h.key(name))
	if _, err := h.client.StatObject(ctx, h.bucket, dir, minio.StatObjectOptions{}); err == nil {
		return true, nil
	} else if !errs.IsNotFound(err) {
		return false, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	for object := range h.client.ListObjects(ctx, h.bucket, minio.ListObjectsOptions{
		Prefix:  dir,
		MaxKeys: 1,
	}) {
		if object.Err != nil {
			return false, object.Err
		}
		return true, nil
	}
	return false, nil
}

// requireFile fails unless name is an existing object. A directory at name
// reports is-a-directory.
func (h *Host) requireFile(ctx context.Context, op string, path []byte, name string) (minio.ObjectInfo, error) {
	info, ok, err := h.statFile(ctx, name)
	if err != nil {
		return info, errs.Wrap(op, path, err)
	}
	if ok {
		return info, nil
	}
	dir, err := h.isDir(ctx, name)
	if err != nil {
		return info, errs.Wrap(op, path, err)
	}
	if dir {
		return info, host.Errorf(op, path, host.TagIsADirectory, "is a directory")
	}
	return info, &host.Error{Op: op, Path: path, Tag: host.TagNotFound, Err: fs.ErrNotExist}
}

// ReadAll downloads the object at path.
func (h *Host) ReadAll(path []byte) ([]byte, error) {
	const op = "read"
	ctx := context.Background()
	name := keys.Normalize(string(path))
	if _, err := h.requireFile(ctx, op, path, name); err != nil {
		return nil, err
	}

	obj, err := h.client.GetObject(ctx, h.bucket, h.key(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, errs.Wrap(op, path, err)
	}
	defer func() { _ = obj.Close() }()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errs.Wrap(op, path, err)
	}
	return data, nil
}

// WriteBytes uploads data to path, replacing any existing object.
// Parent directories are implicit.
func (h *Host) WriteBytes(path []byte, data []byte) error {
	const op = "write"
	ctx := context.Background()
	name := keys.Normalize(string(path))
	dir, err := h.isDir(ctx, name)
	if err != nil {
		return errs.Wrap(op, path, err)
	}
	if dir {
		return host.Errorf(op, path, host.TagIsADirectory, "is a directory")
	}

	_, err = h.client.PutObject(ctx, h.bucket, h.key(name), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{})
	return errs.Wrap(op, path, err)
}

// Delete removes the object at path.
// S3 removal is idempotent, so existence is checked first.
func (h *Host) Delete(path []byte) error {
	const op = "delete"
	ctx := context.Background()
	name := keys.Normalize(string(path))
	if _, err := h.requireFile(ctx, op, path, name); err != nil {
		return err
	}
	return errs.Wrap(op, path, h.client.RemoveObject(ctx, h.bucket, h.key(name), minio.RemoveObjectOptions{}))
}

// Lstat describes path. Objects are regular files; markers and prefixes are
// directories.
func (h *Host) Lstat(path []byte) (host.Info, error) {
	const op = "lstat"
	ctx := context.Background()
	name := keys.Normalize(string(path))
	info, ok, err := h.statFile(ctx, name)
	if err != nil {
		return host.Info{}, errs.Wrap(op, path, err)
	}
	if ok {
		return host.Info{
			Size:    info.Size,
			Mode:    0o644,
			ModTime: info.LastModified,
		}, nil
	}

	dir, err := h.isDir(ctx, name)
	if err != nil {
		return host.Info{}, errs.Wrap(op, path, err)
	}
	if !dir {
		return host.Info{}, &host.Error{Op: op, Path: path, Tag: host.TagNotFound, Err: fs.ErrNotExist}
	}
	return host.Info{IsDir: true, Mode: fs.ModeDir | 0o755}, nil
}

var _ host.Host = (*Host)(nil)
