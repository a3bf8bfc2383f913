package billy

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/pathfs/host"
)

// Host adapts a billy.Filesystem to host.Host and host.Linker.
type Host struct {
	bfs billy.Filesystem

	mu      sync.Mutex
	streams map[host.Handle]*stream
	next    host.Handle
}

// Option configures host creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot confines a local host to dir. Paths are resolved relative to it.
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

// NewLocal creates a go-billy-backed local host.
// The host is rooted at the filesystem root ("/") unless WithRoot is given.
func NewLocal(opts ...Option) *Host {
	cfg := config{root: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(osfs.New(cfg.root))
}

// NewMemory creates a go-billy-backed in-memory host.
// The filesystem is initially empty.
func NewMemory() *Host {
	return New(memfs.New())
}

// New wraps an existing billy.Filesystem.
func New(bfs billy.Filesystem) *Host {
	return &Host{
		bfs:     bfs,
		streams: make(map[host.Handle]*stream),
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (h *Host) Unwrap() billy.Filesystem {
	return h.bfs
}

// normalize converts paths to use forward slashes consistently.
func normalize(path []byte) string {
	return filepath.ToSlash(filepath.Clean(string(path)))
}

func isRoot(name string) bool {
	return name == "." || name == "/"
}

func parentOf(name string) string {
	return filepath.ToSlash(filepath.Dir(name))
}

func fail(op string, path []byte, tag host.Tag) error {
	return &host.Error{Op: op, Path: path, Tag: tag}
}

// requireParent checks that the parent of name is an existing directory.
func (h *Host) requireParent(op string, path []byte, name string) error {
	parent := parentOf(name)
	if isRoot(parent) {
		return nil
	}
	info, err := h.bfs.Stat(parent)
	if err != nil {
		return host.NewError(op, path, err)
	}
	if !info.IsDir() {
		return fail(op, path, host.TagNotADirectory)
	}
	return nil
}

// statFile resolves name and rejects directories.
func (h *Host) statFile(op string, path []byte, name string) error {
	info, err := h.bfs.Stat(name)
	if err != nil {
		return host.NewError(op, path, err)
	}
	if info.IsDir() {
		return fail(op, path, host.TagIsADirectory)
	}
	return nil
}

// ReadAll reads the entire file.
func (h *Host) ReadAll(path []byte) ([]byte, error) {
	const op = "read"
	name := normalize(path)
	if err := h.statFile(op, path, name); err != nil {
		return nil, err
	}
	f, err := h.bfs.Open(name)
	if err != nil {
		return nil, host.NewError(op, path, err)
	}
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, host.NewError(op, path, err)
	}
	return data, nil
}

// WriteBytes creates or truncates the file and writes data to it.
// Unlike billy's OpenFile, it does not create missing parents.
func (h *Host) WriteBytes(path []byte, data []byte) error {
	const op = "write"
	name := normalize(path)
	if err := h.requireParent(op, path, name); err != nil {
		return err
	}
	if info, err := h.bfs.Stat(name); err == nil && info.IsDir() {
		return fail(op, path, host.TagIsADirectory)
	}
	f, err := h.bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return host.NewError(op, path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return host.NewError(op, path, err)
	}
	return host.NewError(op, path, f.Close())
}

// Delete removes a file or symbolic link.
func (h *Host) Delete(path []byte) error {
	const op = "delete"
	name := normalize(path)
	info, err := h.bfs.Lstat(name)
	if err != nil {
		return host.NewError(op, path, err)
	}
	if info.IsDir() {
		return fail(op, path, host.TagIsADirectory)
	}
	return host.NewError(op, path, h.bfs.Remove(name))
}

// Lstat describes a path without following a final symbolic link.
func (h *Host) Lstat(path []byte) (host.Info, error) {
	info, err := h.bfs.Lstat(normalize(path))
	if err != nil {
		return host.Info{}, host.NewError("lstat", path, err)
	}
	return infoOf(info), nil
}

func infoOf(info fs.FileInfo) host.Info {
	link := info.Mode()&fs.ModeSymlink != 0
	return host.Info{
		IsDir:     info.IsDir() && !link,
		IsSymLink: link,
		Size:      info.Size(),
		Mode:      info.Mode(),
		ModTime:   info.ModTime(),
	}
}

// Symlink creates link pointing at target. The parent of link must exist.
func (h *Host) Symlink(target, link []byte) error {
	const op = "symlink"
	name := normalize(link)
	if err := h.requireParent(op, link, name); err != nil {
		return err
	}
	if _, err := h.bfs.Lstat(name); err == nil {
		return fail(op, link, host.TagAlreadyExists)
	}
	return host.NewError(op, link, h.bfs.Symlink(filepath.ToSlash(string(target)), name))
}

var (
	_ host.Host   = (*Host)(nil)
	_ host.Linker = (*Host)(nil)
)
