package billy

import (
	"github.com/jmgilman/go/pathfs/host"
)

// List returns the names of the entries of a directory. A symbolic link to
// a directory is followed.
func (h *Host) List(path []byte) ([][]byte, error) {
	const op = "list"
	name := normalize(path)
	info, err := h.bfs.Stat(name)
	if err != nil {
		return nil, host.NewError(op, path, err)
	}
	if !info.IsDir() {
		return nil, fail(op, path, host.TagNotADirectory)
	}
	infos, err := h.bfs.ReadDir(name)
	if err != nil {
		return nil, host.NewError(op, path, err)
	}
	names := make([][]byte, len(infos))
	for i, fi := range infos {
		names[i] = []byte(fi.Name())
	}
	return names, nil
}

// Create creates a single directory.
// Unlike MkdirAll, this fails if the parent directory does not exist.
func (h *Host) Create(path []byte) error {
	const op = "mkdir"
	name := normalize(path)
	if _, err := h.bfs.Lstat(name); err == nil {
		return fail(op, path, host.TagAlreadyExists)
	}
	if err := h.requireParent(op, path, name); err != nil {
		return err
	}
	// MkdirAll won't create parents since we verified the parent exists.
	return host.NewError(op, path, h.bfs.MkdirAll(name, 0o755))
}

// CreateAll creates a directory and any missing ancestors. It fails if the
// path already exists or an ancestor is not a directory.
func (h *Host) CreateAll(path []byte) error {
	const op = "mkdirall"
	name := normalize(path)
	if _, err := h.bfs.Lstat(name); err == nil {
		return fail(op, path, host.TagAlreadyExists)
	}
	for p := parentOf(name); !isRoot(p); p = parentOf(p) {
		info, err := h.bfs.Stat(p)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			return fail(op, []byte(p), host.TagNotADirectory)
		}
		break
	}
	return host.NewError(op, path, h.bfs.MkdirAll(name, 0o755))
}

// DeleteEmpty removes an empty directory.
func (h *Host) DeleteEmpty(path []byte) error {
	const op = "rmdir"
	name := normalize(path)
	if err := h.requireDir(op, path, name); err != nil {
		return err
	}
	infos, err := h.bfs.ReadDir(name)
	if err != nil {
		return host.NewError(op, path, err)
	}
	if len(infos) > 0 {
		return fail(op, path, host.TagDirectoryNotEmpty)
	}
	return host.NewError(op, path, h.bfs.Remove(name))
}

// DeleteAll removes a directory and everything beneath it. It stops at the
// first failure, leaving the rest of the tree in place.
func (h *Host) DeleteAll(path []byte) error {
	const op = "rmdirall"
	name := normalize(path)
	if err := h.requireDir(op, path, name); err != nil {
		return err
	}
	return h.removeAll(op, name)
}

// requireDir checks that name itself (not a link target) is a directory.
func (h *Host) requireDir(op string, path []byte, name string) error {
	info, err := h.bfs.Lstat(name)
	if err != nil {
		return host.NewError(op, path, err)
	}
	if !infoOf(info).IsDir {
		return fail(op, path, host.TagNotADirectory)
	}
	return nil
}

// removeAll deletes a tree depth first. Billy has no RemoveAll.
func (h *Host) removeAll(op, name string) error {
	infos, err := h.bfs.ReadDir(name)
	if err != nil {
		return host.NewError(op, []byte(name), err)
	}
	for _, fi := range infos {
		child := h.bfs.Join(name, fi.Name())
		if infoOf(fi).IsDir {
			if err := h.removeAll(op, child); err != nil {
				return err
			}
			continue
		}
		if err := h.bfs.Remove(child); err != nil {
			return host.NewError(op, []byte(child), err)
		}
	}
	if err := h.bfs.Remove(name); err != nil {
		return host.NewError(op, []byte(name), err)
	}
	return nil
}
