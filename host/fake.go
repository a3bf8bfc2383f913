package host

import (
	"bytes"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Fake is an in-memory [Host] for testing. It simulates filesystem state
// (fake) and records every call (spy). Entries in Errors are returned before
// any state is consulted, keyed by the path (or "#<handle>" for handles).
//
// Paths are used verbatim as keys: "a/b" and "a//b" are different entries.
// The roots "" and "/" always exist as directories.
type Fake struct {
	Errors map[string]error
	Calls  []Call

	mu      sync.Mutex
	nodes   map[string]*fakeNode
	streams map[Handle]*fakeStream
	next    Handle
	now     func() time.Time
}

// Call records a single method invocation on [Fake].
type Call struct {
	Method string
	Path   string
}

type fakeKind int

const (
	fakeFile fakeKind = iota
	fakeDir
	fakeLink
)

type fakeNode struct {
	kind    fakeKind
	data    []byte
	target  string
	modTime time.Time
}

type fakeStream struct {
	data []byte
	off  int
}

// maxLinkHops bounds symlink resolution.
const maxLinkHops = 8

// NewFake returns an empty [Fake].
func NewFake() *Fake {
	return &Fake{
		Errors:  make(map[string]error),
		nodes:   make(map[string]*fakeNode),
		streams: make(map[Handle]*fakeStream),
		now:     time.Now,
	}
}

// AddDir creates a directory and its ancestors directly, bypassing checks.
func (f *Fake) AddDir(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addDirLocked(path)
}

// AddFile creates a file (and its ancestors) directly, bypassing checks.
func (f *Fake) AddFile(path string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addDirLocked(parentOf(path))
	f.nodes[path] = &fakeNode{kind: fakeFile, data: bytes.Clone(data), modTime: f.now()}
}

func (f *Fake) addDirLocked(path string) {
	for p := path; !isRoot(p); p = parentOf(p) {
		if _, ok := f.nodes[p]; ok {
			continue
		}
		f.nodes[p] = &fakeNode{kind: fakeDir, modTime: f.now()}
	}
}

// record logs the call and returns any injected error.
func (f *Fake) record(method, path string) error {
	f.Calls = append(f.Calls, Call{Method: method, Path: path})
	if err, ok := f.Errors[path]; ok {
		return err
	}
	return nil
}

// OpenRead opens a file for streaming reads.
func (f *Fake) OpenRead(path []byte) (Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := string(path)
	if err := f.record("OpenRead", name); err != nil {
		return 0, err
	}
	n, err := f.resolveLocked("open", name)
	if err != nil {
		return 0, err
	}
	if n.kind == fakeDir {
		return 0, &Error{Op: "open", Path: path, Tag: TagIsADirectory}
	}
	f.next++
	f.streams[f.next] = &fakeStream{data: bytes.Clone(n.data)}
	return f.next, nil
}

// ReadLine returns the next line of an open stream.
func (f *Fake) ReadLine(h Handle) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ReadLine", handleKey(h)); err != nil {
		return nil, err
	}
	s, ok := f.streams[h]
	if !ok {
		return nil, &Error{Op: "readline", Tag: TagBadHandle, Err: ErrBadHandle}
	}
	rest := s.data[s.off:]
	if i := bytes.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i+1]
	}
	s.off += len(rest)
	return bytes.Clone(rest), nil
}

// Close releases an open stream.
func (f *Fake) Close(h Handle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Close", handleKey(h)); err != nil {
		return err
	}
	if _, ok := f.streams[h]; !ok {
		return &Error{Op: "close", Tag: TagBadHandle, Err: ErrBadHandle}
	}
	delete(f.streams, h)
	return nil
}

// OpenHandles returns the number of streams not yet closed.
func (f *Fake) OpenHandles() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.streams)
}

// ReadAll returns a copy of the file contents.
func (f *Fake) ReadAll(path []byte) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := string(path)
	if err := f.record("ReadAll", name); err != nil {
		return nil, err
	}
	n, err := f.resolveLocked("read", name)
	if err != nil {
		return nil, err
	}
	if n.kind == fakeDir {
		return nil, &Error{Op: "read", Path: path, Tag: TagIsADirectory}
	}
	return bytes.Clone(n.data), nil
}

// WriteBytes creates or truncates a file.
func (f *Fake) WriteBytes(path []byte, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := string(path)
	if err := f.record("WriteBytes", name); err != nil {
		return err
	}
	if err := f.requireParentLocked("write", name); err != nil {
		return err
	}
	if n, ok := f.nodes[name]; ok && n.kind == fakeDir {
		return &Error{Op: "write", Path: path, Tag: TagIsADirectory}
	}
	f.nodes[name] = &fakeNode{kind: fakeFile, data: bytes.Clone(data), modTime: f.now()}
	return nil
}

// Delete removes a file or symbolic link.
func (f *Fake) Delete(path []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := string(path)
	if err := f.record("Delete", name); err != nil {
		return err
	}
	n, ok := f.nodes[name]
	if !ok {
		return &Error{Op: "delete", Path: path, Tag: TagNotFound}
	}
	if n.kind == fakeDir {
		return &Error{Op: "delete", Path: path, Tag: TagIsADirectory}
	}
	delete(f.nodes, name)
	return nil
}

// List returns the sorted names of a directory's entries.
func (f *Fake) List(path []byte) ([][]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := string(path)
	if err := f.record("List", name); err != nil {
		return nil, err
	}
	dir, err := f.resolveDirLocked("list", name)
	if err != nil {
		return nil, err
	}
	children := f.childrenLocked(dir)
	names := make([][]byte, len(children))
	for i, c := range children {
		names[i] = []byte(c[len(childPrefix(dir)):])
	}
	return names, nil
}

// Create creates a single directory.
func (f *Fake) Create(path []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := string(path)
	if err := f.record("Create", name); err != nil {
		return err
	}
	if f.existsLocked(name) {
		return &Error{Op: "mkdir", Path: path, Tag: TagAlreadyExists}
	}
	if err := f.requireParentLocked("mkdir", name); err != nil {
		return err
	}
	f.nodes[name] = &fakeNode{kind: fakeDir, modTime: f.now()}
	return nil
}

// CreateAll creates a directory and any missing ancestors.
func (f *Fake) CreateAll(path []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := string(path)
	if err := f.record("CreateAll", name); err != nil {
		return err
	}
	if f.existsLocked(name) {
		return &Error{Op: "mkdirall", Path: path, Tag: TagAlreadyExists}
	}
	var missing []string
	for p := name; !isRoot(p); p = parentOf(p) {
		n, ok := f.nodes[p]
		if !ok {
			missing = append(missing, p)
			continue
		}
		if n.kind != fakeDir {
			return &Error{Op: "mkdirall", Path: []byte(p), Tag: TagNotADirectory}
		}
		break
	}
	for i := len(missing) - 1; i >= 0; i-- {
		if err, ok := f.Errors[missing[i]]; ok {
			return err
		}
		f.nodes[missing[i]] = &fakeNode{kind: fakeDir, modTime: f.now()}
	}
	return nil
}

// DeleteEmpty removes an empty directory.
func (f *Fake) DeleteEmpty(path []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := string(path)
	if err := f.record("DeleteEmpty", name); err != nil {
		return err
	}
	n, ok := f.nodes[name]
	if !ok {
		return &Error{Op: "rmdir", Path: path, Tag: TagNotFound}
	}
	if n.kind != fakeDir {
		return &Error{Op: "rmdir", Path: path, Tag: TagNotADirectory}
	}
	if len(f.childrenLocked(name)) > 0 {
		return &Error{Op: "rmdir", Path: path, Tag: TagDirectoryNotEmpty}
	}
	delete(f.nodes, name)
	return nil
}

// DeleteAll removes a directory tree. Entries with injected errors are left
// in place and the first such error is returned after the others are gone.
func (f *Fake) DeleteAll(path []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := string(path)
	if err := f.record("DeleteAll", name); err != nil {
		return err
	}
	n, ok := f.nodes[name]
	if !ok {
		return &Error{Op: "rmdirall", Path: path, Tag: TagNotFound}
	}
	if n.kind != fakeDir {
		return &Error{Op: "rmdirall", Path: path, Tag: TagNotADirectory}
	}
	var keys []string
	prefix := childPrefix(name)
	for k := range f.nodes {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	// Deepest first, so a failure leaves its ancestors in place.
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	var firstErr error
	blocked := make(map[string]bool)
	for _, k := range keys {
		if err, ok := f.Errors[k]; ok {
			if firstErr == nil {
				firstErr = err
			}
			for p := parentOf(k); p != name && !isRoot(p); p = parentOf(p) {
				blocked[p] = true
			}
			continue
		}
		if blocked[k] {
			continue
		}
		delete(f.nodes, k)
	}
	if firstErr != nil {
		return firstErr
	}
	delete(f.nodes, name)
	return nil
}

// Lstat describes a path without following a final symbolic link.
func (f *Fake) Lstat(path []byte) (Info, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := string(path)
	if err := f.record("Lstat", name); err != nil {
		return Info{}, err
	}
	if isRoot(name) {
		return Info{IsDir: true, Mode: fs.ModeDir | 0o755}, nil
	}
	n, ok := f.nodes[name]
	if !ok {
		return Info{}, &Error{Op: "lstat", Path: path, Tag: TagNotFound}
	}
	return n.info(), nil
}

// Symlink creates link pointing at target.
func (f *Fake) Symlink(target, link []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := string(link)
	if err := f.record("Symlink", name); err != nil {
		return err
	}
	if f.existsLocked(name) {
		return &Error{Op: "symlink", Path: link, Tag: TagAlreadyExists}
	}
	if err := f.requireParentLocked("symlink", name); err != nil {
		return err
	}
	f.nodes[name] = &fakeNode{kind: fakeLink, target: string(target), modTime: f.now()}
	return nil
}

func (n *fakeNode) info() Info {
	switch n.kind {
	case fakeDir:
		return Info{IsDir: true, Mode: fs.ModeDir | 0o755, ModTime: n.modTime}
	case fakeLink:
		return Info{IsSymLink: true, Mode: fs.ModeSymlink | 0o777, Size: int64(len(n.target)), ModTime: n.modTime}
	default:
		return Info{Size: int64(len(n.data)), Mode: 0o644, ModTime: n.modTime}
	}
}

func (f *Fake) existsLocked(name string) bool {
	if isRoot(name) {
		return true
	}
	_, ok := f.nodes[name]
	return ok
}

// resolveLocked follows symbolic links until a file or directory is found.
func (f *Fake) resolveLocked(op, name string) (*fakeNode, error) {
	for range maxLinkHops {
		if isRoot(name) {
			return &fakeNode{kind: fakeDir}, nil
		}
		n, ok := f.nodes[name]
		if !ok {
			return nil, &Error{Op: op, Path: []byte(name), Tag: TagNotFound}
		}
		if n.kind != fakeLink {
			return n, nil
		}
		name = linkTarget(name, n.target)
	}
	return nil, Errorf(op, []byte(name), TagOther, "too many levels of symbolic links")
}

// resolveDirLocked returns the key of the directory name refers to.
func (f *Fake) resolveDirLocked(op, name string) (string, error) {
	for range maxLinkHops {
		if isRoot(name) {
			return name, nil
		}
		n, ok := f.nodes[name]
		if !ok {
			return "", &Error{Op: op, Path: []byte(name), Tag: TagNotFound}
		}
		switch n.kind {
		case fakeDir:
			return name, nil
		case fakeFile:
			return "", &Error{Op: op, Path: []byte(name), Tag: TagNotADirectory}
		}
		name = linkTarget(name, n.target)
	}
	return "", Errorf(op, []byte(name), TagOther, "too many levels of symbolic links")
}

func (f *Fake) requireParentLocked(op, name string) error {
	parent := parentOf(name)
	if isRoot(parent) {
		return nil
	}
	if _, err := f.resolveDirLocked(op, parent); err != nil {
		return &Error{Op: op, Path: []byte(name), Tag: TagOf(err)}
	}
	return nil
}

// childrenLocked returns the sorted keys of the direct children of dir.
func (f *Fake) childrenLocked(dir string) []string {
	prefix := childPrefix(dir)
	var out []string
	for k := range f.nodes {
		if k == dir || !strings.HasPrefix(k, prefix) {
			continue
		}
		if strings.Contains(k[len(prefix):], "/") {
			continue
		}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func handleKey(h Handle) string {
	return "#" + strconv.FormatUint(uint64(h), 10)
}

func isRoot(p string) bool {
	return p == "" || p == "/"
}

func parentOf(p string) string {
	p = strings.TrimRight(p, "/")
	i := strings.LastIndexByte(p, '/')
	switch {
	case i < 0:
		return ""
	case i == 0:
		return "/"
	}
	return p[:i]
}

func childPrefix(dir string) string {
	switch dir {
	case "":
		return ""
	case "/":
		return "/"
	}
	return dir + "/"
}

func linkTarget(link, target string) string {
	if strings.HasPrefix(target, "/") {
		return target
	}
	parent := parentOf(link)
	if parent == "" {
		return target
	}
	return childPrefix(parent) + target
}

var _ Host = (*Fake)(nil)
var _ Linker = (*Fake)(nil)
