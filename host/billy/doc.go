// Package billy provides go-billy-backed hosts for pathfs.
//
// NewLocal wraps go-billy's osfs and NewMemory wraps its memfs. Both share
// one implementation and enforce the same POSIX semantics with explicit
// checks (parent exists, target absent, directory empty), so a test written
// against the memory host holds for the local one.
//
// Usage:
//
//	// Local filesystem rooted at "/"
//	fsys := pathfs.New(billy.NewLocal())
//
//	// Local filesystem confined to a directory
//	fsys := pathfs.New(billy.NewLocal(billy.WithRoot("/srv/data")))
//
//	// In-memory filesystem for tests
//	fsys := pathfs.New(billy.NewMemory())
//
// # Thread Safety
//
// Hosts are safe for concurrent use by multiple goroutines. A stream handle
// must only be used by the caller that opened it.
package billy
