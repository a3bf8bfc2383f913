// Package pathfs is a filesystem and path layer over an injected host.
//
// Callers build paths with the fspath package, then read, write, stream and
// manage directories through an FS. Every byte of I/O is delegated to a
// host.Host; pathfs resolves paths, rejects embedded NUL bytes, and maps
// host failures into the typed errors of the errors package.
//
//	fsys := pathfs.New(billy.NewLocal())
//
//	if err := fsys.WriteText(fspath.FromText("/tmp/greeting.txt"), "hello\n"); err != nil {
//	    return err
//	}
//
//	err := fsys.ReadLines(fspath.FromText("/tmp/greeting.txt"), func(line []byte) error {
//	    fmt.Println(string(line))
//	    return nil
//	})
//
// # Hosts
//
// The host package defines the boundary and ships an in-memory Fake for
// tests. The host/billy package provides local and in-memory hosts built on
// go-billy, and host/minio stores files in an S3 bucket.
//
// # Streams
//
// Open, ReadLine and Close expose the raw handle protocol. ReadLine returns
// an empty line at end of stream, so prefer ReadLines or Lines, which close
// the handle on every exit path and tell blank lines apart from the end.
//
// # Concurrency
//
// FS holds no mutable state and adds no locking or reordering. Mutual
// exclusion between callers touching the same path is the host's concern.
// A Handle belongs to the caller that opened it.
package pathfs
