// Package minio provides a MinIO/S3-backed host for pathfs.
//
// Objects are files and "/"-terminated marker objects are directories.
// Directories also exist implicitly while any key shares their prefix, like
// the prefixes an S3 console shows. Use Config.Prefix to confine a host to
// part of a bucket.
//
// Differences from local hosts:
//   - WriteBytes does not require the parent directory to exist.
//   - Symbolic links are not supported; Host does not implement host.Linker.
//   - DeleteAll removes objects concurrently and is not atomic.
//
// Example:
//
//	h, err := minio.New(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    Bucket:    "notes",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	})
//	if err != nil {
//	    return err
//	}
//	fsys := pathfs.New(h)
package minio
