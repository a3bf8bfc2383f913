//go:build !unix

package host

// classifyErrno has no errno table on this platform; io/fs sentinels still
// apply.
func classifyErrno(error) Tag {
	return ""
}
