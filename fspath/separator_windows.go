//go:build windows

package fspath

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}
