// Package hosttest provides a conformance test suite for validating
// host.Host implementations against the pathfs host contract.
//
// Providers call TestSuite (or TestSuiteWithConfig) from their own tests with
// a constructor for a fresh, empty host. Every test group gets a new host.
//
// Example usage:
//
//	func TestMemoryHost(t *testing.T) {
//	    hosttest.TestSuite(t, func() host.Host {
//	        return billy.NewMemory()
//	    })
//	}
package hosttest

import (
	"slices"
	"testing"

	"github.com/jmgilman/go/pathfs/host"
)

// Config configures the suite to match host behavior characteristics.
type Config struct {
	// Symlinks indicates the host implements host.Linker.
	Symlinks bool

	// ImplicitParentDirs indicates files can be written without their parent
	// directories existing (for example S3 prefixes).
	ImplicitParentDirs bool

	// SkipTests lists test names to skip.
	// Format: "Group" or "Group/SubTest" (e.g. "Dirs/CreateNoParent").
	SkipTests []string
}

// POSIXConfig returns configuration for POSIX-like hosts (local, memory).
func POSIXConfig() Config {
	return Config{
		Symlinks:           true,
		ImplicitParentDirs: false,
	}
}

// S3Config returns configuration for object-store hosts (MinIO, S3).
func S3Config() Config {
	return Config{
		Symlinks:           false,
		ImplicitParentDirs: true,
	}
}

// TestSuite runs all conformance tests with POSIXConfig.
func TestSuite(t *testing.T, newHost func() host.Host) {
	TestSuiteWithConfig(t, newHost, POSIXConfig())
}

// TestSuiteWithConfig runs all conformance tests with the given configuration.
func TestSuiteWithConfig(t *testing.T, newHost func() host.Host, config Config) {
	groups := []struct {
		name string
		run  func(*testing.T, host.Host, Config)
	}{
		{"Files", TestFilesWithConfig},
		{"Stream", TestStreamWithConfig},
		{"Dirs", TestDirsWithConfig},
		{"Metadata", TestMetadataWithConfig},
		{"Symlinks", TestSymlinksWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if config.skip(g.name) {
				t.Skip("Skipped by provider configuration")
			}
			g.run(t, newHost(), config)
		})
	}
}

func (c Config) skip(name string) bool {
	return slices.Contains(c.SkipTests, name)
}

// subtest runs fn as group/name unless it is skipped.
func subtest(t *testing.T, config Config, group, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		if config.skip(group + "/" + name) {
			t.Skip("Skipped by provider configuration")
		}
		fn(t)
	})
}

// wantTag fails the test unless err carries the expected tag.
func wantTag(t *testing.T, call string, err error, want host.Tag) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: got nil error, want %q", call, want)
		return
	}
	if got := host.TagOf(err); got != want {
		t.Errorf("%s: got tag %q (%v), want %q", call, got, err, want)
	}
}

func mustWrite(t *testing.T, h host.Host, path, data string) {
	t.Helper()
	if err := h.WriteBytes([]byte(path), []byte(data)); err != nil {
		t.Fatalf("WriteBytes(%q): setup failed: %v", path, err)
	}
}

func mustCreateAll(t *testing.T, h host.Host, path string) {
	t.Helper()
	if err := h.CreateAll([]byte(path)); err != nil {
		t.Fatalf("CreateAll(%q): setup failed: %v", path, err)
	}
}

func names(list [][]byte) []string {
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = string(n)
	}
	slices.Sort(out)
	return out
}
