package hosttest

import (
	"testing"

	"github.com/jmgilman/go/pathfs/host"
)

// TestMetadata tests Lstat with POSIXConfig.
func TestMetadata(t *testing.T, h host.Host) {
	TestMetadataWithConfig(t, h, POSIXConfig())
}

// TestMetadataWithConfig tests Lstat.
func TestMetadataWithConfig(t *testing.T, h host.Host, config Config) {
	const group = "Metadata"

	subtest(t, config, group, "File", func(t *testing.T) {
		mustWrite(t, h, "meta.txt", "12345")
		info, err := h.Lstat([]byte("meta.txt"))
		if err != nil {
			t.Fatalf("Lstat(meta.txt): got error %v, want nil", err)
		}
		if info.IsDir || info.IsSymLink {
			t.Errorf("Lstat(meta.txt): got %+v, want regular file", info)
		}
		if info.Size != 5 {
			t.Errorf("Lstat(meta.txt): got size %d, want 5", info.Size)
		}
		if !info.Mode.IsRegular() {
			t.Errorf("Lstat(meta.txt): got mode %v, want regular", info.Mode)
		}
	})

	subtest(t, config, group, "Directory", func(t *testing.T) {
		mustCreateAll(t, h, "metadir")
		info, err := h.Lstat([]byte("metadir"))
		if err != nil {
			t.Fatalf("Lstat(metadir): got error %v, want nil", err)
		}
		if !info.IsDir || info.IsSymLink {
			t.Errorf("Lstat(metadir): got %+v, want directory", info)
		}
		if !info.Mode.IsDir() {
			t.Errorf("Lstat(metadir): got mode %v, want directory", info.Mode)
		}
	})

	subtest(t, config, group, "ImplicitDirectory", func(t *testing.T) {
		if !config.ImplicitParentDirs {
			t.Skip("host requires explicit directories")
		}
		mustWrite(t, h, "implied/child.txt", "x")
		info, err := h.Lstat([]byte("implied"))
		if err != nil {
			t.Fatalf("Lstat(implied): got error %v, want nil", err)
		}
		if !info.IsDir {
			t.Errorf("Lstat(implied): got %+v, want directory", info)
		}
	})

	subtest(t, config, group, "Missing", func(t *testing.T) {
		_, err := h.Lstat([]byte("meta-missing"))
		wantTag(t, "Lstat(meta-missing)", err, host.TagNotFound)
	})

	subtest(t, config, group, "MissingParent", func(t *testing.T) {
		_, err := h.Lstat([]byte("meta-none/child"))
		wantTag(t, "Lstat(meta-none/child)", err, host.TagNotFound)
	})
}
