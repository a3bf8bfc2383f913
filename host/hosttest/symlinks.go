package hosttest

import (
	"testing"

	"github.com/jmgilman/go/pathfs/host"
)

// TestSymlinks tests host.Linker with POSIXConfig.
func TestSymlinks(t *testing.T, h host.Host) {
	TestSymlinksWithConfig(t, h, POSIXConfig())
}

// TestSymlinksWithConfig tests Symlink and how the other operations treat
// links. It is skipped unless config.Symlinks is set.
func TestSymlinksWithConfig(t *testing.T, h host.Host, config Config) {
	const group = "Symlinks"

	if !config.Symlinks {
		t.Skip("host does not support symbolic links")
	}
	linker, ok := h.(host.Linker)
	if !ok {
		t.Fatalf("config.Symlinks is set but %T does not implement host.Linker", h)
	}

	subtest(t, config, group, "LstatReportsLink", func(t *testing.T) {
		mustWrite(t, h, "target.txt", "through the link")
		if err := linker.Symlink([]byte("target.txt"), []byte("link.txt")); err != nil {
			t.Fatalf("Symlink(target.txt, link.txt): got error %v, want nil", err)
		}
		info, err := h.Lstat([]byte("link.txt"))
		if err != nil {
			t.Fatalf("Lstat(link.txt): got error %v, want nil", err)
		}
		if !info.IsSymLink {
			t.Errorf("Lstat(link.txt): got %+v, want symlink", info)
		}
		if info.IsDir {
			t.Errorf("Lstat(link.txt): got IsDir true, want false")
		}
	})

	subtest(t, config, group, "ReadFollowsLink", func(t *testing.T) {
		mustWrite(t, h, "follow-target.txt", "followed")
		if err := linker.Symlink([]byte("follow-target.txt"), []byte("follow.txt")); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}
		got, err := h.ReadAll([]byte("follow.txt"))
		if err != nil || string(got) != "followed" {
			t.Errorf("ReadAll(follow.txt): got %q, %v; want %q, nil", got, err, "followed")
		}
	})

	subtest(t, config, group, "DanglingLink", func(t *testing.T) {
		if err := linker.Symlink([]byte("nowhere.txt"), []byte("dangling.txt")); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}
		info, err := h.Lstat([]byte("dangling.txt"))
		if err != nil {
			t.Fatalf("Lstat(dangling.txt): got error %v, want nil", err)
		}
		if !info.IsSymLink {
			t.Errorf("Lstat(dangling.txt): got %+v, want symlink", info)
		}
		_, err = h.ReadAll([]byte("dangling.txt"))
		wantTag(t, "ReadAll(dangling.txt)", err, host.TagNotFound)
	})

	subtest(t, config, group, "DeleteRemovesLinkOnly", func(t *testing.T) {
		mustWrite(t, h, "kept.txt", "still here")
		if err := linker.Symlink([]byte("kept.txt"), []byte("doomed.txt")); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}
		if err := h.Delete([]byte("doomed.txt")); err != nil {
			t.Fatalf("Delete(doomed.txt): got error %v, want nil", err)
		}
		if _, err := h.Lstat([]byte("doomed.txt")); host.TagOf(err) != host.TagNotFound {
			t.Errorf("Lstat(doomed.txt) after Delete: got %v, want not found", err)
		}
		if _, err := h.Lstat([]byte("kept.txt")); err != nil {
			t.Errorf("Lstat(kept.txt): target removed: %v", err)
		}
	})

	subtest(t, config, group, "ListThroughLink", func(t *testing.T) {
		mustCreateAll(t, h, "realdir")
		mustWrite(t, h, "realdir/inside.txt", "x")
		if err := linker.Symlink([]byte("realdir"), []byte("dirlink")); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}
		list, err := h.List([]byte("dirlink"))
		if err != nil {
			t.Fatalf("List(dirlink): got error %v, want nil", err)
		}
		if got := names(list); len(got) != 1 || got[0] != "inside.txt" {
			t.Errorf("List(dirlink): got %q, want [inside.txt]", got)
		}
	})
}
