package hosttest

import (
	"slices"
	"testing"

	"github.com/jmgilman/go/pathfs/host"
)

// TestDirs tests directory operations with POSIXConfig.
func TestDirs(t *testing.T, h host.Host) {
	TestDirsWithConfig(t, h, POSIXConfig())
}

// TestDirsWithConfig tests List, Create, CreateAll, DeleteEmpty and DeleteAll.
func TestDirsWithConfig(t *testing.T, h host.Host, config Config) {
	const group = "Dirs"

	subtest(t, config, group, "CreateAndList", func(t *testing.T) {
		if err := h.Create([]byte("listing")); err != nil {
			t.Fatalf("Create(listing): got error %v, want nil", err)
		}
		mustWrite(t, h, "listing/b.txt", "b")
		mustWrite(t, h, "listing/a.txt", "a")
		if err := h.Create([]byte("listing/sub")); err != nil {
			t.Fatalf("Create(listing/sub): got error %v, want nil", err)
		}
		mustWrite(t, h, "listing/sub/deep.txt", "d")

		list, err := h.List([]byte("listing"))
		if err != nil {
			t.Fatalf("List(listing): got error %v, want nil", err)
		}
		want := []string{"a.txt", "b.txt", "sub"}
		if got := names(list); !slices.Equal(got, want) {
			t.Errorf("List(listing): got %q, want %q", got, want)
		}
	})

	subtest(t, config, group, "ListEmpty", func(t *testing.T) {
		mustCreateAll(t, h, "emptylist")
		list, err := h.List([]byte("emptylist"))
		if err != nil {
			t.Fatalf("List(emptylist): got error %v, want nil", err)
		}
		if len(list) != 0 {
			t.Errorf("List(emptylist): got %q, want none", names(list))
		}
	})

	subtest(t, config, group, "ListMissing", func(t *testing.T) {
		_, err := h.List([]byte("no-such-dir"))
		wantTag(t, "List(no-such-dir)", err, host.TagNotFound)
	})

	subtest(t, config, group, "ListFile", func(t *testing.T) {
		mustWrite(t, h, "listfile.txt", "x")
		_, err := h.List([]byte("listfile.txt"))
		wantTag(t, "List(listfile.txt)", err, host.TagNotADirectory)
	})

	subtest(t, config, group, "CreateExisting", func(t *testing.T) {
		mustCreateAll(t, h, "exists")
		wantTag(t, "Create(exists)", h.Create([]byte("exists")), host.TagAlreadyExists)
	})

	subtest(t, config, group, "CreateOverFile", func(t *testing.T) {
		mustWrite(t, h, "occupied", "x")
		wantTag(t, "Create(occupied)", h.Create([]byte("occupied")), host.TagAlreadyExists)
	})

	subtest(t, config, group, "CreateNoParent", func(t *testing.T) {
		if config.ImplicitParentDirs {
			t.Skip("host creates parents implicitly")
		}
		wantTag(t, "Create(orphan/child)", h.Create([]byte("orphan/child")), host.TagNotFound)
	})

	subtest(t, config, group, "CreateAllNested", func(t *testing.T) {
		if err := h.CreateAll([]byte("x/y/z")); err != nil {
			t.Fatalf("CreateAll(x/y/z): got error %v, want nil", err)
		}
		for _, p := range []string{"x", "x/y", "x/y/z"} {
			info, err := h.Lstat([]byte(p))
			if err != nil {
				t.Errorf("Lstat(%q): got error %v, want nil", p, err)
				continue
			}
			if !info.IsDir {
				t.Errorf("Lstat(%q): got IsDir false, want true", p)
			}
		}
	})

	subtest(t, config, group, "CreateAllExisting", func(t *testing.T) {
		mustCreateAll(t, h, "again/deep")
		wantTag(t, "CreateAll(again/deep)", h.CreateAll([]byte("again/deep")), host.TagAlreadyExists)
	})

	subtest(t, config, group, "DeleteEmpty", func(t *testing.T) {
		mustCreateAll(t, h, "rmdir")
		if err := h.DeleteEmpty([]byte("rmdir")); err != nil {
			t.Fatalf("DeleteEmpty(rmdir): got error %v, want nil", err)
		}
		_, err := h.Lstat([]byte("rmdir"))
		wantTag(t, "Lstat(rmdir) after DeleteEmpty", err, host.TagNotFound)
	})

	subtest(t, config, group, "DeleteEmptyNotEmpty", func(t *testing.T) {
		mustCreateAll(t, h, "full")
		mustWrite(t, h, "full/f.txt", "x")
		wantTag(t, "DeleteEmpty(full)", h.DeleteEmpty([]byte("full")), host.TagDirectoryNotEmpty)
		if _, err := h.Lstat([]byte("full/f.txt")); err != nil {
			t.Errorf("Lstat(full/f.txt): got error %v, want nil", err)
		}
	})

	subtest(t, config, group, "DeleteEmptyFile", func(t *testing.T) {
		mustWrite(t, h, "notdir.txt", "x")
		wantTag(t, "DeleteEmpty(notdir.txt)", h.DeleteEmpty([]byte("notdir.txt")), host.TagNotADirectory)
	})

	subtest(t, config, group, "DeleteEmptyMissing", func(t *testing.T) {
		wantTag(t, "DeleteEmpty(gone)", h.DeleteEmpty([]byte("gone")), host.TagNotFound)
	})

	subtest(t, config, group, "DeleteAll", func(t *testing.T) {
		mustCreateAll(t, h, "tree/a/b")
		mustCreateAll(t, h, "tree/c")
		mustWrite(t, h, "tree/f.txt", "1")
		mustWrite(t, h, "tree/a/b/g.txt", "2")
		mustWrite(t, h, "treehouse.txt", "sibling")

		if err := h.DeleteAll([]byte("tree")); err != nil {
			t.Fatalf("DeleteAll(tree): got error %v, want nil", err)
		}
		for _, p := range []string{"tree", "tree/a", "tree/a/b/g.txt", "tree/f.txt"} {
			_, err := h.Lstat([]byte(p))
			wantTag(t, "Lstat("+p+") after DeleteAll", err, host.TagNotFound)
		}
		if _, err := h.Lstat([]byte("treehouse.txt")); err != nil {
			t.Errorf("Lstat(treehouse.txt): sibling removed: %v", err)
		}
	})

	subtest(t, config, group, "DeleteAllMissing", func(t *testing.T) {
		wantTag(t, "DeleteAll(nothing)", h.DeleteAll([]byte("nothing")), host.TagNotFound)
	})

	subtest(t, config, group, "DeleteAllFile", func(t *testing.T) {
		mustWrite(t, h, "plain.txt", "x")
		wantTag(t, "DeleteAll(plain.txt)", h.DeleteAll([]byte("plain.txt")), host.TagNotADirectory)
	})
}
