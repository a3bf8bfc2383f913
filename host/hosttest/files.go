package hosttest

import (
	"bytes"
	"testing"

	"github.com/jmgilman/go/pathfs/host"
)

// TestFiles tests whole-file operations with POSIXConfig.
func TestFiles(t *testing.T, h host.Host) {
	TestFilesWithConfig(t, h, POSIXConfig())
}

// TestFilesWithConfig tests ReadAll, WriteBytes and Delete.
func TestFilesWithConfig(t *testing.T, h host.Host, config Config) {
	const group = "Files"

	subtest(t, config, group, "WriteReadRoundTrip", func(t *testing.T) {
		data := []byte("line one\nline two\x00\xff")
		if err := h.WriteBytes([]byte("roundtrip.bin"), data); err != nil {
			t.Fatalf("WriteBytes(roundtrip.bin): got error %v, want nil", err)
		}
		got, err := h.ReadAll([]byte("roundtrip.bin"))
		if err != nil {
			t.Fatalf("ReadAll(roundtrip.bin): got error %v, want nil", err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("ReadAll(roundtrip.bin): got %q, want %q", got, data)
		}
	})

	subtest(t, config, group, "WriteTruncates", func(t *testing.T) {
		mustWrite(t, h, "truncate.txt", "a much longer original body")
		mustWrite(t, h, "truncate.txt", "short")
		got, err := h.ReadAll([]byte("truncate.txt"))
		if err != nil {
			t.Fatalf("ReadAll(truncate.txt): got error %v, want nil", err)
		}
		if string(got) != "short" {
			t.Errorf("ReadAll(truncate.txt): got %q, want %q", got, "short")
		}
	})

	subtest(t, config, group, "WriteEmpty", func(t *testing.T) {
		mustWrite(t, h, "empty.txt", "")
		got, err := h.ReadAll([]byte("empty.txt"))
		if err != nil {
			t.Fatalf("ReadAll(empty.txt): got error %v, want nil", err)
		}
		if len(got) != 0 {
			t.Errorf("ReadAll(empty.txt): got %d bytes, want 0", len(got))
		}
	})

	subtest(t, config, group, "WriteNoParent", func(t *testing.T) {
		if config.ImplicitParentDirs {
			t.Skip("host creates parents implicitly")
		}
		err := h.WriteBytes([]byte("noparent/child.txt"), []byte("x"))
		wantTag(t, "WriteBytes(noparent/child.txt)", err, host.TagNotFound)
	})

	subtest(t, config, group, "WriteIntoSubdir", func(t *testing.T) {
		mustCreateAll(t, h, "sub/dir")
		mustWrite(t, h, "sub/dir/f.txt", "nested")
		got, err := h.ReadAll([]byte("sub/dir/f.txt"))
		if err != nil || string(got) != "nested" {
			t.Errorf("ReadAll(sub/dir/f.txt): got %q, %v; want %q, nil", got, err, "nested")
		}
	})

	subtest(t, config, group, "ReadMissing", func(t *testing.T) {
		_, err := h.ReadAll([]byte("missing.txt"))
		wantTag(t, "ReadAll(missing.txt)", err, host.TagNotFound)
	})

	subtest(t, config, group, "ReadDirectory", func(t *testing.T) {
		mustCreateAll(t, h, "readdir")
		_, err := h.ReadAll([]byte("readdir"))
		wantTag(t, "ReadAll(readdir)", err, host.TagIsADirectory)
	})

	subtest(t, config, group, "DeleteFile", func(t *testing.T) {
		mustWrite(t, h, "delete.txt", "bye")
		if err := h.Delete([]byte("delete.txt")); err != nil {
			t.Fatalf("Delete(delete.txt): got error %v, want nil", err)
		}
		_, err := h.Lstat([]byte("delete.txt"))
		wantTag(t, "Lstat(delete.txt) after Delete", err, host.TagNotFound)
	})

	subtest(t, config, group, "DeleteMissing", func(t *testing.T) {
		err := h.Delete([]byte("never-existed.txt"))
		wantTag(t, "Delete(never-existed.txt)", err, host.TagNotFound)
	})

	subtest(t, config, group, "DeleteDirectory", func(t *testing.T) {
		mustCreateAll(t, h, "deldir")
		err := h.Delete([]byte("deldir"))
		wantTag(t, "Delete(deldir)", err, host.TagIsADirectory)
	})
}
