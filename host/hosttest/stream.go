package hosttest

import (
	"testing"

	"github.com/jmgilman/go/pathfs/host"
)

// TestStream tests streaming reads with POSIXConfig.
func TestStream(t *testing.T, h host.Host) {
	TestStreamWithConfig(t, h, POSIXConfig())
}

// TestStreamWithConfig tests OpenRead, ReadLine and Close.
func TestStreamWithConfig(t *testing.T, h host.Host, config Config) {
	const group = "Stream"

	subtest(t, config, group, "ReadLines", func(t *testing.T) {
		mustWrite(t, h, "lines.txt", "first\n\nthird\r\nlast")
		hd, err := h.OpenRead([]byte("lines.txt"))
		if err != nil {
			t.Fatalf("OpenRead(lines.txt): got error %v, want nil", err)
		}
		defer func() { _ = h.Close(hd) }()

		for i, want := range []string{"first\n", "\n", "third\r\n", "last", "", ""} {
			got, err := h.ReadLine(hd)
			if err != nil {
				t.Fatalf("ReadLine #%d: got error %v, want nil", i, err)
			}
			if string(got) != want {
				t.Errorf("ReadLine #%d: got %q, want %q", i, got, want)
			}
		}
	})

	subtest(t, config, group, "EmptyFile", func(t *testing.T) {
		mustWrite(t, h, "stream-empty.txt", "")
		hd, err := h.OpenRead([]byte("stream-empty.txt"))
		if err != nil {
			t.Fatalf("OpenRead(stream-empty.txt): got error %v, want nil", err)
		}
		defer func() { _ = h.Close(hd) }()

		got, err := h.ReadLine(hd)
		if err != nil || len(got) != 0 {
			t.Errorf("ReadLine: got %q, %v; want empty, nil", got, err)
		}
	})

	subtest(t, config, group, "LongLine", func(t *testing.T) {
		long := make([]byte, 256*1024)
		for i := range long {
			long[i] = 'a' + byte(i%26)
		}
		mustWrite(t, h, "long.txt", string(long)+"\nend")
		hd, err := h.OpenRead([]byte("long.txt"))
		if err != nil {
			t.Fatalf("OpenRead(long.txt): got error %v, want nil", err)
		}
		defer func() { _ = h.Close(hd) }()

		got, err := h.ReadLine(hd)
		if err != nil {
			t.Fatalf("ReadLine: got error %v, want nil", err)
		}
		if len(got) != len(long)+1 {
			t.Errorf("ReadLine: got %d bytes, want %d", len(got), len(long)+1)
		}
	})

	subtest(t, config, group, "IndependentHandles", func(t *testing.T) {
		mustWrite(t, h, "shared.txt", "1\n2\n")
		h1, err := h.OpenRead([]byte("shared.txt"))
		if err != nil {
			t.Fatalf("OpenRead(shared.txt): got error %v, want nil", err)
		}
		defer func() { _ = h.Close(h1) }()
		h2, err := h.OpenRead([]byte("shared.txt"))
		if err != nil {
			t.Fatalf("OpenRead(shared.txt) second: got error %v, want nil", err)
		}
		defer func() { _ = h.Close(h2) }()

		if h1 == h2 {
			t.Fatalf("OpenRead: got identical handles %d", h1)
		}
		_, _ = h.ReadLine(h1)
		l1, _ := h.ReadLine(h1)
		l2, _ := h.ReadLine(h2)
		if string(l1) != "2\n" || string(l2) != "1\n" {
			t.Errorf("ReadLine: got %q and %q, want %q and %q", l1, l2, "2\n", "1\n")
		}
	})

	subtest(t, config, group, "OpenMissing", func(t *testing.T) {
		_, err := h.OpenRead([]byte("stream-missing.txt"))
		wantTag(t, "OpenRead(stream-missing.txt)", err, host.TagNotFound)
	})

	subtest(t, config, group, "CloseTwice", func(t *testing.T) {
		mustWrite(t, h, "close.txt", "x")
		hd, err := h.OpenRead([]byte("close.txt"))
		if err != nil {
			t.Fatalf("OpenRead(close.txt): got error %v, want nil", err)
		}
		if err := h.Close(hd); err != nil {
			t.Fatalf("Close: got error %v, want nil", err)
		}
		wantTag(t, "Close (second)", h.Close(hd), host.TagBadHandle)
		_, err = h.ReadLine(hd)
		wantTag(t, "ReadLine after Close", err, host.TagBadHandle)
	})

	subtest(t, config, group, "UnknownHandle", func(t *testing.T) {
		_, err := h.ReadLine(host.Handle(1 << 40))
		wantTag(t, "ReadLine(unknown)", err, host.TagBadHandle)
	})
}
