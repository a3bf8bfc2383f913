package billy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/pathfs/host"
	"github.com/jmgilman/go/pathfs/host/hosttest"
)

// TestLocal_Constructor verifies NewLocal creates a valid host.
func TestLocal_Constructor(t *testing.T) {
	h := NewLocal()
	if h == nil {
		t.Fatal("NewLocal() returned nil")
	}
	if h.Unwrap() == nil {
		t.Error("NewLocal() billy filesystem is nil")
	}
	if h.streams == nil {
		t.Error("NewLocal() stream table is nil")
	}
}

// TestMemory_Constructor verifies NewMemory creates a valid host.
func TestMemory_Constructor(t *testing.T) {
	h := NewMemory()
	if h == nil {
		t.Fatal("NewMemory() returned nil")
	}

	// Verify the unwrapped filesystem is usable directly.
	if _, err := h.Unwrap().Create("test.txt"); err != nil {
		t.Errorf("Failed to use unwrapped filesystem: %v", err)
	}
}

// TestLocal_WithRoot verifies paths resolve beneath the configured root.
func TestLocal_WithRoot(t *testing.T) {
	dir := t.TempDir()
	h := NewLocal(WithRoot(dir))

	if err := h.WriteBytes([]byte("inside.txt"), []byte("rooted")); err != nil {
		t.Fatalf("WriteBytes(inside.txt): %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "inside.txt"))
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	if string(data) != "rooted" {
		t.Errorf("file content = %q, want %q", data, "rooted")
	}
}

// TestLocal_AbsolutePaths verifies the default host resolves absolute paths.
func TestLocal_AbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	h := NewLocal()
	name := filepath.ToSlash(filepath.Join(dir, "abs.txt"))

	if err := h.WriteBytes([]byte(name), []byte("abs")); err != nil {
		t.Fatalf("WriteBytes(%q): %v", name, err)
	}
	info, err := h.Lstat([]byte(name))
	if err != nil {
		t.Fatalf("Lstat(%q): %v", name, err)
	}
	if info.Size != 3 {
		t.Errorf("Lstat(%q).Size = %d, want 3", name, info.Size)
	}
}

// TestNormalize verifies the normalize helper function.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "test.txt", "test.txt"},
		{"with slash", "dir/file.txt", "dir/file.txt"},
		{"with double slash", "dir//file.txt", "dir/file.txt"},
		{"with dot", "dir/./file.txt", "dir/file.txt"},
		{"with dotdot", "dir/../file.txt", "file.txt"},
		{"empty", "", "."},
		{"root", "/", "/"},
		{"absolute", "/dir/file.txt", "/dir/file.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize([]byte(tt.input))
			if got != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestMemory_CreateAllThroughFile verifies a file ancestor is reported as
// not a directory rather than a backend-specific error.
func TestMemory_CreateAllThroughFile(t *testing.T) {
	h := NewMemory()
	if err := h.WriteBytes([]byte("f"), nil); err != nil {
		t.Fatalf("WriteBytes(f): %v", err)
	}

	err := h.CreateAll([]byte("f/x/y"))
	if got := host.TagOf(err); got != host.TagNotADirectory {
		t.Errorf("CreateAll(f/x/y): got tag %q (%v), want %q", got, err, host.TagNotADirectory)
	}
}

// TestMemory_CloseForgetsHandle verifies Close releases the table entry.
func TestMemory_CloseForgetsHandle(t *testing.T) {
	h := NewMemory()
	if err := h.WriteBytes([]byte("f"), []byte("x")); err != nil {
		t.Fatalf("WriteBytes(f): %v", err)
	}
	hd, err := h.OpenRead([]byte("f"))
	if err != nil {
		t.Fatalf("OpenRead(f): %v", err)
	}
	if err := h.Close(hd); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if n := len(h.streams); n != 0 {
		t.Errorf("open streams = %d, want 0", n)
	}
}

// TestLocal runs the hosttest conformance suite against a local host.
// Each group gets its own temporary root.
func TestLocal(t *testing.T) {
	hosttest.TestSuite(t, func() host.Host {
		return NewLocal(WithRoot(t.TempDir()))
	})
}

// TestMemory runs the hosttest conformance suite against a memory host.
func TestMemory(t *testing.T) {
	hosttest.TestSuite(t, func() host.Host {
		return NewMemory()
	})
}
