package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmgilman/go/pathfs/host"
	"github.com/jmgilman/go/pathfs/host/billy"
	"github.com/jmgilman/go/pathfs/internal/config"
)

// cli runs commands against one shared in-memory host.
type cli struct {
	t *testing.T
	h host.Host
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("PATHFS_BACKEND", "")
	return &cli{t: t, h: billy.NewMemory()}
}

func (c *cli) run(args ...string) (code int, stdout, stderr string) {
	c.t.Helper()
	var out, errOut bytes.Buffer
	args = append([]string{"--config", filepath.Join(c.t.TempDir(), "none.yaml")}, args...)
	code = runWith(args, &out, &errOut, func(*config.Config) (host.Host, error) {
		return c.h, nil
	})
	return code, out.String(), errOut.String()
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	code, stdout, stderr := c.run(args...)
	if code != 0 {
		c.t.Fatalf("pathfs %s = %d; stderr: %s", strings.Join(args, " "), code, stderr)
	}
	return stdout
}

func TestWriteCat(t *testing.T) {
	c := newCLI(t)
	c.mustRun("write", "notes.txt", "hello\nworld\n")

	if got := c.mustRun("cat", "notes.txt"); got != "hello\nworld\n" {
		t.Errorf("cat = %q, want %q", got, "hello\nworld\n")
	}
	if got := c.mustRun("cat", "--text", "notes.txt"); got != "hello\nworld\n" {
		t.Errorf("cat --text = %q", got)
	}
}

func TestLines(t *testing.T) {
	c := newCLI(t)
	c.mustRun("write", "list.txt", "one\r\ntwo\n\nfour")

	if got, want := c.mustRun("lines", "list.txt"), "one\ntwo\n\nfour\n"; got != want {
		t.Errorf("lines = %q, want %q", got, want)
	}
	got := c.mustRun("lines", "-n", "list.txt")
	if !strings.Contains(got, "     4\tfour\n") {
		t.Errorf("lines -n = %q, want numbered fourth line", got)
	}
}

func TestCatMissing(t *testing.T) {
	c := newCLI(t)
	code, _, stderr := c.run("cat", "missing.txt")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr, "pathfs: read missing.txt") {
		t.Errorf("stderr = %q, want pathfs: read missing.txt prefix", stderr)
	}
}

func TestJSONErrors(t *testing.T) {
	c := newCLI(t)
	code, _, stderr := c.run("--json", "cat", "missing.txt")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	var body struct {
		Code           string         `json:"code"`
		Classification string         `json:"classification"`
		Context        map[string]any `json:"context"`
	}
	if err := json.Unmarshal([]byte(stderr), &body); err != nil {
		t.Fatalf("stderr is not JSON: %v\n%s", err, stderr)
	}
	if body.Code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", body.Code)
	}
	if body.Classification != "PERMANENT" {
		t.Errorf("classification = %q, want PERMANENT", body.Classification)
	}
	if body.Context["path"] != "missing.txt" {
		t.Errorf("context path = %v, want missing.txt", body.Context["path"])
	}
}

func TestDecodeFailure(t *testing.T) {
	c := newCLI(t)
	if err := c.h.WriteBytes([]byte("bin"), []byte{'o', 'k', 0xff}); err != nil {
		t.Fatal(err)
	}
	if got := c.mustRun("cat", "bin"); got != "ok\xff" {
		t.Errorf("cat = %q", got)
	}
	code, _, stderr := c.run("cat", "--text", "bin")
	if code != 1 || !strings.Contains(stderr, "invalid UTF-8 at offset 2") {
		t.Errorf("cat --text = %d, %q", code, stderr)
	}
}

func TestDirectories(t *testing.T) {
	c := newCLI(t)
	c.mustRun("mkdir", "-p", "proj/src")
	c.mustRun("write", "proj/readme.md", "# proj")

	got := c.mustRun("ls", "proj")
	if got != "readme.md\nsrc\n" && got != "src\nreadme.md\n" {
		t.Errorf("ls proj = %q", got)
	}

	long := c.mustRun("ls", "-l", "proj")
	if !strings.Contains(long, "readme.md") || !strings.Contains(long, " 6 ") {
		t.Errorf("ls -l proj = %q, want readme.md with size 6", long)
	}

	code, _, _ := c.run("mkdir", "proj")
	if code != 1 {
		t.Errorf("mkdir existing = %d, want 1", code)
	}

	code, _, stderr := c.run("--json", "rmdir", "proj")
	if code != 1 || !strings.Contains(stderr, "DIRECTORY_NOT_EMPTY") {
		t.Errorf("rmdir non-empty = %d, %q", code, stderr)
	}

	c.mustRun("rmdir", "-r", "proj")
	if code, _, _ := c.run("stat", "proj"); code != 1 {
		t.Errorf("stat after rmdir -r = %d, want 1", code)
	}
}

func TestRm(t *testing.T) {
	c := newCLI(t)
	c.mustRun("write", "a.txt", "a")
	c.mustRun("write", "b.txt", "b")
	c.mustRun("rm", "a.txt", "b.txt")

	if got := c.mustRun("ls", "."); got != "" {
		t.Errorf("ls after rm = %q, want empty", got)
	}
}

func TestStat(t *testing.T) {
	c := newCLI(t)
	c.mustRun("write", "five.txt", "12345")

	text := c.mustRun("stat", "five.txt")
	for _, want := range []string{"type: file\n", "size: 5\n", "path: five.txt\n"} {
		if !strings.Contains(text, want) {
			t.Errorf("stat = %q, missing %q", text, want)
		}
	}

	var out statOutput
	if err := json.Unmarshal([]byte(c.mustRun("--json", "stat", "five.txt")), &out); err != nil {
		t.Fatal(err)
	}
	if out.Type != "file" || out.Size != 5 {
		t.Errorf("stat --json = %+v", out)
	}

	c.mustRun("mkdir", "d")
	if err := json.Unmarshal([]byte(c.mustRun("--json", "stat", "d")), &out); err != nil {
		t.Fatal(err)
	}
	if out.Type != "directory" {
		t.Errorf("stat d type = %q, want directory", out.Type)
	}
}

func TestExt(t *testing.T) {
	c := newCLI(t)
	tests := []struct{ in, want string }{
		{"dir/baz", "dir/baz.txt\n"},
		{"dir/baz.", "dir/baz.txt\n"},
		{"dir/baz.xz", "dir/baz.txt\n"},
	}
	for _, tt := range tests {
		if got := c.mustRun("ext", tt.in, "txt"); got != tt.want {
			t.Errorf("ext %s txt = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUsageErrors(t *testing.T) {
	c := newCLI(t)
	if code, _, stderr := c.run("cat"); code != 1 || !strings.HasPrefix(stderr, "pathfs: ") {
		t.Errorf("cat without args = %d, %q", code, stderr)
	}
	if code, _, stderr := c.run("--backend", "ftp", "ls"); code != 1 || !strings.Contains(stderr, `unknown backend "ftp"`) {
		t.Errorf("--backend ftp = %d, %q", code, stderr)
	}
}

func TestDebugLogging(t *testing.T) {
	c := newCLI(t)
	_, _, stderr := c.run("--debug", "cat", "missing.txt")
	if !strings.Contains(stderr, "filesystem operation failed") {
		t.Errorf("stderr = %q, want debug log line", stderr)
	}

	_, _, stderr = c.run("cat", "missing.txt")
	if strings.Contains(stderr, "filesystem operation failed") {
		t.Errorf("stderr = %q, want no debug log without --debug", stderr)
	}
}

// TestRunLocalBackend exercises the production opener against a temp dir.
func TestRunLocalBackend(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PATHFS_BACKEND", "local")
	t.Setenv("PATHFS_ROOT", dir)

	var stdout, stderr bytes.Buffer
	cfgPath := filepath.Join(t.TempDir(), "none.yaml")
	if code := run([]string{"--config", cfgPath, "write", "on-disk.txt", "persisted"}, &stdout, &stderr); code != 0 {
		t.Fatalf("write = %d; stderr: %s", code, stderr.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "on-disk.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "persisted" {
		t.Errorf("file = %q, want persisted", data)
	}
}
