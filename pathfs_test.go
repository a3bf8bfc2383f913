package pathfs_test

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pathfs"
	platformerrors "github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/host"
)

func newFS(t *testing.T) (*pathfs.FS, *host.Fake) {
	t.Helper()
	fake := host.NewFake()
	return pathfs.New(fake), fake
}

func TestWriteReadBytes_RoundTrip(t *testing.T) {
	fsys, _ := newFS(t)
	p := fspath.FromText("data.bin")
	data := []byte{'a', 0, 'b', 0, 0, 0xff, '\n'}

	require.NoError(t, fsys.WriteBytes(p, data))

	got, err := fsys.ReadBytes(p)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestWriteBytes_Errors(t *testing.T) {
	fsys, fake := newFS(t)
	fake.AddDir("dir")

	err := fsys.WriteBytes(fspath.FromText("missing/f"), []byte("x"))
	var writeErr *platformerrors.WriteError
	require.True(t, stderrors.As(err, &writeErr))
	assert.Equal(t, platformerrors.KindNotFound, writeErr.Kind())
	assert.Equal(t, "missing/f", writeErr.Path().String())

	err = fsys.WriteBytes(fspath.FromText("dir"), []byte("x"))
	require.True(t, stderrors.As(err, &writeErr))
	assert.Equal(t, platformerrors.KindOther, writeErr.Kind())
	assert.Equal(t, platformerrors.CodeIsADirectory, writeErr.Code())
}

func TestWriteText(t *testing.T) {
	fsys, fake := newFS(t)
	p := fspath.FromText("hello.txt")

	require.NoError(t, fsys.WriteText(p, "héllo\n"))

	data, err := fake.ReadAll([]byte("hello.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("héllo\n"), data)
}

func TestReadText(t *testing.T) {
	fsys, fake := newFS(t)
	fake.AddFile("ok.txt", []byte("plain text"))
	fake.AddFile("bad.txt", []byte("ab\xffcd"))

	text, err := fsys.ReadText(fspath.FromText("ok.txt"))
	require.NoError(t, err)
	assert.Equal(t, "plain text", text)

	_, err = fsys.ReadText(fspath.FromText("bad.txt"))
	var decodeErr *platformerrors.DecodeError
	require.True(t, stderrors.As(err, &decodeErr))
	assert.Equal(t, 2, decodeErr.Offset)
	var readErr *platformerrors.ReadError
	assert.False(t, stderrors.As(err, &readErr))

	_, err = fsys.ReadText(fspath.FromText("absent.txt"))
	require.True(t, stderrors.As(err, &readErr))
	assert.Equal(t, platformerrors.KindNotFound, readErr.Kind())
	assert.False(t, stderrors.As(err, &decodeErr))
}

func TestReadBytes_PermissionDenied(t *testing.T) {
	fsys, fake := newFS(t)
	fake.AddFile("secret", []byte("x"))
	fake.Errors["secret"] = &host.Error{Op: "open", Path: []byte("secret"), Tag: host.TagPermissionDenied}

	_, err := fsys.ReadBytes(fspath.FromText("secret"))
	assert.Equal(t, platformerrors.KindPermissionDenied, platformerrors.KindOf(err))
	assert.True(t, stderrors.Is(err, fs.ErrPermission))
}

func TestNULPath_NeverReachesHost(t *testing.T) {
	fsys, fake := newFS(t)
	p := fspath.FromBytes([]byte("a\x00b"))

	err := fsys.WriteBytes(p, []byte("x"))
	require.Error(t, err)
	assert.Equal(t, platformerrors.KindOther, platformerrors.KindOf(err))
	assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))

	_, err = fsys.ReadBytes(p)
	assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
	_, err = fsys.Open(p)
	assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
	_, err = fsys.QueryType(p)
	assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
	assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(fsys.CreateAll(p)))

	assert.Empty(t, fake.Calls)
}

func TestDelete(t *testing.T) {
	fsys, fake := newFS(t)
	fake.AddFile("f", []byte("x"))
	fake.AddDir("d")

	require.NoError(t, fsys.Delete(fspath.FromText("f")))
	ok, err := fsys.IsFile(fspath.FromText("f"))
	assert.False(t, ok)
	assert.Equal(t, platformerrors.KindNotFound, platformerrors.KindOf(err))

	err = fsys.Delete(fspath.FromText("f"))
	var writeErr *platformerrors.WriteError
	require.True(t, stderrors.As(err, &writeErr))
	assert.Equal(t, platformerrors.KindNotFound, writeErr.Kind())

	err = fsys.Delete(fspath.FromText("d"))
	require.True(t, stderrors.As(err, &writeErr))
	assert.Equal(t, platformerrors.KindOther, writeErr.Kind())
}

func TestDelete_ReadOnly(t *testing.T) {
	fsys, fake := newFS(t)
	fake.AddFile("ro", nil)
	fake.Errors["ro"] = stderrors.New("read-only filesystem")

	err := fsys.Delete(fspath.FromText("ro"))
	var writeErr *platformerrors.WriteError
	require.True(t, stderrors.As(err, &writeErr))
	assert.Equal(t, platformerrors.KindPermissionDenied, writeErr.Kind())
	assert.Equal(t, platformerrors.CodeReadOnly, writeErr.Code())
}

func TestQueryType(t *testing.T) {
	fsys, fake := newFS(t)
	fake.AddFile("dir/file", nil)
	require.NoError(t, fake.Symlink([]byte("dir"), []byte("link")))

	tests := []struct {
		path string
		want pathfs.EntryType
	}{
		{"dir", pathfs.TypeDirectory},
		{"dir/file", pathfs.TypeFile},
		{"link", pathfs.TypeSymLink},
	}
	for _, tt := range tests {
		got, err := fsys.QueryType(fspath.FromText(tt.path))
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestIsPredicates(t *testing.T) {
	fsys, fake := newFS(t)
	fake.AddDir("dir")
	require.NoError(t, fake.Symlink([]byte("dir"), []byte("link")))

	link := fspath.FromText("link")
	isLink, err := fsys.IsSymLink(link)
	require.NoError(t, err)
	assert.True(t, isLink)

	isDir, err := fsys.IsDir(link)
	require.NoError(t, err)
	assert.False(t, isDir)

	isFile, err := fsys.IsFile(fspath.FromText("dir"))
	require.NoError(t, err)
	assert.False(t, isFile)

	_, err = fsys.IsDir(fspath.FromText("nope"))
	var metaErr *platformerrors.MetadataError
	require.True(t, stderrors.As(err, &metaErr))
	assert.Equal(t, platformerrors.KindNotFound, metaErr.Kind())
}

func TestStat(t *testing.T) {
	fsys, fake := newFS(t)
	fake.AddFile("f", []byte("12345"))

	md, err := fsys.Stat(fspath.FromText("f"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), md.Size)
	assert.True(t, md.Mode.IsRegular())
	assert.False(t, md.ModTime.IsZero())
}

func TestEntryType_String(t *testing.T) {
	assert.Equal(t, "file", pathfs.TypeFile.String())
	assert.Equal(t, "directory", pathfs.TypeDirectory.String())
	assert.Equal(t, "symlink", pathfs.TypeSymLink.String())
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	fsys := pathfs.New(host.NewFake(), pathfs.WithLogger(logger))

	_, err := fsys.ReadBytes(fspath.FromText("gone.txt"))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "filesystem operation failed")
	assert.Contains(t, out, "op=read")
	assert.Contains(t, out, "path=gone.txt")
	assert.Contains(t, out, `kind="not found"`)
	assert.Contains(t, out, "code=NOT_FOUND")
}

func TestNew_NilLogger(t *testing.T) {
	fake := host.NewFake()
	fsys := pathfs.New(fake, pathfs.WithLogger(nil))

	_, err := fsys.ReadBytes(fspath.FromText("gone"))
	require.Error(t, err)
	assert.Same(t, fake, fsys.Host())
}
