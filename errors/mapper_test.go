package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/host"
)

func tagged(tag host.Tag) error {
	return &host.Error{Op: "op", Path: []byte("a.txt"), Tag: tag}
}

func TestTagTable_CoversVocabulary(t *testing.T) {
	for _, tag := range host.Tags() {
		_, ok := tagTable[tag]
		assert.True(t, ok, "tag %q has no mapping", tag)
	}
	assert.Len(t, tagTable, len(host.Tags()))
}

func TestMapRead(t *testing.T) {
	p := fspath.FromText("a.txt")

	tests := []struct {
		tag  host.Tag
		kind Kind
		code ErrorCode
	}{
		{host.TagNotFound, KindNotFound, CodeNotFound},
		{host.TagPermissionDenied, KindPermissionDenied, CodePermissionDenied},
		{host.TagReadOnly, KindPermissionDenied, CodeReadOnly},
		{host.TagAlreadyExists, KindOther, CodeAlreadyExists},
		{host.TagNotADirectory, KindOther, CodeNotADirectory},
		{host.TagIsADirectory, KindOther, CodeIsADirectory},
		{host.TagInterrupted, KindOther, CodeInterrupted},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			err := MapRead("read", p, tagged(tt.tag))

			var readErr *ReadError
			require.True(t, stderrors.As(err, &readErr))
			assert.Equal(t, tt.kind, readErr.Kind())
			assert.Equal(t, tt.code, readErr.Code())
			assert.Equal(t, tt.tag, readErr.Tag())
			assert.Equal(t, "read", readErr.Op())
			assert.True(t, readErr.Path().Equal(p))
		})
	}
}

func TestMapWrite_Clamps(t *testing.T) {
	p := fspath.FromText("out")

	err := MapWrite("write", p, tagged(host.TagAlreadyExists))
	assert.Equal(t, KindAlreadyExists, KindOf(err))

	err = MapWrite("write", p, tagged(host.TagNotADirectory))
	assert.Equal(t, KindOther, KindOf(err))
	assert.Equal(t, CodeNotADirectory, GetCode(err))
}

func TestMapDir_AdmitsAllKinds(t *testing.T) {
	p := fspath.FromText("d")

	tests := map[host.Tag]Kind{
		host.TagNotFound:          KindNotFound,
		host.TagPermissionDenied:  KindPermissionDenied,
		host.TagAlreadyExists:     KindAlreadyExists,
		host.TagNotADirectory:     KindNotADirectory,
		host.TagDirectoryNotEmpty: KindOther,
	}
	for tag, want := range tests {
		err := MapDir("rmdir", p, tagged(tag))
		var dirErr *DirError
		require.True(t, stderrors.As(err, &dirErr), "tag %q", tag)
		assert.Equal(t, want, dirErr.Kind(), "tag %q", tag)
	}

	err := MapDir("rmdir", p, tagged(host.TagDirectoryNotEmpty))
	assert.Equal(t, CodeDirectoryNotEmpty, GetCode(err))
}

func TestMapMetadata_Clamps(t *testing.T) {
	p := fspath.FromText("m")

	err := MapMetadata("stat", p, tagged(host.TagNotADirectory))
	var metaErr *MetadataError
	require.True(t, stderrors.As(err, &metaErr))
	assert.Equal(t, KindOther, metaErr.Kind())

	err = MapMetadata("stat", p, tagged(host.TagPermissionDenied))
	assert.Equal(t, KindPermissionDenied, KindOf(err))
}

func TestMap_Nil(t *testing.T) {
	p := fspath.FromText("x")
	assert.NoError(t, MapRead("read", p, nil))
	assert.NoError(t, MapWrite("write", p, nil))
	assert.NoError(t, MapDir("mkdir", p, nil))
	assert.NoError(t, MapMetadata("stat", p, nil))
	assert.NoError(t, MapStream("readline", 1, nil))
}

func TestMap_UnknownTagPreservesMessage(t *testing.T) {
	err := MapRead("read", fspath.FromText("a.txt"), stderrors.New("disk on fire"))

	assert.Equal(t, KindOther, KindOf(err))
	assert.Equal(t, CodeUnknown, GetCode(err))
	assert.Equal(t, host.Tag("disk on fire"), TagOf(err))
	assert.Equal(t, "[UNKNOWN] read a.txt: disk on fire", err.Error())
}

func TestMap_PlainTagText(t *testing.T) {
	err := MapDir("mkdir", fspath.FromText("d"), stderrors.New("already exists"))
	assert.Equal(t, KindAlreadyExists, KindOf(err))
}

func TestMap_Message(t *testing.T) {
	err := MapRead("read", fspath.FromText("a.txt"), tagged(host.TagNotFound))
	assert.Equal(t, "[NOT_FOUND] read a.txt: not found", err.Error())

	cause := &host.Error{Op: "open", Path: []byte("a.txt"), Tag: host.TagPermissionDenied, Err: fs.ErrPermission}
	err = MapRead("read", fspath.FromText("a.txt"), cause)
	assert.Equal(t, "[PERMISSION_DENIED] read a.txt: permission denied", err.Error())
}

func TestMap_Unwrap(t *testing.T) {
	cause := tagged(host.TagNotFound)
	err := MapRead("read", fspath.FromText("a.txt"), cause)

	var he *host.Error
	require.True(t, stderrors.As(err, &he))
	assert.Same(t, cause, error(he))
}

func TestMap_IsSentinel(t *testing.T) {
	p := fspath.FromText("p")

	assert.True(t, stderrors.Is(MapRead("read", p, tagged(host.TagNotFound)), fs.ErrNotExist))
	assert.True(t, stderrors.Is(MapWrite("write", p, tagged(host.TagPermissionDenied)), fs.ErrPermission))
	assert.True(t, stderrors.Is(MapDir("mkdir", p, tagged(host.TagAlreadyExists)), fs.ErrExist))
	assert.False(t, stderrors.Is(MapRead("read", p, tagged(host.TagAlreadyExists)), fs.ErrExist))
}

func TestMapStream(t *testing.T) {
	cause := &host.Error{Op: "readline", Tag: host.TagBadHandle, Err: host.ErrBadHandle}
	err := MapStream("readline", 7, cause)

	var readErr *ReadError
	require.True(t, stderrors.As(err, &readErr))
	assert.Equal(t, KindOther, readErr.Kind())
	assert.Equal(t, CodeBadHandle, readErr.Code())
	assert.Equal(t, "readline #7: bad handle", readErr.Message())
	assert.Equal(t, uint64(7), readErr.Context()["handle"])
	assert.NotContains(t, readErr.Context(), "path")
}

func TestDecodeError(t *testing.T) {
	err := NewDecodeError(fspath.FromText("bin.dat"), 4)

	assert.Equal(t, CodeDecodeFailed, err.Code())
	assert.Equal(t, "[DECODE_FAILED] decode bin.dat: invalid UTF-8 at offset 4", err.Error())
	assert.False(t, IsRetryable(err))

	var readErr *ReadError
	assert.False(t, stderrors.As(error(err), &readErr))

	p, ok := PathOf(err)
	require.True(t, ok)
	assert.Equal(t, "bin.dat", p.String())
}
