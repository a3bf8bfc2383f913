package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/host"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindOther, KindOf(nil))
	assert.Equal(t, KindOther, KindOf(stderrors.New("plain")))

	err := MapDir("mkdir", fspath.FromText("d"), tagged(host.TagNotADirectory))
	assert.Equal(t, KindNotADirectory, KindOf(err))

	wrapped := fmt.Errorf("setup: %w", err)
	assert.Equal(t, KindNotADirectory, KindOf(wrapped))
}

func TestTagOf(t *testing.T) {
	assert.Equal(t, host.Tag(""), TagOf(nil))
	err := MapWrite("write", fspath.FromText("f"), tagged(host.TagReadOnly))
	assert.Equal(t, host.TagReadOnly, TagOf(err))
}

func TestPathOf(t *testing.T) {
	_, ok := PathOf(stderrors.New("plain"))
	assert.False(t, ok)

	_, ok = PathOf(MapStream("close", 3, tagged(host.TagBadHandle)))
	assert.False(t, ok)

	p, ok := PathOf(MapRead("read", fspath.FromText("r"), tagged(host.TagNotFound)))
	require.True(t, ok)
	assert.Equal(t, "r", p.String())
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeUnknown, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, CodeStorageFull, GetCode(MapWrite("write", fspath.FromText("f"), tagged(host.TagStorageFull))))
}

func TestIsRetryable(t *testing.T) {
	p := fspath.FromText("f")

	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(stderrors.New("plain")))
	assert.False(t, IsRetryable(MapRead("read", p, tagged(host.TagNotFound))))
	assert.True(t, IsRetryable(MapRead("read", p, tagged(host.TagInterrupted))))
	assert.True(t, IsRetryable(MapRead("read", p, tagged(host.TagTimedOut))))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "not found", KindNotFound.String())
	assert.Equal(t, "permission denied", KindPermissionDenied.String())
	assert.Equal(t, "already exists", KindAlreadyExists.String())
	assert.Equal(t, "not a directory", KindNotADirectory.String())
	assert.Equal(t, "other", KindOther.String())
}
