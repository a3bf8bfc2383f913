package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/host"
)

func TestToJSON(t *testing.T) {
	err := MapRead("read", fspath.FromText("a.txt"), tagged(host.TagNotFound))
	resp := ToJSON(err)

	require.NotNil(t, resp)
	require.Equal(t, "NOT_FOUND", resp.Code)
	require.Equal(t, "read a.txt: not found", resp.Message)
	require.Equal(t, "PERMANENT", resp.Classification)
	require.Equal(t, "a.txt", resp.Context["path"])
	require.Equal(t, "read", resp.Context["taxonomy"])
	require.Equal(t, "not found", resp.Context["kind"])
}

func TestToJSON_StandardError(t *testing.T) {
	resp := ToJSON(stderrors.New("something went wrong"))

	require.Equal(t, "UNKNOWN", resp.Code)
	require.Equal(t, "something went wrong", resp.Message)
	require.Equal(t, "PERMANENT", resp.Classification)
	require.Nil(t, resp.Context)
}

func TestToJSON_NilError(t *testing.T) {
	require.Nil(t, ToJSON(nil))
}

func TestMarshalJSON(t *testing.T) {
	err := MapDir("rmdir", fspath.FromText("d"), tagged(host.TagDirectoryNotEmpty))

	data, mErr := json.Marshal(err)
	require.NoError(t, mErr)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.Equal(t, "DIRECTORY_NOT_EMPTY", resp.Code)
	require.Equal(t, "rmdir d: directory not empty", resp.Message)
	require.Equal(t, "other", resp.Context["kind"])
	require.Equal(t, "directory not empty", resp.Context["tag"])
}

func TestMarshalJSON_DecodeError(t *testing.T) {
	data, err := json.Marshal(NewDecodeError(fspath.FromText("b"), 2))
	require.NoError(t, err)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.Equal(t, "DECODE_FAILED", resp.Code)
	require.InDelta(t, 2, resp.Context["offset"], 0)
}

func TestMarshalJSON_NoHostChain(t *testing.T) {
	cause := &host.Error{Op: "open", Path: []byte("secret"), Tag: host.TagOther, Err: stderrors.New("inner detail")}
	data, err := json.Marshal(MapRead("read", fspath.FromText("f"), cause))
	require.NoError(t, err)
	require.NotContains(t, string(data), "secret")
}
