package websocket_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/rollcall/pkg/domain/model/websocket"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

func TestRequestFromBytes(t *testing.T) {
	var req websocket.Request
	gt.NoError(t, req.FromBytes([]byte(`{"type":"submitEdit","post_id":"p1","comment":"alle da"}`)))
	gt.True(t, req.IsValidType())
	gt.Equal(t, req.PostID, types.PostID("p1"))
	gt.Nil(t, req.Status)
	gt.NotNil(t, req.Comment)
	gt.Equal(t, *req.Comment, "alle da")

	gt.NoError(t, req.FromBytes([]byte(`{"type":"shout"}`)))
	gt.False(t, req.IsValidType())
}

func TestEmptyRosterSnapshot(t *testing.T) {
	resp := websocket.NewRosterSnapshot(types.NewAlertID(), nil)
	data, err := resp.ToBytes()
	gt.NoError(t, err).Required()

	var decoded map[string]any
	gt.NoError(t, json.Unmarshal(data, &decoded)).Required()
	gt.Equal(t, decoded["type"], any(websocket.TypeRosterSnapshot))
	gt.Equal(t, decoded["message"], any("no posts found"))
}

func TestOperationFailed(t *testing.T) {
	resp := websocket.NewOperationFailed(websocket.TypeRequestRollCall, types.ReasonRollCallRunning, "a roll-call is already running")
	data, err := resp.ToBytes()
	gt.NoError(t, err).Required()
	gt.S(t, string(data)).Contains(`"reason":"rollcall_running"`)
}
