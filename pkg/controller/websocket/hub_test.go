package websocket_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	websocket_ctrl "github.com/secmon-lab/rollcall/pkg/controller/websocket"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/auth"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	websocket_model "github.com/secmon-lab/rollcall/pkg/domain/model/websocket"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/test"
)

func setupTestHub(t *testing.T) *websocket_ctrl.Hub {
	hub := websocket_ctrl.NewHub(test.Context(t, time.Time{}))
	go hub.Run()
	t.Cleanup(func() { _ = hub.Close() })
	return hub
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func newClient(hub *websocket_ctrl.Hub, id string) *websocket_ctrl.Client {
	// no connection is needed to exercise the hub
	return hub.NewClient(nil, &auth.Identity{ID: id})
}

func receive(t *testing.T, client *websocket_ctrl.Client) *websocket_model.Response {
	t.Helper()
	select {
	case data, ok := <-client.Outbox():
		gt.True(t, ok).Required()
		var resp websocket_model.Response
		gt.NoError(t, json.Unmarshal(data, &resp)).Required()
		return &resp
	case <-time.After(5 * time.Second):
		t.Fatal("no message received")
		return nil
	}
}

func TestHubRegistration(t *testing.T) {
	hub := setupTestHub(t)

	c1 := newClient(hub, "u-1")
	c2 := newClient(hub, "u-2")
	gt.NotEqual(t, c1.ClientID(), c2.ClientID())

	hub.Register(c1)
	hub.Register(c2)
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	outbox := c1.Outbox()
	hub.Unregister(c1)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	// the send buffer of an unregistered client is closed
	_, ok := <-outbox
	gt.False(t, ok)
}

func TestHubPublishOrder(t *testing.T) {
	hub := setupTestHub(t)
	ctx := test.Context(t, time.Time{})

	clients := []*websocket_ctrl.Client{newClient(hub, "u-1"), newClient(hub, "u-2")}
	for _, c := range clients {
		hub.Register(c)
	}
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	alertID := types.NewAlertID()
	p := &post.Post{ID: types.NewPostID(), AlertID: alertID, Class: post.Class{Number: "10A"}, Status: types.PostStatusComplete}

	hub.PublishRoster(ctx, alertID, post.Posts{p})
	hub.PublishHistory(ctx, alert.Alerts{{ID: alertID}})
	hub.PublishPost(ctx, p, "u-1")

	for _, c := range clients {
		roster := receive(t, c)
		gt.Equal(t, roster.Type, websocket_model.TypeRosterSnapshot)
		gt.Equal(t, roster.AlertID, alertID)
		gt.A(t, roster.Posts).Length(1)

		history := receive(t, c)
		gt.Equal(t, history.Type, websocket_model.TypeHistorySnapshot)
		gt.A(t, history.Alerts).Length(1)

		updated := receive(t, c)
		gt.Equal(t, updated.Type, websocket_model.TypePostUpdated)
		gt.Equal(t, updated.Post.ID, p.ID)
		gt.Equal(t, updated.Origin, "u-1")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := setupTestHub(t)

	slow := newClient(hub, "slow")
	hub.Register(slow)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	for range 300 {
		hub.Broadcast([]byte(`{"type":"pong"}`))
	}
	waitFor(t, func() bool { return hub.ClientCount() == 0 })
}

func TestHubBroadcastWithoutClients(t *testing.T) {
	hub := setupTestHub(t)
	hub.Broadcast([]byte(`{"type":"pong"}`))
	gt.Equal(t, hub.ClientCount(), 0)
}

func TestHubClosed(t *testing.T) {
	hub := websocket_ctrl.NewHub(test.Context(t, time.Time{}))
	go hub.Run()
	gt.NoError(t, hub.Close())

	// publishing after shutdown returns instead of blocking
	for range 3 {
		hub.Broadcast([]byte(`{"type":"pong"}`))
	}
	gt.Equal(t, hub.ClientCount(), 0)
}
