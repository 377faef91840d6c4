package websocket

import (
	"encoding/json"

	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

// Client to server message types
const (
	TypeRequestRoster   = "requestRoster"
	TypeRequestHistory  = "requestHistory"
	TypeSubmitEdit      = "submitEdit"
	TypeRequestRollCall = "requestRollCall"
	TypePing            = "ping"
)

// Server to client message types
const (
	TypeRosterSnapshot  = "rosterSnapshot"
	TypeHistorySnapshot = "historySnapshot"
	TypePostUpdated     = "postUpdated"
	TypeOperationFailed = "operationFailed"
	TypePong            = "pong"
)

// Request is a message sent from client to server. Only the fields
// relevant to Type are set.
type Request struct {
	Type    string        `json:"type"`
	AlertID types.AlertID `json:"alert_id,omitempty"`

	// submitEdit
	PostID             types.PostID `json:"post_id,omitempty"`
	Status             *string      `json:"status,omitempty"`
	Comment            *string      `json:"comment,omitempty"`
	AcknowledgePrivacy bool         `json:"acknowledge_privacy,omitempty"`

	// requestRollCall
	Day    types.Day        `json:"day,omitempty"`
	Minute *types.ClockTime `json:"minute,omitempty"`
}

func (m *Request) FromBytes(data []byte) error {
	return json.Unmarshal(data, m)
}

func (m *Request) IsValidType() bool {
	switch m.Type {
	case TypeRequestRoster, TypeRequestHistory, TypeSubmitEdit, TypeRequestRollCall, TypePing:
		return true
	default:
		return false
	}
}

// Response is a message sent from server to client.
type Response struct {
	Type    string        `json:"type"`
	AlertID types.AlertID `json:"alert_id,omitempty"`
	Posts   post.Posts    `json:"posts,omitempty"`
	Alerts  alert.Alerts  `json:"alerts,omitempty"`
	Post    *post.Post    `json:"post,omitempty"`

	// Origin is the connection that caused a postUpdated event so that the
	// client can suppress its own notification.
	Origin string `json:"origin,omitempty"`

	Operation string              `json:"operation,omitempty"`
	Reason    types.FailureReason `json:"reason,omitempty"`
	Message   string              `json:"message,omitempty"`
}

func (r *Response) ToBytes() ([]byte, error) {
	return json.Marshal(r)
}

// NewRosterSnapshot builds a roster event. An empty list carries a notice
// instead of being reported as an error.
func NewRosterSnapshot(alertID types.AlertID, posts post.Posts) *Response {
	resp := &Response{
		Type:    TypeRosterSnapshot,
		AlertID: alertID,
		Posts:   posts,
	}
	if len(posts) == 0 {
		resp.Message = "no posts found"
	}
	return resp
}

func NewHistorySnapshot(alerts alert.Alerts) *Response {
	if alerts == nil {
		alerts = alert.Alerts{}
	}
	return &Response{
		Type:   TypeHistorySnapshot,
		Alerts: alerts,
	}
}

func NewPostUpdated(p *post.Post, origin string) *Response {
	return &Response{
		Type:   TypePostUpdated,
		Post:   p,
		Origin: origin,
	}
}

func NewOperationFailed(operation string, reason types.FailureReason, message string) *Response {
	return &Response{
		Type:      TypeOperationFailed,
		Operation: operation,
		Reason:    reason,
		Message:   message,
	}
}

func NewPong() *Response {
	return &Response{Type: TypePong}
}
