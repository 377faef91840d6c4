package audit

import (
	"time"

	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

type Field string

const (
	FieldStatus  Field = "status"
	FieldComment Field = "comment"
)

// Entry records one changed field of a post edit.
type Entry struct {
	ID              types.AuditID `json:"id" firestore:"id"`
	EditorID        string        `json:"editor_id" firestore:"editor_id"`
	EditorName      string        `json:"editor_name" firestore:"editor_name"`
	PostID          types.PostID  `json:"post_id" firestore:"post_id"`
	AlertID         types.AlertID `json:"alert_id" firestore:"alert_id"`
	Class           string        `json:"class" firestore:"class"`
	Field           Field         `json:"field" firestore:"field"`
	OldValue        string        `json:"old_value" firestore:"old_value"`
	NewValue        string        `json:"new_value" firestore:"new_value"`
	PrivacyOverride bool          `json:"privacy_override" firestore:"privacy_override"`
	CreatedAt       time.Time     `json:"created_at" firestore:"created_at"`
}
