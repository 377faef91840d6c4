package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/audit"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
	"github.com/slack-go/slack"
)

// RepositoryRecorder stores audit entries in the repository.
type RepositoryRecorder struct {
	repo interfaces.Repository
}

func NewRepositoryRecorder(repo interfaces.Repository) *RepositoryRecorder {
	return &RepositoryRecorder{repo: repo}
}

func (x *RepositoryRecorder) Record(ctx context.Context, entry *audit.Entry) error {
	if err := x.repo.PutAudit(ctx, entry); err != nil {
		return goerr.Wrap(err, "failed to put audit entry", goerr.TV(errutil.PostIDKey, entry.PostID))
	}
	return nil
}

// SlackRecorder posts a short edit notice to a Slack channel.
type SlackRecorder struct {
	client    interfaces.SlackClient
	channelID string
}

func NewSlackRecorder(client interfaces.SlackClient, channelID string) (*SlackRecorder, error) {
	if client == nil {
		return nil, goerr.New("slack client is required")
	}
	channelID = strings.TrimPrefix(channelID, "#")
	if channelID == "" {
		return nil, goerr.New("slack channel is required")
	}
	return &SlackRecorder{client: client, channelID: channelID}, nil
}

func (x *SlackRecorder) Record(ctx context.Context, entry *audit.Entry) error {
	text := formatEntry(entry)
	if _, _, err := x.client.PostMessageContext(ctx, x.channelID, slack.MsgOptionText(text, false)); err != nil {
		return goerr.Wrap(err, "failed to post audit message",
			goerr.TV(errutil.ChannelIDKey, x.channelID),
			goerr.TV(errutil.PostIDKey, entry.PostID),
			goerr.T(errs.TagExternal))
	}
	return nil
}

func formatEntry(entry *audit.Entry) string {
	editor := entry.EditorName
	if editor == "" {
		editor = entry.EditorID
	}

	oldValue, newValue := entry.OldValue, entry.NewValue
	if entry.Field == audit.FieldComment {
		// comments may hold sensitive text, only the length is posted
		oldValue = fmt.Sprintf("%d chars", len([]rune(oldValue)))
		newValue = fmt.Sprintf("%d chars", len([]rune(newValue)))
	}

	text := fmt.Sprintf("*%s* changed %s of class *%s*: `%s` → `%s`", editor, entry.Field, entry.Class, oldValue, newValue)
	if entry.PrivacyOverride {
		text += " (privacy warning acknowledged)"
	}
	return text
}

// MultiRecorder forwards an entry to every recorder and reports the first
// failure after all of them ran.
type MultiRecorder struct {
	recorders []interfaces.AuditRecorder
}

func NewMultiRecorder(recorders ...interfaces.AuditRecorder) *MultiRecorder {
	return &MultiRecorder{recorders: recorders}
}

func (x *MultiRecorder) Record(ctx context.Context, entry *audit.Entry) error {
	var failed []error
	for _, r := range x.recorders {
		if err := r.Record(ctx, entry); err != nil {
			failed = append(failed, err)
		}
	}

	if len(failed) > 0 {
		return goerr.Wrap(failed[0], "failed to record audit entry via one or more recorders", goerr.V("total_errors", len(failed)))
	}
	return nil
}

// LogRecorder writes the entry to the context logger only.
type LogRecorder struct{}

func (LogRecorder) Record(ctx context.Context, entry *audit.Entry) error {
	logging.From(ctx).Info("post edited",
		"post_id", entry.PostID,
		"alert_id", entry.AlertID,
		"class", entry.Class,
		"field", entry.Field,
		"editor_id", entry.EditorID,
		"privacy_override", entry.PrivacyOverride,
	)
	return nil
}

var (
	_ interfaces.AuditRecorder = (*RepositoryRecorder)(nil)
	_ interfaces.AuditRecorder = (*SlackRecorder)(nil)
	_ interfaces.AuditRecorder = (*MultiRecorder)(nil)
	_ interfaces.AuditRecorder = LogRecorder{}
)
