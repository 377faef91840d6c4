package interfaces

import (
	"context"
	"io"

	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/audit"
	"github.com/secmon-lab/rollcall/pkg/domain/model/auth"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/model/timetable"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/slack-go/slack"
)

// TimetableClient queries the external scheduling system.
type TimetableClient interface {
	Authenticate(ctx context.Context) (*timetable.Session, error)
	ListTeachers(ctx context.Context, session *timetable.Session) (map[types.TeacherID]*timetable.Teacher, error)
	ListClasses(ctx context.Context, session *timetable.Session) (map[types.ClassID]*timetable.Class, error)
	ListRooms(ctx context.Context, session *timetable.Session) (map[types.RoomID]*timetable.Room, error)
	ListLessons(ctx context.Context, session *timetable.Session, classID types.ClassID, day types.Day) ([]*timetable.Lesson, error)
	Logout(ctx context.Context, session *timetable.Session) error
}

// AuditRecorder receives post edit notifications. Callers never wait for
// nor fail on its result.
type AuditRecorder interface {
	Record(ctx context.Context, entry *audit.Entry) error
}

// Broadcaster fans out events to every connected viewer.
type Broadcaster interface {
	PublishRoster(ctx context.Context, alertID types.AlertID, posts post.Posts)
	PublishHistory(ctx context.Context, alerts alert.Alerts)
	PublishPost(ctx context.Context, post *post.Post, origin string)
}

// Authenticator verifies an opaque identity token.
type Authenticator interface {
	Verify(ctx context.Context, token string) (*auth.Identity, error)
}

type StorageClient interface {
	PutObject(ctx context.Context, object string) io.WriteCloser
	GetObject(ctx context.Context, object string) (io.ReadCloser, error)
	Close(ctx context.Context)
}

type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
