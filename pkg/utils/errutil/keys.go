package errutil

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

var (
	// IDs
	AlertIDKey   = goerr.NewTypedKey[types.AlertID]("alert_id")
	PostIDKey    = goerr.NewTypedKey[types.PostID]("post_id")
	ClassIDKey   = goerr.NewTypedKey[types.ClassID]("class_id")
	TeacherIDKey = goerr.NewTypedKey[types.TeacherID]("teacher_id")
	RoomIDKey    = goerr.NewTypedKey[types.RoomID]("room_id")
	UserIDKey    = goerr.NewTypedKey[string]("user_id")

	// Values
	DayKey        = goerr.NewTypedKey[types.Day]("day")
	MinuteKey     = goerr.NewTypedKey[types.ClockTime]("minute")
	StatusKey     = goerr.NewTypedKey[string]("status")
	CommentKey    = goerr.NewTypedKey[string]("comment")
	CollectionKey = goerr.NewTypedKey[string]("collection")
	RepositoryKey = goerr.NewTypedKey[string]("repository")
	CountKey      = goerr.NewTypedKey[int]("count")

	// External services
	MethodKey     = goerr.NewTypedKey[string]("method")
	HTTPStatusKey = goerr.NewTypedKey[int]("http_status")
	URLKey        = goerr.NewTypedKey[string]("url")
	ChannelIDKey  = goerr.NewTypedKey[string]("channel_id")
)
