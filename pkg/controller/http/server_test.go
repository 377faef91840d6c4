package http_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	server "github.com/secmon-lab/rollcall/pkg/controller/http"
	"github.com/secmon-lab/rollcall/pkg/domain/mock"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/auth"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/model/timetable"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/repository"
	"github.com/secmon-lab/rollcall/pkg/usecase"
	"github.com/secmon-lab/rollcall/pkg/utils/test"
)

var testNow = time.Date(2026, 10, 19, 8, 10, 0, 0, time.UTC)

func newTimetable() *mock.TimetableClientMock {
	return &mock.TimetableClientMock{
		AuthenticateFunc: func(ctx context.Context) (*timetable.Session, error) {
			return &timetable.Session{ID: "session-1"}, nil
		},
		ListTeachersFunc: func(ctx context.Context, session *timetable.Session) (map[types.TeacherID]*timetable.Teacher, error) {
			return map[types.TeacherID]*timetable.Teacher{
				1: {ID: 1, Name: "BER", DisplayName: "Anja Berg"},
				2: {ID: 2, Name: "KOC", DisplayName: "Deniz Koch"},
			}, nil
		},
		ListClassesFunc: func(ctx context.Context, session *timetable.Session) (map[types.ClassID]*timetable.Class, error) {
			return map[types.ClassID]*timetable.Class{
				10: {ID: 10, Number: "10A", Name: "Klasse 10A"},
				11: {ID: 11, Number: "5C", Name: "Klasse 5C"},
			}, nil
		},
		ListRoomsFunc: func(ctx context.Context, session *timetable.Session) (map[types.RoomID]*timetable.Room, error) {
			return map[types.RoomID]*timetable.Room{
				100: {ID: 100, Number: "Raum 1", Name: "A101"},
			}, nil
		},
		ListLessonsFunc: func(ctx context.Context, session *timetable.Session, classID types.ClassID, day types.Day) ([]*timetable.Lesson, error) {
			teacher := types.TeacherID(1)
			if classID == 11 {
				teacher = 2
			}
			return []*timetable.Lesson{{ID: 1, Day: day, Start: 800, End: 845, Teachers: []types.TeacherID{teacher}, Rooms: []types.RoomID{100}}}, nil
		},
		LogoutFunc: func(ctx context.Context, session *timetable.Session) error {
			return nil
		},
	}
}

func newAuthenticator() *mock.AuthenticatorMock {
	return &mock.AuthenticatorMock{
		VerifyFunc: func(ctx context.Context, token string) (*auth.Identity, error) {
			if token != "valid" {
				return nil, goerr.New("invalid token", goerr.T(errs.TagUnauthorized))
			}
			return &auth.Identity{ID: "u-1", Name: "Frau Berg"}, nil
		},
	}
}

type testAPI struct {
	t   *testing.T
	ctx context.Context
	srv *server.Server
}

func setupAPI(t *testing.T) *testAPI {
	uc := usecase.New(
		usecase.WithRepository(repository.NewMemory()),
		usecase.WithTimetableClient(newTimetable()),
	)
	return &testAPI{
		t:   t,
		ctx: test.Context(t, testNow),
		srv: server.New(uc, server.WithAuthenticator(newAuthenticator())),
	}
}

func (x *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	x.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body)).WithContext(x.ctx)
	req.Header.Set("Authorization", "Bearer valid")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	x.srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v)).Required()
	return v
}

type errorBody struct {
	Reason  types.FailureReason `json:"reason"`
	Message string              `json:"message"`
}

func TestHealth(t *testing.T) {
	api := setupAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(api.ctx)
	rec := httptest.NewRecorder()
	api.srv.ServeHTTP(rec, req)

	gt.Equal(t, rec.Code, http.StatusOK)
	resp := decode[server.HealthResponse](t, rec)
	gt.Equal(t, resp.State, usecase.StateIdle)
	gt.Equal(t, resp.Viewers, 0)
}

func TestAPIRequiresToken(t *testing.T) {
	api := setupAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil).WithContext(api.ctx)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	api.srv.ServeHTTP(rec, req)

	gt.Equal(t, rec.Code, http.StatusUnauthorized)
	gt.Equal(t, decode[errorBody](t, rec).Reason, types.ReasonUnauthorized)
}

func TestRollCallAPI(t *testing.T) {
	api := setupAPI(t)

	// nothing is live yet
	rec := api.do(http.MethodGet, "/api/alerts/live/posts", "")
	gt.Equal(t, rec.Code, http.StatusOK)
	empty := decode[server.RosterResponse](t, rec)
	gt.Nil(t, empty.Alert)
	gt.A(t, empty.Posts).Length(0)

	rec = api.do(http.MethodPost, "/api/rollcall", "")
	gt.Equal(t, rec.Code, http.StatusCreated)
	created := decode[server.RosterResponse](t, rec)
	gt.A(t, created.Posts).Length(2).Required()
	gt.Equal(t, created.Alert.TriggeredBy, "u-1")

	rec = api.do(http.MethodGet, "/api/alerts", "")
	gt.Equal(t, rec.Code, http.StatusOK)
	alerts := decode[alert.Alerts](t, rec)
	gt.A(t, alerts).Length(1)

	rec = api.do(http.MethodGet, "/api/alerts/live/posts", "")
	gt.Equal(t, rec.Code, http.StatusOK)
	live := decode[server.RosterResponse](t, rec)
	gt.Equal(t, live.Alert.ID, created.Alert.ID)
	gt.A(t, live.Posts).Length(2)

	postID := created.Posts[0].ID.String()

	t.Run("update status", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/posts/"+postID, `{"status":"complete"}`)
		gt.Equal(t, rec.Code, http.StatusOK)
		p := decode[post.Post](t, rec)
		gt.Equal(t, p.Status, types.PostStatusComplete)

		rec = api.do(http.MethodGet, "/api/alerts/"+created.Alert.ID.String()+"/posts", "")
		gt.Equal(t, rec.Code, http.StatusOK)
		roster := decode[server.RosterResponse](t, rec)
		gt.Equal(t, roster.Alert.Stats.Complete, 1)
	})

	t.Run("privacy rejection", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/posts/"+postID, `{"comment":"Schüler Max Mustermann fehlt"}`)
		gt.Equal(t, rec.Code, http.StatusBadRequest)
		gt.Equal(t, decode[errorBody](t, rec).Reason, types.ReasonPrivacyName)
	})

	t.Run("privacy override", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/posts/"+postID, `{"comment":"Schüler Max Mustermann fehlt","acknowledge_privacy":true}`)
		gt.Equal(t, rec.Code, http.StatusOK)
	})

	t.Run("unknown post", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/posts/00000000-0000-0000-0000-000000000000", `{"status":"complete"}`)
		gt.Equal(t, rec.Code, http.StatusNotFound)
		gt.Equal(t, decode[errorBody](t, rec).Reason, types.ReasonNotFound)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/posts/"+postID, `{`)
		gt.Equal(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("download", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/alerts/"+created.Alert.ID.String()+"/posts/download", "")
		gt.Equal(t, rec.Code, http.StatusOK)
		gt.Equal(t, rec.Header().Get("Content-Type"), "application/jsonl")
		gt.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), "attachment;"))

		lines := 0
		scanner := bufio.NewScanner(bytes.NewReader(rec.Body.Bytes()))
		for scanner.Scan() {
			var p post.Post
			gt.NoError(t, json.Unmarshal(scanner.Bytes(), &p))
			gt.Equal(t, p.AlertID, created.Alert.ID)
			lines++
		}
		gt.Equal(t, lines, 2)
	})

	t.Run("download unknown alert", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/alerts/unknown/posts/download", "")
		gt.Equal(t, rec.Code, http.StatusNotFound)
	})

	t.Run("archived alert rejects edits", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/rollcall", `{"minute":815}`)
		gt.Equal(t, rec.Code, http.StatusCreated)

		rec = api.do(http.MethodPatch, "/api/posts/"+postID, `{"status":"incomplete"}`)
		gt.Equal(t, rec.Code, http.StatusConflict)
		gt.Equal(t, decode[errorBody](t, rec).Reason, types.ReasonAlertArchived)
	})
}

func TestRollCallAPINoClasses(t *testing.T) {
	api := setupAPI(t)

	rec := api.do(http.MethodPost, "/api/rollcall", `{"minute":1500}`)
	gt.Equal(t, rec.Code, http.StatusUnprocessableEntity)
	gt.Equal(t, decode[errorBody](t, rec).Reason, types.ReasonNoOngoingClasses)

	rec = api.do(http.MethodGet, "/api/alerts", "")
	gt.A(t, decode[alert.Alerts](t, rec)).Length(0)
}

func TestPreviewAPI(t *testing.T) {
	api := setupAPI(t)

	rec := api.do(http.MethodPost, "/api/rollcall/preview", `{"day":20261020,"minute":830}`)
	gt.Equal(t, rec.Code, http.StatusOK)
	resp := decode[server.PreviewResponse](t, rec)
	gt.A(t, resp.Entries).Length(2).Required()
	gt.Equal(t, resp.Entries[0].Day, types.Day(20261020))

	// preview stores nothing
	rec = api.do(http.MethodGet, "/api/alerts", "")
	gt.A(t, decode[alert.Alerts](t, rec)).Length(0)
}

func TestStatusOf(t *testing.T) {
	type testCase struct {
		err    error
		status int
	}

	runTest := func(tc testCase) func(t *testing.T) {
		return func(t *testing.T) {
			gt.Equal(t, server.StatusOf(tc.err), tc.status)
		}
	}

	t.Run("not found", runTest(testCase{
		err:    goerr.New("x", goerr.T(errs.TagNotFound)),
		status: http.StatusNotFound,
	}))
	t.Run("running", runTest(testCase{
		err:    goerr.New("x", goerr.T(errs.TagRollCallRunning)),
		status: http.StatusConflict,
	}))
	t.Run("comment too long", runTest(testCase{
		err:    goerr.New("x", goerr.T(errs.TagCommentTooLong)),
		status: http.StatusBadRequest,
	}))
	t.Run("timetable", runTest(testCase{
		err:    goerr.Wrap(goerr.New("x"), "y", goerr.T(errs.TagTimetableLesson)),
		status: http.StatusBadGateway,
	}))
	t.Run("persistence", runTest(testCase{
		err:    goerr.New("x", goerr.T(errs.TagPersistence)),
		status: http.StatusInternalServerError,
	}))
	t.Run("plain error", runTest(testCase{
		err:    errors.New("x"),
		status: http.StatusInternalServerError,
	}))
}
