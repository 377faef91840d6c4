package usecase_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/usecase"
)

func TestGetRoster(t *testing.T) {
	ctx := testContext(t)
	uc := usecase.New(usecase.WithTimetableClient(newTimetable()))

	t.Run("nothing live yet", func(t *testing.T) {
		a, posts, err := uc.GetRoster(ctx, types.EmptyAlertID)
		gt.NoError(t, err)
		gt.Nil(t, a)
		gt.A(t, posts).Length(0)
	})

	first, _, err := uc.TriggerRollCall(ctx, interfaces.RollCallRequest{})
	gt.NoError(t, err).Required()
	second, _, err := uc.TriggerRollCall(ctx, interfaces.RollCallRequest{})
	gt.NoError(t, err).Required()

	t.Run("live roster", func(t *testing.T) {
		a, posts, err := uc.GetRoster(ctx, types.EmptyAlertID)
		gt.NoError(t, err).Required()
		gt.Equal(t, a.ID, second.ID)
		gt.A(t, posts).Length(2)
		gt.Equal(t, posts[0].Class.Number, "10A")
		gt.Equal(t, posts[1].Class.Number, "5C")
	})

	t.Run("archived roster", func(t *testing.T) {
		a, posts, err := uc.GetRoster(ctx, first.ID)
		gt.NoError(t, err).Required()
		gt.True(t, a.Archived)
		gt.A(t, posts).Length(2)
	})

	t.Run("unknown alert", func(t *testing.T) {
		_, _, err := uc.GetRoster(ctx, types.NewAlertID())
		gt.Equal(t, errs.ReasonOf(err), types.ReasonNotFound)
	})

	t.Run("history is newest first", func(t *testing.T) {
		alerts, err := uc.ListAlerts(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, alerts).Length(2)
		gt.Equal(t, alerts[0].ID, second.ID)
		gt.Equal(t, alerts[1].ID, first.ID)
	})
}

func TestExportRoster(t *testing.T) {
	ctx := testContext(t)
	uc := usecase.New(usecase.WithTimetableClient(newTimetable()))

	a, _, err := uc.TriggerRollCall(ctx, interfaces.RollCallRequest{})
	gt.NoError(t, err).Required()

	var buf bytes.Buffer
	gt.NoError(t, uc.ExportRoster(ctx, a.ID, &buf)).Required()

	var classes []string
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var p post.Post
		gt.NoError(t, json.Unmarshal(scanner.Bytes(), &p)).Required()
		gt.Equal(t, p.AlertID, a.ID)
		classes = append(classes, p.Class.Number)
	}
	gt.Equal(t, classes, []string{"10A", "5C"})

	err = uc.ExportRoster(ctx, types.NewAlertID(), &buf)
	gt.Equal(t, errs.ReasonOf(err), types.ReasonNotFound)
}
