package repository_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/repository"
	"github.com/secmon-lab/rollcall/pkg/utils/test"
)

func newFirestoreClient(t *testing.T) *repository.Firestore {
	vars := test.NewEnvVars(t, "TEST_FIRESTORE_PROJECT_ID", "TEST_FIRESTORE_DATABASE_ID")
	client, err := repository.NewFirestore(t.Context(),
		vars.Get("TEST_FIRESTORE_PROJECT_ID"),
		vars.Get("TEST_FIRESTORE_DATABASE_ID"),
	)
	gt.NoError(t, err).Required()
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// runRepositoryTest runs testFn against every repository implementation.
// The Firestore variant is skipped unless the test env vars are set. Since
// a Firestore database is shared, tests must only assert on IDs they created.
func runRepositoryTest(t *testing.T, testFn func(t *testing.T, repo interfaces.Repository)) {
	t.Run("Memory", func(t *testing.T) {
		testFn(t, repository.NewMemory())
	})

	t.Run("Firestore", func(t *testing.T) {
		testFn(t, newFirestoreClient(t))
	})
}

func newTestAlert(createdAt time.Time, classCount int) *alert.Alert {
	return &alert.Alert{
		ID:          types.NewAlertID(),
		ClassCount:  classCount,
		TriggeredBy: "test-user",
		Stats:       alert.Stats{Total: classCount, Undefined: classCount},
		CreatedAt:   createdAt.UTC().Truncate(time.Millisecond),
		UpdatedAt:   createdAt.UTC().Truncate(time.Millisecond),
	}
}

func newTestPost(alertID types.AlertID, classNumber string, start types.ClockTime) *post.Post {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &post.Post{
		ID:        types.NewPostID(),
		AlertID:   alertID,
		Class:     post.Class{Number: classNumber, Name: fmt.Sprintf("Klasse %s", classNumber)},
		Teachers:  []string{"Eva Braun"},
		Rooms:     []post.Room{{Number: "201", Name: "H201"}},
		Start:     start,
		End:       start + 45,
		Day:       types.DayOf(now),
		Status:    types.PostStatusUndefined,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func containsAlert(alerts alert.Alerts, id types.AlertID) bool {
	for _, a := range alerts {
		if a.ID == id {
			return true
		}
	}
	return false
}
