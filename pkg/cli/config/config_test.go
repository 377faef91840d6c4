package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/rollcall/pkg/cli/config"
	"github.com/secmon-lab/rollcall/pkg/service/privacy"
	"github.com/secmon-lab/rollcall/pkg/service/roster"
	"github.com/secmon-lab/rollcall/pkg/usecase"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestPolicyConfigure(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		rooms, comments, err := config.NewPolicyForTest("").Configure()
		gt.NoError(t, err)
		gt.Equal(t, rooms, roster.DefaultRoomPolicy())
		gt.Equal(t, comments, privacy.DefaultPolicy())
	})

	t.Run("rooms section replaces room policy", func(t *testing.T) {
		path := writeFile(t, `
rooms:
  excluded_prefixes: ["x"]
  excluded_names: ["turnhalle"]
`)
		rooms, comments, err := config.NewPolicyForTest(path).Configure()
		gt.NoError(t, err)
		gt.Equal(t, rooms.ExcludedPrefixes, []string{"x"})
		gt.Equal(t, rooms.ExcludedNames, []string{"turnhalle"})
		gt.True(t, rooms.Excluded("Turnhalle"))
		gt.Equal(t, comments, privacy.DefaultPolicy())
	})

	t.Run("privacy section overrides keywords and length", func(t *testing.T) {
		path := writeFile(t, `
privacy:
  keywords: ["krankenkasse"]
  max_length: 200
`)
		rooms, comments, err := config.NewPolicyForTest(path).Configure()
		gt.NoError(t, err)
		gt.Equal(t, rooms, roster.DefaultRoomPolicy())
		gt.Equal(t, comments.Keywords, []string{"krankenkasse"})
		gt.Equal(t, comments.MaxLength, 200)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := config.NewPolicyForTest(filepath.Join(t.TempDir(), "none.yaml")).Configure()
		gt.Error(t, err)
	})

	t.Run("broken yaml", func(t *testing.T) {
		_, _, err := config.NewPolicyForTest(writeFile(t, "rooms: [")).Configure()
		gt.Error(t, err)
	})
}

func TestAuthConfigure(t *testing.T) {
	t.Run("jwt", func(t *testing.T) {
		authn, err := config.NewAuthForTest("secret", "rollcall", false).Configure()
		gt.NoError(t, err)
		_, ok := authn.(*usecase.JWTAuthenticator)
		gt.True(t, ok)
	})

	t.Run("no authentication", func(t *testing.T) {
		authn, err := config.NewAuthForTest("", "", true).Configure()
		gt.NoError(t, err)
		identity, err := authn.Verify(context.Background(), "")
		gt.NoError(t, err)
		gt.NoError(t, identity.Validate())
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := config.NewAuthForTest("", "", false).Configure()
		gt.Error(t, err)
	})

	t.Run("conflicting flags", func(t *testing.T) {
		_, err := config.NewAuthForTest("secret", "", true).Configure()
		gt.Error(t, err)
	})
}

func TestRollCallLocation(t *testing.T) {
	loc, err := config.NewRollCallForTest("Europe/Berlin").Location()
	gt.NoError(t, err)
	gt.Equal(t, loc.String(), "Europe/Berlin")

	_, err = config.NewRollCallForTest("Mars/Olympus").Location()
	gt.Error(t, err)
}

func TestTimetableConfigure(t *testing.T) {
	_, err := config.NewTimetableForTest("", "school", "user").Configure()
	gt.Error(t, err)

	_, err = config.NewTimetableForTest("https://timetable.example.com/jsonrpc.do", "", "user").Configure()
	gt.Error(t, err)

	client, err := config.NewTimetableForTest("https://timetable.example.com/jsonrpc.do", "school", "user").Configure()
	gt.NoError(t, err)
	gt.NotNil(t, client)
}

func TestOptionalBackends(t *testing.T) {
	ctx := context.Background()

	var storageCfg config.Storage
	gt.False(t, storageCfg.IsConfigured())
	client, err := storageCfg.Configure(ctx)
	gt.NoError(t, err)
	gt.Nil(t, client)

	var slackCfg config.Slack
	gt.False(t, slackCfg.IsConfigured())
	recorder, err := slackCfg.Configure()
	gt.NoError(t, err)
	gt.Nil(t, recorder)

	var firestoreCfg config.Firestore
	gt.False(t, firestoreCfg.IsConfigured())
	repo, err := firestoreCfg.Configure(ctx)
	gt.NoError(t, err)
	gt.NotNil(t, repo)
}
