package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/repository"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  string
	databaseID string
}

func (c *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID. Alerts are kept in memory when empty",
			Destination: &c.projectID,
			Category:    "Firestore",
			Sources:     cli.EnvVars("ROLLCALL_FIRESTORE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Destination: &c.databaseID,
			Category:    "Firestore",
			Sources:     cli.EnvVars("ROLLCALL_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
		},
	}
}

func (c Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", c.projectID),
		slog.String("database_id", c.databaseID),
	)
}

// Configure opens the Firestore repository, or an in-memory one when no
// project is set. The in-memory store does not survive a restart.
func (c *Firestore) Configure(ctx context.Context) (interfaces.Repository, error) {
	if !c.IsConfigured() {
		logging.From(ctx).Warn("Firestore is not configured, alerts are kept in memory")
		return repository.NewMemory(), nil
	}
	return repository.NewFirestore(ctx, c.projectID, c.databaseID)
}

func (c *Firestore) ProjectID() string  { return c.projectID }
func (c *Firestore) DatabaseID() string { return c.databaseID }

// IsConfigured returns true if Firestore is configured
func (c *Firestore) IsConfigured() bool {
	return c.projectID != ""
}
