package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/rollcall/pkg/adapter/storage"
	"google.golang.org/api/option"

	"github.com/urfave/cli/v3"
)

type Storage struct {
	bucket    string
	prefix    string
	projectID string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-bucket",
			Usage:       "Cloud Storage bucket for archived roster snapshots",
			Category:    "Storage",
			Destination: &x.bucket,
			Sources:     cli.EnvVars("ROLLCALL_STORAGE_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "storage-prefix",
			Usage:       "Object name prefix for snapshots",
			Category:    "Storage",
			Destination: &x.prefix,
			Sources:     cli.EnvVars("ROLLCALL_STORAGE_PREFIX"),
		},
		&cli.StringFlag{
			Name:        "storage-project-id",
			Usage:       "Quota project ID for Cloud Storage",
			Category:    "Storage",
			Destination: &x.projectID,
			Sources:     cli.EnvVars("ROLLCALL_STORAGE_PROJECT_ID"),
		},
	}
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("bucket", x.bucket),
		slog.String("prefix", x.prefix),
		slog.String("project_id", x.projectID),
	)
}

// Configure returns nil without error when no bucket is set, which turns
// snapshots off.
func (x *Storage) Configure(ctx context.Context) (*storage.Client, error) {
	if !x.IsConfigured() {
		return nil, nil
	}

	var opts []option.ClientOption
	if x.projectID != "" {
		opts = append(opts, option.WithQuotaProject(x.projectID))
	}

	return storage.New(ctx, x.bucket, x.prefix, opts...)
}

// IsConfigured returns true if Storage is configured
func (x *Storage) IsConfigured() bool {
	return x.bucket != ""
}
