package cli

import (
	"context"
	"os"

	"github.com/secmon-lab/rollcall/pkg/cli/config"
	"github.com/secmon-lab/rollcall/pkg/usecase"
	"github.com/secmon-lab/rollcall/pkg/utils/clock"
	"github.com/urfave/cli/v3"
)

func cmdHistory() *cli.Command {
	var (
		limit        int
		firestoreCfg config.Firestore
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Usage:       "Number of alerts to show, 0 shows all",
				Value:       10,
				Destination: &limit,
			},
		},
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:  "history",
		Usage: "List stored alerts, newest first",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}

			alerts, err := usecase.New(usecase.WithRepository(repo)).ListAlerts(ctx)
			if err != nil {
				return err
			}
			if limit > 0 && len(alerts) > limit {
				alerts = alerts[:limit]
			}

			printHistory(os.Stdout, alerts, clock.Now(ctx))
			return nil
		},
	}
}
