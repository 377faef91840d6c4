package cli

import (
	"context"
	"os"

	"github.com/secmon-lab/rollcall/pkg/cli/config"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/auth"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/usecase"
	"github.com/secmon-lab/rollcall/pkg/utils/clock"
	"github.com/secmon-lab/rollcall/pkg/utils/user"
	"github.com/urfave/cli/v3"
)

func cmdRollCall() *cli.Command {
	var (
		day          int
		minute       int
		dryRun       bool
		operator     string
		firestoreCfg config.Firestore
		timetableCfg config.Timetable
		policyCfg    config.Policy
		rollCallCfg  config.RollCall
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.IntFlag{
				Name:        "day",
				Usage:       "Target day as YYYYMMDD (default: today)",
				Destination: &day,
			},
			&cli.IntFlag{
				Name:        "minute",
				Usage:       "Target time as HHMM (default: now)",
				Destination: &minute,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Aliases:     []string{"n"},
				Usage:       "Print the roster without storing it",
				Destination: &dryRun,
			},
			&cli.StringFlag{
				Name:        "operator",
				Usage:       "Identity recorded as the trigger of the roll-call",
				Value:       "cli",
				Sources:     cli.EnvVars("ROLLCALL_OPERATOR"),
				Destination: &operator,
			},
		},
		firestoreCfg.Flags(),
		timetableCfg.Flags(),
		policyCfg.Flags(),
		rollCallCfg.Flags(),
	)

	return &cli.Command{
		Name:  "rollcall",
		Usage: "Run a single roll-call, or preview it with --dry-run",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			loc, err := rollCallCfg.Location()
			if err != nil {
				return err
			}
			ctx = clock.WithTimezone(ctx, loc)

			req := interfaces.RollCallRequest{Day: types.Day(day)}
			if cmd.IsSet("minute") {
				at := types.ClockTime(minute)
				req.Minute = &at
			}

			// Snapshots are written in the background and would not finish
			// before the command exits, so storage is left out.
			ucOptions, cleanup, err := useCaseOptions(ctx, &timetableCfg, &policyCfg, &rollCallCfg, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			if dryRun {
				entries, err := usecase.New(ucOptions...).Preview(ctx, req)
				if err != nil {
					return err
				}
				printEntries(os.Stdout, entries)
				return nil
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			uc := usecase.New(append(ucOptions, usecase.WithRepository(repo))...)

			ctx = user.With(ctx, &auth.Identity{ID: operator, Name: operator})
			a, posts, err := uc.TriggerRollCall(ctx, req)
			if err != nil {
				return err
			}
			printRoster(os.Stdout, a, posts)
			return nil
		},
	}
}
