package config

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type RollCall struct {
	timezone  string
	retention int
	workers   int
}

func (x *RollCall) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "timezone",
			Aliases:     []string{"tz"},
			Usage:       "IANA time zone of the school, used to pick the current day and lesson",
			Category:    "RollCall",
			Value:       "Europe/Berlin",
			Destination: &x.timezone,
			Sources:     cli.EnvVars("ROLLCALL_TIMEZONE"),
		},
		&cli.IntFlag{
			Name:        "retention",
			Usage:       "Number of alerts to keep",
			Category:    "RollCall",
			Value:       usecase.DefaultRetention,
			Destination: &x.retention,
			Sources:     cli.EnvVars("ROLLCALL_RETENTION"),
		},
		&cli.IntFlag{
			Name:        "workers",
			Usage:       "Concurrent lesson queries per roll-call",
			Category:    "RollCall",
			Value:       runtime.GOMAXPROCS(0),
			Destination: &x.workers,
			Sources:     cli.EnvVars("ROLLCALL_WORKERS"),
		},
	}
}

func (x RollCall) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("timezone", x.timezone),
		slog.Int("retention", x.retention),
		slog.Int("workers", x.workers),
	)
}

func (x *RollCall) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(x.timezone)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid timezone", goerr.V("timezone", x.timezone))
	}
	return loc, nil
}

func (x *RollCall) Retention() int {
	return x.retention
}

func (x *RollCall) Workers() int {
	return x.workers
}
