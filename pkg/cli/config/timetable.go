package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/adapter/timetable"
	"github.com/urfave/cli/v3"
)

type Timetable struct {
	baseURL   string
	school    string
	user      string
	password  string `masq:"secret"`
	rateLimit float64
	burst     int
	timeout   time.Duration
}

func (x *Timetable) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "timetable-url",
			Usage:       "JSON-RPC endpoint of the scheduling server",
			Category:    "Timetable",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("ROLLCALL_TIMETABLE_URL"),
		},
		&cli.StringFlag{
			Name:        "timetable-school",
			Usage:       "School name on the scheduling server",
			Category:    "Timetable",
			Destination: &x.school,
			Sources:     cli.EnvVars("ROLLCALL_TIMETABLE_SCHOOL"),
		},
		&cli.StringFlag{
			Name:        "timetable-user",
			Usage:       "Service account user",
			Category:    "Timetable",
			Destination: &x.user,
			Sources:     cli.EnvVars("ROLLCALL_TIMETABLE_USER"),
		},
		&cli.StringFlag{
			Name:        "timetable-password",
			Usage:       "Service account password",
			Category:    "Timetable",
			Destination: &x.password,
			Sources:     cli.EnvVars("ROLLCALL_TIMETABLE_PASSWORD"),
		},
		&cli.FloatFlag{
			Name:        "timetable-rate-limit",
			Usage:       "Maximum requests per second to the scheduling server, 0 disables throttling",
			Category:    "Timetable",
			Value:       10,
			Destination: &x.rateLimit,
			Sources:     cli.EnvVars("ROLLCALL_TIMETABLE_RATE_LIMIT"),
		},
		&cli.IntFlag{
			Name:        "timetable-burst",
			Usage:       "Request burst size to the scheduling server",
			Category:    "Timetable",
			Value:       10,
			Destination: &x.burst,
			Sources:     cli.EnvVars("ROLLCALL_TIMETABLE_BURST"),
		},
		&cli.DurationFlag{
			Name:        "timetable-timeout",
			Usage:       "Timeout of a single request",
			Category:    "Timetable",
			Value:       30 * time.Second,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("ROLLCALL_TIMETABLE_TIMEOUT"),
		},
	}
}

func (x Timetable) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", x.baseURL),
		slog.String("school", x.school),
		slog.String("user", x.user),
		slog.Int("password.len", len(x.password)),
		slog.Float64("rate_limit", x.rateLimit),
		slog.Int("burst", x.burst),
		slog.Duration("timeout", x.timeout),
	)
}

func (x *Timetable) Configure() (*timetable.Client, error) {
	if x.baseURL == "" {
		return nil, goerr.New("timetable URL is not set")
	}
	if x.school == "" || x.user == "" {
		return nil, goerr.New("timetable school and user are required", goerr.V("school", x.school), goerr.V("user", x.user))
	}

	opts := []timetable.Option{
		timetable.WithRateLimit(x.rateLimit, x.burst),
	}
	if x.timeout > 0 {
		opts = append(opts, timetable.WithTimeout(x.timeout))
	}

	return timetable.New(x.baseURL, x.school, x.user, x.password, opts...), nil
}
