package config

import (
	"log/slog"

	"github.com/secmon-lab/rollcall/pkg/service/audit"
	"github.com/urfave/cli/v3"

	sdk "github.com/slack-go/slack"
)

type Slack struct {
	oauthToken string `masq:"secret"`
	channel    string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for posting roster edit notices",
			Category:    "Slack",
			Destination: &x.oauthToken,
			Sources:     cli.EnvVars("ROLLCALL_SLACK_OAUTH_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for roster edit notices, `#` is not required",
			Category:    "Slack",
			Destination: &x.channel,
			Sources:     cli.EnvVars("ROLLCALL_SLACK_CHANNEL"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("oauth-token.len", len(x.oauthToken)),
		slog.String("channel", x.channel),
	)
}

func (x *Slack) IsConfigured() bool {
	return x.oauthToken != "" && x.channel != ""
}

// Configure returns nil without error when Slack is not configured.
func (x *Slack) Configure() (*audit.SlackRecorder, error) {
	if !x.IsConfigured() {
		return nil, nil
	}
	return audit.NewSlackRecorder(sdk.New(x.oauthToken), x.channel)
}
