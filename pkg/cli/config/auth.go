package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/usecase"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Auth struct {
	jwtSecret        string `masq:"secret"`
	audience         string
	noAuthentication bool
}

func (x *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwt-secret",
			Usage:       "Shared secret of HS256 identity tokens",
			Category:    "Auth",
			Destination: &x.jwtSecret,
			Sources:     cli.EnvVars("ROLLCALL_JWT_SECRET"),
		},
		&cli.StringFlag{
			Name:        "jwt-audience",
			Usage:       "Required audience of identity tokens",
			Category:    "Auth",
			Destination: &x.audience,
			Sources:     cli.EnvVars("ROLLCALL_JWT_AUDIENCE"),
		},
		&cli.BoolFlag{
			Name:        "no-authentication",
			Aliases:     []string{"no-authn"},
			Usage:       "Accept every request as an anonymous user (development only)",
			Category:    "Auth",
			Destination: &x.noAuthentication,
			Sources:     cli.EnvVars("ROLLCALL_NO_AUTHENTICATION"),
		},
	}
}

func (x Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("jwt_secret.len", len(x.jwtSecret)),
		slog.String("audience", x.audience),
		slog.Bool("no_authentication", x.noAuthentication),
	)
}

func (x *Auth) Configure() (interfaces.Authenticator, error) {
	if x.noAuthentication {
		if x.jwtSecret != "" {
			return nil, goerr.New("--no-authentication cannot be combined with --jwt-secret")
		}
		logging.Default().Warn("⚠️  SECURITY WARNING: Authentication is DISABLED",
			"flag", "--no-authentication",
			"recommendation", "This should only be used in development environments")
		return usecase.NoAuthenticator{}, nil
	}

	if x.jwtSecret == "" {
		return nil, goerr.New("either --jwt-secret or --no-authentication is required")
	}

	var opts []usecase.JWTOption
	if x.audience != "" {
		opts = append(opts, usecase.WithAudience(x.audience))
	}
	return usecase.NewJWTAuthenticator([]byte(x.jwtSecret), opts...)
}
