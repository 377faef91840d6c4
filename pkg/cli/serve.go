package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/secmon-lab/rollcall/pkg/cli/config"
	server "github.com/secmon-lab/rollcall/pkg/controller/http"
	websocket_controller "github.com/secmon-lab/rollcall/pkg/controller/websocket"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/service/audit"
	"github.com/secmon-lab/rollcall/pkg/service/privacy"
	"github.com/secmon-lab/rollcall/pkg/service/roster"
	"github.com/secmon-lab/rollcall/pkg/usecase"
	"github.com/secmon-lab/rollcall/pkg/utils/clock"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		addr         string
		firestoreCfg config.Firestore
		storageCfg   config.Storage
		sentryCfg    config.Sentry
		slackCfg     config.Slack
		timetableCfg config.Timetable
		policyCfg    config.Policy
		authCfg      config.Auth
		rollCallCfg  config.RollCall
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Sources:     cli.EnvVars("ROLLCALL_ADDR"),
				Usage:       "Listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
		},
		firestoreCfg.Flags(),
		storageCfg.Flags(),
		sentryCfg.Flags(),
		slackCfg.Flags(),
		timetableCfg.Flags(),
		policyCfg.Flags(),
		authCfg.Flags(),
		rollCallCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.From(ctx).Info("starting server",
				"addr", addr,
				"firestore", firestoreCfg,
				"storage", storageCfg,
				"sentry", sentryCfg,
				"slack", slackCfg,
				"timetable", timetableCfg,
				"policy", policyCfg,
				"auth", authCfg,
				"rollcall", rollCallCfg,
			)

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()

			loc, err := rollCallCfg.Location()
			if err != nil {
				return err
			}
			ctx = clock.WithTimezone(ctx, loc)

			authn, err := authCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}

			slackRecorder, err := slackCfg.Configure()
			if err != nil {
				return err
			}
			recorders := []interfaces.AuditRecorder{
				audit.LogRecorder{},
				audit.NewRepositoryRecorder(repo),
			}
			if slackRecorder != nil {
				recorders = append(recorders, slackRecorder)
			}

			wsHub := websocket_controller.NewHub(ctx)
			go wsHub.Run()

			ucOptions, cleanup, err := useCaseOptions(ctx, &timetableCfg, &policyCfg, &rollCallCfg, &storageCfg)
			if err != nil {
				return err
			}
			defer cleanup()

			ucOptions = append(ucOptions,
				usecase.WithRepository(repo),
				usecase.WithBroadcaster(wsHub),
				usecase.WithAuditRecorder(audit.NewMultiRecorder(recorders...)),
			)
			uc := usecase.New(ucOptions...)

			wsHandler := websocket_controller.NewHandler(wsHub, uc, authn)

			httpServer := http.Server{
				Addr: addr,
				Handler: server.New(uc,
					server.WithAuthenticator(authn),
					server.WithWebSocketHandler(wsHandler),
				),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				if err := wsHub.Close(); err != nil {
					logging.From(ctx).Error("failed to close WebSocket hub", logging.ErrAttr(err))
				}

				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(ctx)
			}
		},
	}
}

// useCaseOptions builds the options shared by serve and rollcall: the
// timetable client, roster builder, privacy checker, retention and the
// optional snapshot storage.
func useCaseOptions(ctx context.Context, timetableCfg *config.Timetable, policyCfg *config.Policy, rollCallCfg *config.RollCall, storageCfg *config.Storage) ([]usecase.Option, func(), error) {
	cleanup := func() {}

	client, err := timetableCfg.Configure()
	if err != nil {
		return nil, cleanup, err
	}

	rooms, comments, err := policyCfg.Configure()
	if err != nil {
		return nil, cleanup, err
	}

	opts := []usecase.Option{
		usecase.WithTimetableClient(client),
		usecase.WithRosterBuilder(roster.New(
			roster.WithWorkers(rollCallCfg.Workers()),
			roster.WithRoomPolicy(rooms),
		)),
		usecase.WithPrivacyChecker(privacy.New(comments)),
		usecase.WithRetention(rollCallCfg.Retention()),
	}

	if storageCfg != nil {
		storageClient, err := storageCfg.Configure(ctx)
		if err != nil {
			return nil, cleanup, err
		}
		if storageClient != nil {
			opts = append(opts, usecase.WithStorageClient(storageClient))
			cleanup = func() { storageClient.Close(ctx) }
		}
	}

	return opts, cleanup, nil
}
