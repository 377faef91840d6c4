package http

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	websocket_controller "github.com/secmon-lab/rollcall/pkg/controller/websocket"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/usecase"
)

type Server struct {
	router        *chi.Mux
	authn         interfaces.Authenticator
	websocketCtrl *websocket_controller.Handler
}

type Options func(*Server)

// WithAuthenticator sets the token verifier for /api routes. Without it
// every request runs as the anonymous identity.
func WithAuthenticator(authn interfaces.Authenticator) Options {
	return func(s *Server) {
		s.authn = authn
	}
}

func WithWebSocketHandler(handler *websocket_controller.Handler) Options {
	return func(s *Server) {
		s.websocketCtrl = handler
	}
}

type UseCase interface {
	interfaces.RollCallUsecases
	ExportRoster(ctx context.Context, alertID types.AlertID, w io.Writer) error
}

func New(uc UseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		authn:  usecase.NoAuthenticator{},
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	r.Get("/health", healthHandler(uc, s.websocketCtrl))

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware(s.authn))

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", listAlertsHandler(uc))
			r.Get("/live/posts", rosterHandler(uc))
			r.Get("/{alertID}/posts", rosterHandler(uc))
			r.Get("/{alertID}/posts/download", downloadRosterHandler(uc))
		})
		r.Post("/rollcall", rollCallHandler(uc))
		r.Post("/rollcall/preview", previewHandler(uc))
		r.Patch("/posts/{postID}", updatePostHandler(uc))
	})

	// The websocket handler verifies the token itself because browsers
	// cannot attach headers to the upgrade request.
	if s.websocketCtrl != nil {
		r.Get("/ws", s.websocketCtrl.HandleConnect)
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
