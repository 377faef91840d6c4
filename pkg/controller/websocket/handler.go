package websocket

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	websocket_model "github.com/secmon-lab/rollcall/pkg/domain/model/websocket"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/async"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
)

// Handler accepts viewer connections and relays their requests to the
// roll-call usecases.
type Handler struct {
	hub      *Hub
	useCases interfaces.RollCallUsecases
	authn    interfaces.Authenticator
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, useCases interfaces.RollCallUsecases, authn interfaces.Authenticator) *Handler {
	return &Handler{
		hub:      hub,
		useCases: useCases,
		authn:    authn,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// ClientCount returns the number of connected viewers.
func (h *Handler) ClientCount() int {
	return h.hub.ClientCount()
}

// WithOriginCheck restricts the accepted Origin headers.
func (h *Handler) WithOriginCheck(check func(r *http.Request) bool) *Handler {
	h.upgrader.CheckOrigin = check
	return h
}

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10
)

// tokenFrom reads the identity token from the Authorization header, or
// from the "token" query parameter since browsers cannot set headers on
// websocket requests.
func tokenFrom(r *http.Request) string {
	if v := r.Header.Get("Authorization"); v != "" {
		return strings.TrimPrefix(v, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

// HandleConnect authenticates the request and upgrades it to a viewer
// connection. Unauthenticated requests are never upgraded.
func (h *Handler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.From(ctx)

	identity, err := h.authn.Verify(ctx, tokenFrom(r))
	if err != nil {
		logger.Warn("websocket authentication failed", logging.ErrAttr(err))
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader has already written the response
		logger.Warn("failed to upgrade connection", logging.ErrAttr(err), "user_id", identity.ID)
		return
	}

	client := h.hub.NewClient(conn, identity)
	h.hub.Register(client)

	logger.Info("WebSocket connection established",
		"user_id", identity.ID,
		"client_id", client.clientID)

	go h.writePump(client)
	go h.readPump(client)
}

// readPump pumps messages from the websocket connection to the usecases
func (h *Handler) readPump(client *Client) {
	logger := logging.From(client.ctx)

	defer func() {
		h.hub.Unregister(client)
		if err := client.conn.Close(); err != nil {
			logger.Debug("failed to close connection in readPump", logging.ErrAttr(err))
		}
	}()

	client.conn.SetReadLimit(maxMessageSize)
	if err := client.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Error("failed to set read deadline", logging.ErrAttr(err))
		return
	}
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("unexpected WebSocket close", logging.ErrAttr(err))
			}
			return
		}

		var req websocket_model.Request
		if err := req.FromBytes(data); err != nil || !req.IsValidType() {
			logger.Warn("invalid message", "type", req.Type)
			h.reply(client, websocket_model.NewOperationFailed(req.Type, types.ReasonInvalidMessage, "invalid message"))
			continue
		}

		h.handleRequest(client, &req)
	}
}

func (h *Handler) handleRequest(client *Client, req *websocket_model.Request) {
	ctx := client.ctx

	switch req.Type {
	case websocket_model.TypePing:
		h.reply(client, websocket_model.NewPong())

	case websocket_model.TypeRequestRoster:
		a, posts, err := h.useCases.GetRoster(ctx, req.AlertID)
		if err != nil {
			h.replyFailure(ctx, client, req.Type, err)
			return
		}
		alertID := req.AlertID
		if a != nil {
			alertID = a.ID
		}
		h.reply(client, websocket_model.NewRosterSnapshot(alertID, posts))

	case websocket_model.TypeRequestHistory:
		alerts, err := h.useCases.ListAlerts(ctx)
		if err != nil {
			h.replyFailure(ctx, client, req.Type, err)
			return
		}
		h.reply(client, websocket_model.NewHistorySnapshot(alerts))

	case websocket_model.TypeSubmitEdit:
		// success is broadcast by the usecase
		_, err := h.useCases.UpdatePost(ctx, interfaces.EditRequest{
			PostID:             req.PostID,
			Status:             req.Status,
			Comment:            req.Comment,
			AcknowledgePrivacy: req.AcknowledgePrivacy,
			Origin:             client.identity.ID,
		})
		if err != nil {
			h.replyFailure(ctx, client, req.Type, err)
		}

	case websocket_model.TypeRequestRollCall:
		// A roll-call can take longer than pongWait, so it must not block
		// the read loop.
		rollCall := interfaces.RollCallRequest{Day: req.Day, Minute: req.Minute}
		async.Dispatch(ctx, func(ctx context.Context) error {
			if _, _, err := h.useCases.TriggerRollCall(ctx, rollCall); err != nil {
				h.replyFailure(ctx, client, websocket_model.TypeRequestRollCall, err)
			}
			return nil
		})
	}
}

// replyFailure reports err to the requesting client only. Declined
// requests are logged at info level; everything else goes to errs.Handle
// and the client receives a generic message.
func (h *Handler) replyFailure(ctx context.Context, client *Client, operation string, err error) {
	reason := errs.ReasonOf(err)
	message := "internal error"
	if errs.IsRejection(err) {
		logging.From(ctx).Info("request declined", "operation", operation, "reason", reason)
		message = err.Error()
	} else {
		errs.Handle(ctx, err)
		if reason.IsTimetable() {
			message = "timetable service unavailable"
		}
	}
	h.reply(client, websocket_model.NewOperationFailed(operation, reason, message))
}

func (h *Handler) reply(client *Client, resp *websocket_model.Response) {
	data, err := resp.ToBytes()
	if err != nil {
		logging.From(client.ctx).Error("failed to marshal response", logging.ErrAttr(err), "type", resp.Type)
		return
	}
	if !client.trySend(data) {
		logging.From(client.ctx).Warn("client send buffer full, response dropped", "type", resp.Type)
	}
}

// writePump pumps messages from the hub to the websocket connection
func (h *Handler) writePump(client *Client) {
	logger := logging.From(client.ctx)
	ticker := time.NewTicker(pingPeriod)

	client.mu.Lock()
	send := client.send
	client.mu.Unlock()

	defer func() {
		ticker.Stop()
		if err := client.conn.Close(); err != nil {
			logger.Debug("failed to close connection in writePump", logging.ErrAttr(err))
		}
	}()

	if send == nil {
		return
	}

	for {
		select {
		case <-client.ctx.Done():
			return

		case message, ok := <-send:
			if err := client.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Warn("failed to set write deadline", logging.ErrAttr(err))
				return
			}
			if !ok {
				// The hub closed the channel
				if err := client.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Debug("failed to write close message", logging.ErrAttr(err))
				}
				return
			}

			if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn("failed to write message", logging.ErrAttr(err))
				return
			}

		case <-ticker.C:
			if err := client.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
