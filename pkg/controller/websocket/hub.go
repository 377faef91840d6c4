package websocket

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/auth"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	websocket_model "github.com/secmon-lab/rollcall/pkg/domain/model/websocket"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
	"github.com/secmon-lab/rollcall/pkg/utils/user"
)

// Hub maintains the set of authenticated viewers and fans out roster events
// to all of them. Every event goes through the single broadcast channel,
// so all viewers observe the same order.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Broadcast message to every client
	broadcast chan []byte

	// Mutex to protect concurrent access to clients map
	mu sync.RWMutex

	// Context for graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

var _ interfaces.Broadcaster = &Hub{}

// Client is a middleman between the websocket connection and the hub
type Client struct {
	hub *Hub

	// The websocket connection
	conn *websocket.Conn

	// Buffered channel of outbound messages
	send chan []byte

	identity *auth.Identity

	// Unique client ID for this connection
	clientID string

	ctx    context.Context
	cancel context.CancelFunc

	// Mutex to protect send channel
	mu sync.Mutex
}

const (
	// Maximum message size allowed from peer (64KB)
	maxMessageSize = 64 * 1024

	// Buffer size for client send channel
	clientSendBufferSize = 256
)

func NewHub(ctx context.Context) *Hub {
	ctx, cancel := context.WithCancel(ctx)
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	logger := logging.From(h.ctx)
	logger.Info("WebSocket Hub started")

	defer func() {
		logger.Info("WebSocket Hub stopped")
		h.cancel()
	}()

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastToAll(message)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	logging.From(h.ctx).Info("Client registered",
		"user_id", client.identity.ID,
		"client_id", client.clientID,
		"total_clients", len(h.clients))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.clients[client]; exists {
		delete(h.clients, client)
		client.closeSend()

		logging.From(h.ctx).Info("Client unregistered",
			"user_id", client.identity.ID,
			"client_id", client.clientID,
			"remaining_clients", len(h.clients))
	}

	client.cancel()
}

func (h *Hub) broadcastToAll(message []byte) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	logging.From(h.ctx).Debug("Broadcasting message", "client_count", len(clients))

	for _, client := range clients {
		if !client.trySend(message) {
			// Client's send channel is full, drop the client
			h.unregisterClient(client)
		}
	}
}

// Broadcast queues message for every registered client. It returns once
// the hub has taken the message, or when the hub is shut down.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	case <-h.ctx.Done():
	}
}

func (h *Hub) publish(ctx context.Context, resp *websocket_model.Response) {
	data, err := resp.ToBytes()
	if err != nil {
		logging.From(ctx).Error("failed to marshal broadcast", logging.ErrAttr(err), "type", resp.Type)
		return
	}
	h.Broadcast(data)
}

func (h *Hub) PublishRoster(ctx context.Context, alertID types.AlertID, posts post.Posts) {
	h.publish(ctx, websocket_model.NewRosterSnapshot(alertID, posts))
}

func (h *Hub) PublishHistory(ctx context.Context, alerts alert.Alerts) {
	h.publish(ctx, websocket_model.NewHistorySnapshot(alerts))
}

func (h *Hub) PublishPost(ctx context.Context, p *post.Post, origin string) {
	h.publish(ctx, websocket_model.NewPostUpdated(p, origin))
}

// ClientCount returns the number of connected viewers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// NewClient creates a client for an authenticated connection. The client
// context carries the hub's logger and the viewer identity.
func (h *Hub) NewClient(conn *websocket.Conn, identity *auth.Identity) *Client {
	ctx, cancel := context.WithCancel(user.With(h.ctx, identity))
	clientID := generateClientID(identity.ID)
	ctx = logging.With(ctx, logging.From(ctx).With("client_id", clientID))

	return &Client{
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, clientSendBufferSize),
		identity: identity,
		clientID: clientID,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.ctx.Done():
		client.closeSend()
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

// Close gracefully shuts down the hub
func (h *Hub) Close() error {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.cancel()
		client.closeSend()
	}

	return nil
}

func generateClientID(userID string) string {
	timestamp := time.Now().Unix()
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("client_%s_%d", userID, timestamp)
	}
	return fmt.Sprintf("client_%s_%d_%s", userID, timestamp, hex.EncodeToString(randomBytes))
}

// ClientID returns the unique ID of the connection.
func (c *Client) ClientID() string {
	return c.clientID
}

// trySend queues data without blocking. It reports false when the buffer
// is full; a closed client silently drops data.
func (c *Client) trySend(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.send == nil {
		return true
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.send != nil {
		close(c.send)
		c.send = nil
	}
}
