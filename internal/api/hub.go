/*
Package api
File: hub.go
Description:
    The WebSocket Hub is the real-time side of the API.

    It keeps the set of connected clients and fans out every message sent
    to Broadcast. Handlers publish an envelope when a game is created and
    whenever a year is completed, so dashboards can follow every game on
    the server without polling.

    Architecture:
    - Hub: one per server, its Run loop owns the client set.
    - Client: one browser connection.
    - ServeWs: upgrades a GET request to a WebSocket and registers the client.
*/

package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Message types published on the hub.
const (
	MessageGameCreated  = "game_created"
	MessageYearAdvanced = "year_advanced"
	MessageGamesSwept   = "games_swept"
	MessageScenario     = "scenario_loaded"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
	sendBuffer     = 256
)

// Message defines the standard JSON envelope for all real-time communication.
type Message struct {
	Type    string `json:"type"`    // One of the Message* constants
	Payload any    `json:"payload"` // The event data
	Sender  string `json:"sender"`  // Game ID, or "system"
}

// Client represents a single connected browser tab.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte // Buffered outbound messages
}

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	clients map[*Client]bool

	// Broadcast takes encoded messages for every client.
	Broadcast chan []byte

	register   chan *Client
	unregister chan *Client
	done       chan struct{} // Closed when Run returns
	logger     *slog.Logger
}

// NewHub creates a new Hub. Run must be started before clients connect.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		Broadcast:  make(chan []byte, sendBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run is the hub's event loop. It returns when ctx is done, closing every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			h.logger.Debug("ws client registered", "clients", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Debug("ws client unregistered", "clients", len(h.clients))
			}

		case message := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Send buffer full: the client is stuck or gone.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Publish encodes an envelope and queues it for broadcast.
// When the queue is full the message is dropped; a year result must never
// wait on slow dashboards.
func (h *Hub) Publish(msgType, sender string, payload any) {
	data, err := json.Marshal(Message{Type: msgType, Payload: payload, Sender: sender})
	if err != nil {
		h.logger.Error("encode ws message", "type", msgType, "err", err)
		return
	}
	select {
	case h.Broadcast <- data:
	default:
		h.logger.Warn("ws broadcast queue full, message dropped", "type", msgType)
	}
}

// newUpgrader configures the WebSocket handshake.
// CheckOrigin accepts any origin unless one is configured.
func newUpgrader(allowedOrigin string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" || allowedOrigin == "*" {
				return true
			}
			origin := r.Header.Get("Origin")
			return origin == "" || origin == allowedOrigin
		},
	}
}

// ServeWs upgrades the request and registers the connection with the hub.
func (h *Hub) ServeWs(upgrader *websocket.Upgrader, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", "err", err)
		return
	}

	client := &Client{hub: h, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump drains the connection so control frames are processed.
// Clients only listen; anything they send is discarded.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("ws read", "err", err)
			}
			return
		}
	}
}

// writePump pumps messages from the hub to the connection and keeps it alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
