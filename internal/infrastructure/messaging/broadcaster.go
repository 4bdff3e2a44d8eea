package messaging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/tractpage-go/pkg/config"
)

// HubOptions tunes connection handling.
type HubOptions struct {
	PingInterval    time.Duration
	WriteTimeout    time.Duration
	MaxMessageBytes int64
	AllowedOrigins  []string
}

// DefaultHubOptions reads the options from pkg/config.
func DefaultHubOptions() HubOptions {
	return HubOptions{
		PingInterval:    config.WSPingInterval,
		WriteTimeout:    config.WSWriteTimeout,
		MaxMessageBytes: int64(config.WSMaxMessageBytes),
		AllowedOrigins:  config.AllowedOrigins,
	}
}

// Hub tracks connected preview clients and fans frames out to them.
type Hub struct {
	clients  map[*Client]struct{}
	mu       sync.RWMutex
	handler  Handler
	opts     HubOptions
	upgrader websocket.Upgrader
	logger   *logging.ChanneledLogger
}

var _ Broadcaster = (*Hub)(nil)

// NewHub creates a hub. SetHandler must be called before clients connect.
func NewHub(opts HubOptions, logger *logging.ChanneledLogger) *Hub {
	if opts.PingInterval <= 0 {
		opts.PingInterval = 30 * time.Second
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	if opts.MaxMessageBytes <= 0 {
		opts.MaxMessageBytes = 4096
	}
	h := &Hub{
		clients: make(map[*Client]struct{}),
		opts:    opts,
		logger:  logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// SetHandler installs the lifecycle handler.
func (h *Hub) SetHandler(handler Handler) {
	h.mu.Lock()
	h.handler = handler
	h.mu.Unlock()
}

// checkOrigin accepts same-host requests and the configured editor origins.
func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	return slices.Contains(h.opts.AllowedOrigins, "*") || slices.Contains(h.opts.AllowedOrigins, origin)
}

// Serve upgrades the request and blocks until the client goes away.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, viewport string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("websocket upgrade failed: %w", err)
	}
	c := newClient(h, conn, viewport)
	h.add(c)
	defer h.remove(c)

	go c.writePump()

	h.mu.RLock()
	handler := h.handler
	h.mu.RUnlock()
	if handler != nil {
		handler.Connected(c)
	}
	c.readPump(handler)
	return nil
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Preview().Debug("Preview client connected", "viewport", c.Viewport(), "clients", count)
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
	}
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Preview().Debug("Preview client disconnected", "clients", count)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends msg to every client.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Preview().Error("Failed to encode preview frame", "type", msg.Type, "error", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.enqueue(data)
	}
}

// BroadcastRender renders once per distinct client viewport and sends each
// client the markup for its own viewport.
func (h *Hub) BroadcastRender(render RenderFunc) {
	h.mu.RLock()
	byViewport := make(map[string][]*Client)
	for c := range h.clients {
		v := c.Viewport()
		byViewport[v] = append(byViewport[v], c)
	}
	h.mu.RUnlock()

	for viewport, clients := range byViewport {
		msg := renderMessage(render, viewport)
		data, err := json.Marshal(msg)
		if err != nil {
			h.logger.Preview().Error("Failed to encode preview frame", "viewport", viewport, "error", err)
			continue
		}
		for _, c := range clients {
			c.enqueue(data)
		}
	}
}

func renderMessage(render RenderFunc, viewport string) Message {
	out, err := render(viewport)
	if err != nil {
		return Message{Type: MessageError, Viewport: viewport, Error: err.Error()}
	}
	return Message{Type: MessageRender, Viewport: viewport, HTML: out}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
}
