package messaging

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client is one connected preview.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	mu       sync.RWMutex
	viewport string
	closed   bool
}

func newClient(h *Hub, conn *websocket.Conn, viewport string) *Client {
	return &Client{hub: h, conn: conn, send: make(chan []byte, 16), viewport: viewport}
}

// Viewport returns the viewport the client previews.
func (c *Client) Viewport() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.viewport
}

// SetViewport switches the client's viewport.
func (c *Client) SetViewport(v string) {
	c.mu.Lock()
	c.viewport = v
	c.mu.Unlock()
}

// Send queues msg for this client only.
func (c *Client) Send(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	c.enqueue(data)
}

// SendRender renders for the client's viewport and queues the result.
func (c *Client) SendRender(render RenderFunc) {
	c.Send(renderMessage(render, c.Viewport()))
}

// enqueue drops the frame when the client cannot keep up; the next render
// supersedes it anyway.
func (c *Client) enqueue(data []byte) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return
	}
	select {
	case c.send <- data:
	default:
		c.hub.logger.Preview().Warn("Preview client too slow, frame dropped")
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Client) readPump(handler Handler) {
	defer c.conn.Close()
	c.conn.SetReadLimit(c.hub.opts.MaxMessageBytes)
	wait := 2 * c.hub.opts.PingInterval
	c.conn.SetReadDeadline(time.Now().Add(wait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(wait))
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Preview().Warn("Preview connection closed unexpectedly", "error", err)
			}
			return
		}
		if handler != nil {
			handler.Received(c, msg)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.hub.opts.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.hub.opts.WriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.hub.opts.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
