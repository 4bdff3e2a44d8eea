// Package messaging defines the live preview push channel.
package messaging

// Message is the JSON frame exchanged with preview clients.
type Message struct {
	Type      string `json:"type"`
	HTML      string `json:"html,omitempty"`
	SectionID int    `json:"sectionId,omitempty"`
	Viewport  string `json:"viewport,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Message types.
const (
	// Server to client
	MessageRender = "render" // full page markup for the client's viewport
	MessageScroll = "scroll" // scroll the preview to SectionID
	MessageError  = "error"

	// Client to server
	MessageViewport = "viewport" // switch the client's viewport
	MessageSelect   = "select"   // a section was clicked in the preview
)

// RenderFunc renders the current page for one viewport.
type RenderFunc func(viewport string) (string, error)

// Handler reacts to client lifecycle and inbound frames.
type Handler interface {
	Connected(c *Client)
	Received(c *Client, msg Message)
}

// Broadcaster pushes frames to every connected preview.
type Broadcaster interface {
	Broadcast(msg Message)
	BroadcastRender(render RenderFunc)
	ClientCount() int
}
