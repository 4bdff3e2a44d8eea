package messaging

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
)

type echoHandler struct {
	render RenderFunc
}

func (e echoHandler) Connected(c *Client) { c.SendRender(e.render) }

func (e echoHandler) Received(c *Client, msg Message) {
	if msg.Type == MessageViewport {
		c.SetViewport(msg.Viewport)
		c.SendRender(e.render)
	}
}

func startHub(t *testing.T, opts HubOptions) (*Hub, string) {
	t.Helper()
	hub := NewHub(opts, logging.NewDiscardLogger())
	hub.SetHandler(echoHandler{render: func(v string) (string, error) { return "<p>" + v + "</p>", nil }})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, r.URL.Query().Get("viewport"))
	}))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHub_InitialRenderAndViewportSwitch(t *testing.T) {
	hub, url := startHub(t, HubOptions{})
	conn, _, err := websocket.DefaultDialer.Dial(url+"?viewport=desktop", nil)
	require.NoError(t, err)
	defer conn.Close()

	msg := readMessage(t, conn)
	assert.Equal(t, MessageRender, msg.Type)
	assert.Equal(t, "<p>desktop</p>", msg.HTML)

	require.NoError(t, conn.WriteJSON(Message{Type: MessageViewport, Viewport: "mobile"}))
	msg = readMessage(t, conn)
	assert.Equal(t, "mobile", msg.Viewport)
	assert.Equal(t, "<p>mobile</p>", msg.HTML)
	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastRenderPerViewport(t *testing.T) {
	hub, url := startHub(t, HubOptions{})
	desktop, _, err := websocket.DefaultDialer.Dial(url+"?viewport=desktop", nil)
	require.NoError(t, err)
	defer desktop.Close()
	mobile, _, err := websocket.DefaultDialer.Dial(url+"?viewport=mobile", nil)
	require.NoError(t, err)
	defer mobile.Close()
	readMessage(t, desktop)
	readMessage(t, mobile)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	calls := 0
	hub.BroadcastRender(func(v string) (string, error) {
		calls++
		return "v2 " + v, nil
	})
	assert.Equal(t, 2, calls)
	assert.Equal(t, "v2 desktop", readMessage(t, desktop).HTML)
	assert.Equal(t, "v2 mobile", readMessage(t, mobile).HTML)

	hub.Broadcast(Message{Type: MessageScroll, SectionID: 4})
	assert.Equal(t, 4, readMessage(t, desktop).SectionID)
	assert.Equal(t, MessageScroll, readMessage(t, mobile).Type)
}

func TestHub_RejectsForeignOrigin(t *testing.T) {
	_, url := startHub(t, HubOptions{AllowedOrigins: []string{"http://editor.local"}})
	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header.Set("Origin", "http://editor.local")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	conn.Close()
}
