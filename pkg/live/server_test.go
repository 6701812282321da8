package live

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/dashwire-dev/dashwire/pkg/dom"
	"github.com/dashwire-dev/dashwire/pkg/layout"
	"github.com/dashwire-dev/dashwire/pkg/reactive"
)

// testApp is an overlay of three panes cycled by a clicker. The scene
// assigns dw-1..dw-3 to the overlay children and dw-4 to the button, in
// construction order, for both the page render and the websocket session.
func testApp(scene *layout.Scene) *dom.VNode {
	pane := reactive.NewIntCell(1)
	overlay := scene.Overlay(pane, layout.Options{},
		dom.Div(dom.Text("one")),
		dom.Div(dom.Text("two")),
		dom.Div(dom.Text("three")),
	)
	next, _ := scene.Clicker(pane, layout.Options{Rule: layout.IncreaseMod, Step: 1, Cap: 3}, dom.Text("next"))
	return scene.Column(layout.Options{}, overlay, next)
}

func newTestServer(t *testing.T, config ServerConfig) (*Server, *httptest.Server) {
	t.Helper()
	s := NewServer(config, testApp, zerolog.Nop())
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return s, ts
}

func dialLive(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	frame, err := DecodeFrame(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return frame
}

func TestServerPage(t *testing.T) {
	_, ts := newTestServer(t, ServerConfig{Title: "dash test"})

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	html := string(body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if !strings.Contains(html, "<title>dash test</title>") {
		t.Errorf("title missing: %s", html)
	}
	if !strings.Contains(html, `data-dw="dw-4"`) || !strings.Contains(html, `data-on-click="true"`) {
		t.Errorf("clicker markers missing from page")
	}
	if !strings.Contains(html, layout.ClassOverlay) || !strings.Contains(html, layout.ClassActive) {
		t.Errorf("overlay markup missing from page")
	}
	if !strings.Contains(html, "WebSocket") {
		t.Errorf("client script missing from page")
	}
}

func TestServerHealth(t *testing.T) {
	_, ts := newTestServer(t, ServerConfig{})
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status %d", resp.StatusCode)
	}
}

func TestServerLiveClickProducesPatches(t *testing.T) {
	_, ts := newTestServer(t, ServerConfig{})
	conn := dialLive(t, ts)

	event := Frame{Type: FrameEvent, Ref: "dw-4", Event: "click"}
	data, _ := event.Encode()
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatal(err)
	}

	frame := readFrame(t, conn)
	if frame.Type != FramePatch {
		t.Fatalf("frame = %+v, want patch", frame)
	}

	// The click moved the pane index from 1 to 2.
	var activated string
	for _, p := range frame.Patches {
		for _, c := range p.Add {
			if c == layout.ClassActive {
				activated = p.Ref
			}
		}
	}
	if activated != "dw-2" {
		t.Errorf("expected dw-2 to gain the active marker, patches: %+v", frame.Patches)
	}
}

func TestServerLiveDispatchError(t *testing.T) {
	_, ts := newTestServer(t, ServerConfig{})
	conn := dialLive(t, ts)

	event := Frame{Type: FrameEvent, Ref: "dw-999", Event: "click"}
	data, _ := event.Encode()
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatal(err)
	}

	frame := readFrame(t, conn)
	if frame.Type != FrameError {
		t.Fatalf("frame = %+v, want error", frame)
	}
	if !strings.Contains(frame.Message, "E301") {
		t.Errorf("message = %q, want E301", frame.Message)
	}
}

func TestServerLivePing(t *testing.T) {
	_, ts := newTestServer(t, ServerConfig{})
	conn := dialLive(t, ts)

	data, _ := Frame{Type: FramePing}.Encode()
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatal(err)
	}
	if frame := readFrame(t, conn); frame.Type != FramePong {
		t.Errorf("frame = %+v, want pong", frame)
	}
}

func TestServerLiveMalformedFrameDropped(t *testing.T) {
	_, ts := newTestServer(t, ServerConfig{})
	conn := dialLive(t, ts)

	// A malformed frame is logged and dropped; the session keeps running.
	if err := conn.WriteMessage(websocket.TextMessage, []byte("{broken")); err != nil {
		t.Fatal(err)
	}
	data, _ := Frame{Type: FramePing}.Encode()
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatal(err)
	}
	if frame := readFrame(t, conn); frame.Type != FramePong {
		t.Errorf("frame = %+v, want pong after dropped frame", frame)
	}
}

func TestServerSessionLimit(t *testing.T) {
	srv, ts := newTestServer(t, ServerConfig{MaxSessions: 1})

	dialLive(t, ts)
	waitFor(t, func() bool { return srv.Manager().Count() == 1 })

	// Second connection is rejected and closed by the server.
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"
	second, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()

	second.SetReadDeadline(time.Now().Add(3 * time.Second))
	if _, _, err := second.ReadMessage(); err == nil {
		t.Errorf("expected the rejected connection to be closed")
	}
	if got := srv.Manager().Count(); got != 1 {
		t.Errorf("session count = %d, want 1", got)
	}
}

func TestServerCloseAll(t *testing.T) {
	srv, ts := newTestServer(t, ServerConfig{})
	conn := dialLive(t, ts)

	waitFor(t, func() bool { return srv.Manager().Count() == 1 })
	srv.Manager().CloseAll()
	waitFor(t, func() bool { return srv.Manager().Count() == 0 })

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Errorf("expected the connection to be closed")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}
