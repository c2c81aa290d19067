package feed

import (
	"bsky_bots/shared"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() shared.ILogger {
	return log.New(io.Discard)
}

// wsTestServer accepts websocket upgrades and records every connection and
// every text frame received, so tests can assert on connect/reconnect counts
// and on control frames sent by the client.
type wsTestServer struct {
	t        *testing.T
	srv      *httptest.Server
	upgrader websocket.Upgrader

	mu       sync.Mutex
	conns    []*websocket.Conn
	queries  []string
	received []string
}

func newWsTestServer(t *testing.T) *wsTestServer {
	ts := &wsTestServer{t: t}
	ts.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := ts.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		ts.mu.Lock()
		ts.conns = append(ts.conns, conn)
		ts.queries = append(ts.queries, r.URL.RawQuery)
		ts.mu.Unlock()
		for {
			mt, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if mt == websocket.TextMessage {
				ts.mu.Lock()
				ts.received = append(ts.received, string(data))
				ts.mu.Unlock()
			}
		}
	}))
	return ts
}

func (ts *wsTestServer) wsUrl() string {
	return "ws" + strings.TrimPrefix(ts.srv.URL, "http")
}

func (ts *wsTestServer) connCount() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.conns)
}

func (ts *wsTestServer) frameCount() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.received)
}

func (ts *wsTestServer) dropConn(ix int) {
	ts.mu.Lock()
	conn := ts.conns[ix]
	ts.mu.Unlock()
	_ = conn.Close()
}

func (ts *wsTestServer) close() {
	ts.srv.Close()
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %s", what)
}

func TestWsClient_ReconnectAfterDrop(t *testing.T) {
	ts := newWsTestServer(t)
	defer ts.close()

	var mu sync.Mutex
	opens, closes := 0, 0
	cb := WsCallbacks{
		OnOpen:  func() { mu.Lock(); opens++; mu.Unlock() },
		OnClose: func() { mu.Lock(); closes++; mu.Unlock() },
	}
	client := NewWsClient(ts.wsUrl(), 30*time.Millisecond, time.Minute, cb, testLogger())
	client.Connect()
	defer client.Close(true)

	waitFor(t, "first connection", func() bool { return ts.connCount() == 1 })
	waitFor(t, "client to see the open", func() bool { mu.Lock(); defer mu.Unlock(); return opens == 1 })

	// Server-side drop: client must notice, fire OnClose, and redial
	ts.dropConn(0)
	waitFor(t, "reconnect", func() bool { return ts.connCount() == 2 })
	waitFor(t, "close callback", func() bool { mu.Lock(); defer mu.Unlock(); return closes >= 1 })
}

func TestWsClient_PermanentCloseStaysDown(t *testing.T) {
	ts := newWsTestServer(t)
	defer ts.close()

	client := NewWsClient(ts.wsUrl(), 20*time.Millisecond, time.Minute, WsCallbacks{}, testLogger())
	client.Connect()
	waitFor(t, "connection", func() bool { return ts.connCount() == 1 })

	client.Close(true)
	// Give it ample time to (incorrectly) redial
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 1, ts.connCount())
	assert.False(t, client.Connected())
}

func TestWsClient_MessagesArriveInOrder(t *testing.T) {
	ts := newWsTestServer(t)
	defer ts.close()

	var mu sync.Mutex
	var got []string
	cb := WsCallbacks{
		OnMessage: func(data []byte) { mu.Lock(); got = append(got, string(data)); mu.Unlock() },
	}
	client := NewWsClient(ts.wsUrl(), 20*time.Millisecond, time.Minute, cb, testLogger())
	client.Connect()
	defer client.Close(true)
	waitFor(t, "connection", func() bool { return ts.connCount() == 1 })

	ts.mu.Lock()
	conn := ts.conns[0]
	ts.mu.Unlock()
	for _, msg := range []string{"one", "two", "three"} {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
	}

	waitFor(t, "all messages", func() bool { mu.Lock(); defer mu.Unlock(); return len(got) == 3 })
	mu.Lock()
	assert.Equal(t, []string{"one", "two", "three"}, got)
	mu.Unlock()
}

func TestWsClient_SendWhileDisconnectedIsDropped(t *testing.T) {
	client := NewWsClient("ws://127.0.0.1:1/nope", time.Minute, time.Minute, WsCallbacks{}, testLogger())
	// Must not panic, must not block
	client.Send([]byte("into the void"))
	assert.False(t, client.Connected())
}
