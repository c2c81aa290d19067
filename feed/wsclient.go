package feed

import (
	"bsky_bots/shared"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const pingWriteTimeoutSec = 10

// WsCallbacks are the handlers a consumer attaches at construction. Any of
// them may be nil. OnMessage is invoked from a single goroutine, in the order
// frames arrive on the wire.
type WsCallbacks struct {
	OnOpen    func()
	OnMessage func(data []byte)
	OnError   func(err error)
	OnClose   func()
}

// WsClient owns one websocket connection and keeps it alive indefinitely:
// a ping heartbeat while connected, and an unconditional fixed-delay
// reconnect when the transport drops. Close(true) is the only way to make it
// stay down.
type WsClient struct {
	url               string
	reconnectInterval time.Duration
	pingInterval      time.Duration
	logger            shared.ILogger
	cb                WsCallbacks

	mu        sync.Mutex
	conn      *websocket.Conn
	running   bool
	permanent bool
}

func NewWsClient(
	url string,
	reconnectInterval, pingInterval time.Duration,
	cb WsCallbacks,
	logger shared.ILogger,
) *WsClient {
	return &WsClient{
		url:               url,
		reconnectInterval: reconnectInterval,
		pingInterval:      pingInterval,
		logger:            logger,
		cb:                cb,
	}
}

// Connect starts the connection loop. Calling it while the loop is already
// running is a no-op: there is never more than one connect attempt in flight.
func (c *WsClient) Connect() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.permanent = false
	c.mu.Unlock()
	go c.run()
}

func (c *WsClient) run() {
	for {
		conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
		if err != nil {
			c.logger.Errorf("WebSocket connect failed: %v", err)
			if c.cb.OnError != nil {
				c.cb.OnError(err)
			}
		} else {
			c.mu.Lock()
			if c.permanent {
				// Close(true) raced with the dial; drop the fresh connection
				c.mu.Unlock()
				_ = conn.Close()
				c.finish()
				return
			}
			c.conn = conn
			c.mu.Unlock()

			c.logger.Infof("WebSocket connected")
			if c.cb.OnOpen != nil {
				c.cb.OnOpen()
			}

			pingStop := make(chan struct{})
			go c.heartbeat(conn, pingStop)
			c.readLoop(conn)
			close(pingStop)

			c.mu.Lock()
			c.conn = nil
			c.mu.Unlock()
			c.logger.Infof("WebSocket disconnected")
			if c.cb.OnClose != nil {
				c.cb.OnClose()
			}
		}

		if c.isPermanent() {
			c.finish()
			return
		}
		time.Sleep(c.reconnectInterval)
		if c.isPermanent() {
			c.finish()
			return
		}
	}
}

// readLoop dispatches inbound frames one at a time until the transport errors
// out or the connection is closed under us.
func (c *WsClient) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Warnf("WebSocket read failed: %v", err)
				if c.cb.OnError != nil {
					c.cb.OnError(err)
				}
			}
			_ = conn.Close()
			return
		}
		if c.cb.OnMessage != nil {
			c.cb.OnMessage(data)
		}
	}
}

func (c *WsClient) heartbeat(conn *websocket.Conn, stop chan struct{}) {
	t := time.NewTicker(c.pingInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			deadline := time.Now().Add(time.Second * pingWriteTimeoutSec)
			if err := conn.WriteControl(websocket.PingMessage, []byte{}, deadline); err != nil {
				c.logger.Warnf("Failed to ping: %v", err)
			}
		case <-stop:
			return
		}
	}
}

// Send transmits one text frame on the live connection. While disconnected
// the frame is silently dropped.
func (c *WsClient) Send(data []byte) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		c.logger.Warnf("WebSocket send failed: %v", err)
	}
}

func (c *WsClient) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Close tears down the connection. With permanent=false the client schedules
// its usual reconnect; with permanent=true the loop stops for good.
func (c *WsClient) Close(permanent bool) {
	c.mu.Lock()
	c.permanent = permanent
	conn := c.conn
	c.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

func (c *WsClient) isPermanent() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.permanent
}

func (c *WsClient) finish() {
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()
}
