// interfaces/websocket/client.go
package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 64 * 1024
	sendBufferSize = 256
)

// Client is one authenticated WebSocket connection.
type Client struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Conn   *websocket.Conn
	Send   chan []byte
	Hub    *Hub

	lastPong    time.Time
	lastPongMux sync.Mutex

	sendMux    sync.Mutex
	sendClosed bool
}

func newClient(hub *Hub, conn *websocket.Conn, userID uuid.UUID) *Client {
	return &Client{
		ID:       uuid.New(),
		UserID:   userID,
		Conn:     conn,
		Send:     make(chan []byte, sendBufferSize),
		Hub:      hub,
		lastPong: time.Now(),
	}
}

// trySend queues an outbound frame without blocking. Returns false when the
// send buffer is full. A frame for a torn-down client is swallowed and counts
// as sent; every write and the close share sendMux, so a push can never race
// the channel close.
func (c *Client) trySend(payload []byte) bool {
	c.sendMux.Lock()
	defer c.sendMux.Unlock()
	if c.sendClosed {
		return true
	}
	select {
	case c.Send <- payload:
		return true
	default:
		return false
	}
}

// closeSend closes the send channel exactly once.
func (c *Client) closeSend() {
	c.sendMux.Lock()
	defer c.sendMux.Unlock()
	if !c.sendClosed {
		c.sendClosed = true
		close(c.Send)
	}
}

func (c *Client) LastPong() time.Time {
	c.lastPongMux.Lock()
	defer c.lastPongMux.Unlock()
	return c.lastPong
}

func (c *Client) touchPong() {
	c.lastPongMux.Lock()
	c.lastPong = time.Now()
	c.lastPongMux.Unlock()
}

// HandleConnection is the entry point for an upgraded, authenticated
// connection. The auth middleware has already bound the user id into locals.
// Blocks until the connection dies; teardown always unregisters.
func (h *Hub) HandleConnection(conn *websocket.Conn) {
	userID, ok := conn.Locals("userID").(uuid.UUID)
	if !ok {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "unauthorized"))
		conn.Close()
		return
	}

	client := newClient(h, conn, userID)
	h.register <- client

	go client.writePump()
	client.readPump()
}

// readPump reads inbound frames and dispatches them to the handler registry.
// One long-lived loop per connection; exits on transport close, error, or
// read deadline, and that exit is the disconnect signal.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.touchPong()
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, payload, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error (user %s): %v", c.UserID, err)
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			c.sendError("", "invalid frame")
			continue
		}

		handler, ok := c.Hub.handlers[string(msg.Type)]
		if !ok {
			c.sendError(msg.Type, "unknown message type")
			continue
		}

		// Failures are per-message: the connection stays up, the client gets
		// an error frame.
		if err := handler.Handle(c, msg.Data); err != nil {
			c.sendError(msg.Type, err.Error())
		}
	}
}

// writePump drains the send channel and keeps the transport-level heartbeat.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) sendError(msgType MessageType, message string) {
	c.Hub.sendToClient(c, WSResponse{
		Type:      msgType,
		Timestamp: time.Now(),
		Success:   false,
		Error:     message,
	})
}
