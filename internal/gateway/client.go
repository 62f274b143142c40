package gateway

import (
	"time"

	"auction-hub/utils"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Maximum time to wait for a pong from the client
	pongWait = 60 * time.Second

	// Ping interval; must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Deadline for a single outbound write
	writeWait = 10 * time.Second

	// Maximum inbound message size
	maxMessageSize = 64 * 1024

	// Outbound queue size per connection
	sendBufferSize = 256
)

// Client is one authenticated websocket session. Outbound delivery goes
// through a buffered channel drained by writePump, so broadcasts never
// block on a slow connection.
type Client struct {
	ID     uuid.UUID
	UserID int

	conn    *websocket.Conn
	send    chan []byte
	gateway *Gateway
}

func newClient(userID int, conn *websocket.Conn, gw *Gateway) *Client {
	return &Client{
		ID:      uuid.New(),
		UserID:  userID,
		conn:    conn,
		send:    make(chan []byte, sendBufferSize),
		gateway: gw,
	}
}

// Send queues a payload for delivery without blocking. A full queue
// means the client has stopped reading; the connection is closed and
// the payload dropped.
func (c *Client) Send(payload []byte) bool {
	select {
	case c.send <- payload:
		return true
	default:
		utils.Warn("gateway: send queue full, closing connection", map[string]any{
			"client_id": c.ID.String(),
			"user_id":   c.UserID,
		})
		c.conn.Close()
		return false
	}
}

// sendEvent encodes and queues one event for this client only
func (c *Client) sendEvent(eventType string, data any) {
	payload, err := Encode(eventType, data)
	if err != nil {
		utils.Error("gateway: encode event", map[string]any{"type": eventType, "error": err.Error()})
		return
	}
	c.Send(payload)
}

// readPump reads inbound events until the connection drops, then tears
// down room membership.
func (c *Client) readPump() {
	defer func() {
		c.gateway.registry.LeaveAll(c)
		// The send channel stays open: a broadcast racing the teardown
		// must never hit a closed channel. writePump exits on the next
		// failed write or ping.
		c.conn.Close()
		utils.Info("gateway: client disconnected", map[string]any{
			"client_id": c.ID.String(),
			"user_id":   c.UserID,
		})
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				utils.Warn("gateway: unexpected close", map[string]any{
					"user_id": c.UserID,
					"error":   err.Error(),
				})
			}
			return
		}
		c.gateway.dispatch(c, message)
	}
}

// writePump drains the send queue and keeps the connection alive with pings
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
