// internal/websocket/client.go
package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID int64

	ctx    context.Context
	cancel context.CancelFunc
}

func NewClient(hub *Hub, conn *websocket.Conn, userID int64) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 64),
		userID: userID,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register attaches the client to the hub and starts its pumps.
func (c *Client) Register() {
	c.hub.register <- c
	go c.writePump()
	go c.readPump()
}

// readPump consumes inbound frames. Clients only send pings; everything else
// is ignored.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
			_, message, err := c.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					c.hub.logger.Warn("websocket read error", zap.Error(err))
				}
				return
			}

			var ev Event
			if json.Unmarshal(message, &ev) == nil && ev.Type == EventPing {
				c.Send(&Event{Type: EventPong, At: time.Now()})
			}
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.ctx.Done():
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
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

// Send queues an event for delivery without ever blocking the caller. A
// client whose buffer is full is cancelled; its read pump hands it back to
// the hub once the connection drops.
func (c *Client) Send(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		c.hub.logger.Warn("failed to marshal websocket event", zap.Error(err))
		return
	}

	select {
	case c.send <- data:
	case <-c.ctx.Done():
	default:
		c.cancel()
		select {
		case c.hub.unregister <- c:
		default:
		}
	}
}

func (c *Client) Close() {
	c.cancel()
}
