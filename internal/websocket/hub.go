// internal/websocket/hub.go
package websocket

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tradeyardgit/TradeYard/internal/pkg/jwt"
)

// Event is a push notification delivered to a connected user.
type Event struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data,omitempty"`
	At   time.Time      `json:"at"`
}

const (
	EventConnected  = "connected"
	EventNewMessage = "new_message"
	EventAdStatus   = "ad_status"
	EventPing       = "ping"
	EventPong       = "pong"
)

type broadcastMessage struct {
	userID int64
	event  *Event
}

// Hub tracks connected users and pushes per-user notifications. A user may
// hold several connections (tabs); every one receives the event.
type Hub struct {
	clients map[int64]map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan *broadcastMessage

	verifier *jwt.Verifier
	logger   *zap.Logger
}

func NewHub(verifier *jwt.Verifier, logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *broadcastMessage, 256),
		verifier:   verifier,
		logger:     logger,
	}
}

// Authenticate validates the access token presented on connect.
func (h *Hub) Authenticate(token string) (int64, error) {
	claims, err := h.verifier.VerifyAccessToken(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.broadcast:
			h.deliver(msg.userID, msg.event)
		}
	}
}

// NotifyNewMessage pushes a contact-form message alert to the seller.
func (h *Hub) NotifyNewMessage(sellerID int64, adID, adTitle, senderName string) {
	h.broadcast <- &broadcastMessage{
		userID: sellerID,
		event: &Event{
			Type: EventNewMessage,
			Data: map[string]any{
				"ad_id":    adID,
				"ad_title": adTitle,
				"from":     senderName,
			},
			At: time.Now(),
		},
	}
}

// NotifyAdStatus tells a seller their listing's status changed.
func (h *Hub) NotifyAdStatus(sellerID int64, adID, status string) {
	h.broadcast <- &broadcastMessage{
		userID: sellerID,
		event: &Event{
			Type: EventAdStatus,
			Data: map[string]any{
				"ad_id":  adID,
				"status": status,
			},
			At: time.Now(),
		},
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.userID] == nil {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true

	h.logger.Info("websocket client connected",
		zap.Int64("user_id", client.userID),
		zap.Int("total", h.totalClients()),
	)

	client.Send(&Event{Type: EventConnected, At: time.Now()})
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.userID]; ok {
		if _, exists := clients[client]; exists {
			delete(clients, client)
			client.Close()
			if len(clients) == 0 {
				delete(h.clients, client.userID)
			}
			h.logger.Info("websocket client disconnected",
				zap.Int64("user_id", client.userID),
				zap.Int("total", h.totalClients()),
			)
		}
	}
}

func (h *Hub) deliver(userID int64, event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[userID] {
		client.Send(event)
	}
}

// IsConnected reports whether the user has at least one open connection.
func (h *Hub) IsConnected(userID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}

func (h *Hub) totalClients() int {
	total := 0
	for _, clients := range h.clients {
		total += len(clients)
	}
	return total
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, clients := range h.clients {
		for client := range clients {
			client.Close()
		}
	}
}
