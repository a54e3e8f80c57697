// internal/handlers/websocket/ws_handler.go
package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tradeyardgit/TradeYard/internal/pkg/response"
	ws "github.com/tradeyardgit/TradeYard/internal/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	hub    *ws.Hub
	logger *zap.Logger
}

func NewWSHandler(hub *ws.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, logger: logger}
}

// Connect upgrades the request and attaches the client to the notification
// hub. The access token arrives as a query param since browsers can't set
// headers on websocket connects.
func (h *WSHandler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Unauthorized(c, "missing token")
		return
	}

	userID, err := h.hub.Authenticate(token)
	if err != nil {
		response.Unauthorized(c, "invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := ws.NewClient(h.hub, conn, userID)
	client.Register()
}
