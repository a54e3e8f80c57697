// internal/handlers/contact/contact_handler.go
package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradeyardgit/TradeYard/internal/middleware"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
	"github.com/tradeyardgit/TradeYard/internal/pkg/response"
	service "github.com/tradeyardgit/TradeYard/internal/service/contact"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// SendMessage delivers a buyer message to a listing's seller.
func (h *ContactHandler) SendMessage(c *gin.Context) {
	senderID := middleware.MustGetUserID(c)

	var req struct {
		Body string `json:"body" binding:"required,max=2000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "message body is required", err)
		return
	}

	m, err := h.contactService.SendMessage(c.Request.Context(), senderID, c.Param("id"), req.Body)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "ad not found")
		case errors.Is(err, xerrors.ErrInvalidInput):
			response.ValidationError(c, "invalid request", err)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to send message", err)
		}
		return
	}

	response.Success(c, http.StatusCreated, "message sent", m)
}

// Inbox returns the messages the authenticated seller has received.
func (h *ContactHandler) Inbox(c *gin.Context) {
	messages, err := h.contactService.Inbox(c.Request.Context(), middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list messages", err)
		return
	}

	response.Success(c, http.StatusOK, "messages retrieved", messages)
}
