// internal/service/contact/service.go
package contact

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
	"github.com/tradeyardgit/TradeYard/internal/repository/postgres"
	adservice "github.com/tradeyardgit/TradeYard/internal/service/ad"
	"github.com/tradeyardgit/TradeYard/internal/service/email"
	ws "github.com/tradeyardgit/TradeYard/internal/websocket"
)

// ContactService delivers buyer messages to sellers, both persisted and
// pushed live when the seller is online.
type ContactService struct {
	messageRepo *postgres.MessageRepository
	userRepo    *postgres.UserRepository
	ads         *adservice.AdService
	hub         *ws.Hub
	emailSender *email.Sender
	baseURL     string
	logger      *zap.Logger
}

func NewContactService(
	messageRepo *postgres.MessageRepository,
	userRepo *postgres.UserRepository,
	ads *adservice.AdService,
	hub *ws.Hub,
	emailSender *email.Sender,
	baseURL string,
	logger *zap.Logger,
) *ContactService {
	return &ContactService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		ads:         ads,
		hub:         hub,
		emailSender: emailSender,
		baseURL:     baseURL,
		logger:      logger,
	}
}

// SendMessage stores a message about a listing and notifies the seller over
// websocket and email. Senders cannot message their own ads.
func (s *ContactService) SendMessage(ctx context.Context, senderID int64, adID, body string) (*postgres.Message, error) {
	a, err := s.ads.GetAd(ctx, adID)
	if err != nil {
		return nil, err
	}
	if a.SellerID == senderID {
		return nil, fmt.Errorf("%w: cannot message your own ad", xerrors.ErrInvalidInput)
	}

	sender, err := s.userRepo.FindByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	m := &postgres.Message{
		ID:       ulid.Make().String(),
		AdID:     a.ID,
		SenderID: senderID,
		SellerID: a.SellerID,
		Body:     body,
	}
	if err := s.messageRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.hub.NotifyNewMessage(a.SellerID, a.ID, a.Title, sender.Name)

	// A seller with an open connection just saw the push; the email is for
	// everyone else, delivered best effort.
	if s.hub.IsConnected(a.SellerID) {
		s.logger.Info("message sent",
			zap.String("ad_id", a.ID),
			zap.Int64("sender_id", senderID),
			zap.Int64("seller_id", a.SellerID),
		)
		return m, nil
	}

	go func(sellerID int64, adTitle, senderName string) {
		seller, err := s.userRepo.FindByID(context.Background(), sellerID)
		if err != nil {
			s.logger.Warn("failed to load seller for message email", zap.Int64("seller_id", sellerID), zap.Error(err))
			return
		}
		adURL := fmt.Sprintf("%s/ads/%s", s.baseURL, adID)
		tpl := email.NewMessageTemplate(seller.Name, senderName, adTitle, adURL)
		if err := s.emailSender.Send(seller.Email, tpl.Subject, tpl.Body); err != nil {
			s.logger.Warn("failed to send message email", zap.Int64("seller_id", sellerID), zap.Error(err))
		}
	}(a.SellerID, a.Title, sender.Name)

	s.logger.Info("message sent",
		zap.String("ad_id", a.ID),
		zap.Int64("sender_id", senderID),
		zap.Int64("seller_id", a.SellerID),
	)
	return m, nil
}

// Inbox returns the messages a seller has received, newest first.
func (s *ContactService) Inbox(ctx context.Context, sellerID int64) ([]postgres.Message, error) {
	return s.messageRepo.ListForSeller(ctx, sellerID)
}
