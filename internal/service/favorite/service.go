// internal/service/favorite/service.go
package favorite

import (
	"context"
	"errors"

	"go.uber.org/zap"

	addomain "github.com/tradeyardgit/TradeYard/internal/domain/ad"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
	"github.com/tradeyardgit/TradeYard/internal/repository/postgres"
	adservice "github.com/tradeyardgit/TradeYard/internal/service/ad"
)

type FavoriteService struct {
	favoriteRepo *postgres.FavoriteRepository
	ads          *adservice.AdService
	logger       *zap.Logger
}

func NewFavoriteService(favoriteRepo *postgres.FavoriteRepository, ads *adservice.AdService, logger *zap.Logger) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		ads:          ads,
		logger:       logger,
	}
}

// Add saves an ad to the user's favorites. Adding twice is a no-op.
func (s *FavoriteService) Add(ctx context.Context, userID int64, adID string) error {
	if _, err := s.ads.GetAd(ctx, adID); err != nil {
		return err
	}
	return s.favoriteRepo.Add(ctx, userID, adID)
}

func (s *FavoriteService) Remove(ctx context.Context, userID int64, adID string) error {
	return s.favoriteRepo.Remove(ctx, userID, adID)
}

// List resolves the user's favorite ads. Listings deleted since being saved
// are skipped.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]addomain.Ad, error) {
	ids, err := s.favoriteRepo.ListAdIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	ads := make([]addomain.Ad, 0, len(ids))
	for _, id := range ids {
		a, err := s.ads.GetAd(ctx, id)
		if err != nil {
			if errors.Is(err, xerrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		ads = append(ads, *a)
	}
	return ads, nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID int64, adID string) (bool, error) {
	return s.favoriteRepo.IsFavorite(ctx, userID, adID)
}
