// internal/service/ad/service.go
package ad

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	addomain "github.com/tradeyardgit/TradeYard/internal/domain/ad"
	"github.com/tradeyardgit/TradeYard/internal/domain/catalog"
	"github.com/tradeyardgit/TradeYard/internal/messaging/nats"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
	"github.com/tradeyardgit/TradeYard/internal/repository/cache"
	"github.com/tradeyardgit/TradeYard/internal/repository/postgres"
)

type AdService struct {
	adRepo    *postgres.AdRepository
	adCache   *cache.AdCache
	publisher *nats.Publisher
	catalog   *catalog.Catalog
	logger    *zap.Logger
}

func NewAdService(adRepo *postgres.AdRepository, adCache *cache.AdCache, publisher *nats.Publisher, cat *catalog.Catalog, logger *zap.Logger) *AdService {
	return &AdService{
		adRepo:    adRepo,
		adCache:   adCache,
		publisher: publisher,
		catalog:   cat,
		logger:    logger,
	}
}

// CreateAd validates the request against the catalog, persists the listing
// and announces it on the event bus. Featuring is a moderation action, so a
// seller request carrying the flag has it cleared.
func (s *AdService) CreateAd(ctx context.Context, sellerID int64, isAdmin bool, req *addomain.CreateAdRequest) (*addomain.Ad, error) {
	if !isAdmin {
		req.Featured = false
	}
	if err := s.validateCatalogFields(req.CategoryID, req.Subcategory, req.LocationID, req.Condition); err != nil {
		return nil, err
	}
	if len(req.Images) == 0 {
		return nil, fmt.Errorf("%w: at least one image is required", xerrors.ErrInvalidInput)
	}

	a := &addomain.Ad{
		ID:          ulid.Make().String(),
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Subcategory: sql.NullString{String: req.Subcategory, Valid: req.Subcategory != ""},
		LocationID:  req.LocationID,
		Images:      req.Images,
		Condition:   sql.NullString{String: req.Condition, Valid: req.Condition != ""},
		Negotiable:  req.Negotiable,
		Featured:    req.Featured,
		Status:      addomain.AdStatusActive,
	}

	if err := s.adRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create ad: %w", err)
	}

	if err := s.adCache.SetAd(ctx, a); err != nil {
		s.logger.Warn("failed to cache new ad", zap.String("ad_id", a.ID), zap.Error(err))
	}
	if err := s.publisher.Publish(ctx, nats.SubjectAdCreated, a); err != nil {
		s.logger.Warn("failed to publish ad created event", zap.String("ad_id", a.ID))
	}

	s.logger.Info("ad created",
		zap.String("ad_id", a.ID),
		zap.Int64("seller_id", sellerID),
		zap.String("category", a.CategoryID),
	)
	return a, nil
}

// GetAd returns a single listing, serving from cache when possible.
func (s *AdService) GetAd(ctx context.Context, id string) (*addomain.Ad, error) {
	if cached, err := s.adCache.GetAd(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	a, err := s.adRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.adCache.SetAd(ctx, a); err != nil {
		s.logger.Warn("failed to cache ad", zap.String("ad_id", id), zap.Error(err))
	}
	return a, nil
}

// ListAds returns active listings filtered and sorted by f. The store hands
// back the full active set; filtering happens in-process.
func (s *AdService) ListAds(ctx context.Context, f addomain.Filter) ([]addomain.Ad, error) {
	ads, err := s.adRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ads: %w", err)
	}
	return addomain.ApplyFilter(ads, f), nil
}

func (s *AdService) ListBySeller(ctx context.Context, sellerID int64) ([]addomain.Ad, error) {
	return s.adRepo.ListBySeller(ctx, sellerID)
}

func (s *AdService) ListFeatured(ctx context.Context, limit int) ([]addomain.Ad, error) {
	return s.adRepo.ListFeatured(ctx, limit)
}

// ListAll returns every listing regardless of status. Admin screens use this
// with the same in-process filter as the public list.
func (s *AdService) ListAll(ctx context.Context, f addomain.Filter) ([]addomain.Ad, error) {
	ads, err := s.adRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all ads: %w", err)
	}
	return addomain.ApplyFilter(ads, f), nil
}

// UpdateAd replaces exactly the fields named in req. Only the owner or an
// admin may update a listing.
func (s *AdService) UpdateAd(ctx context.Context, id string, userID int64, isAdmin bool, req *addomain.UpdateAdRequest) (*addomain.Ad, error) {
	existing, err := s.adRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.SellerID != userID && !isAdmin {
		return nil, fmt.Errorf("%w: not the owner of this ad", xerrors.ErrForbidden)
	}
	if !isAdmin {
		dropModerationFields(req)
	}

	if err := s.validateUpdateFields(existing, req); err != nil {
		return nil, err
	}

	if err := s.adRepo.Update(ctx, id, req); err != nil {
		return nil, fmt.Errorf("failed to update ad: %w", err)
	}

	updated, err := s.adRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.adCache.SetAd(ctx, updated); err != nil {
		s.logger.Warn("failed to refresh cached ad", zap.String("ad_id", id), zap.Error(err))
	}
	if err := s.publisher.Publish(ctx, nats.SubjectAdUpdated, updated); err != nil {
		s.logger.Warn("failed to publish ad updated event", zap.String("ad_id", id))
	}

	return updated, nil
}

// MarkSold flips a listing to sold. Owner only.
func (s *AdService) MarkSold(ctx context.Context, id string, userID int64) error {
	existing, err := s.adRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.SellerID != userID {
		return fmt.Errorf("%w: not the owner of this ad", xerrors.ErrForbidden)
	}

	if err := s.adRepo.SetStatus(ctx, id, addomain.AdStatusSold); err != nil {
		return fmt.Errorf("failed to mark ad sold: %w", err)
	}

	if err := s.adCache.DeleteAd(ctx, id); err != nil {
		s.logger.Warn("failed to evict cached ad", zap.String("ad_id", id), zap.Error(err))
	}
	if err := s.publisher.Publish(ctx, nats.SubjectAdSold, map[string]string{"id": id}); err != nil {
		s.logger.Warn("failed to publish ad sold event", zap.String("ad_id", id))
	}
	return nil
}

// SetStatus is the admin moderation path.
func (s *AdService) SetStatus(ctx context.Context, id string, status addomain.AdStatus) error {
	if err := s.adRepo.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to set ad status: %w", err)
	}
	if err := s.adCache.DeleteAd(ctx, id); err != nil {
		s.logger.Warn("failed to evict cached ad", zap.String("ad_id", id), zap.Error(err))
	}
	return nil
}

// SetFeatured toggles the featured flag. Admin only, enforced by the route.
func (s *AdService) SetFeatured(ctx context.Context, id string, featured bool) error {
	if err := s.adRepo.SetFeatured(ctx, id, featured); err != nil {
		return fmt.Errorf("failed to set ad featured: %w", err)
	}
	if err := s.adCache.DeleteAd(ctx, id); err != nil {
		s.logger.Warn("failed to evict cached ad", zap.String("ad_id", id), zap.Error(err))
	}
	return nil
}

// DeleteAd removes a listing. Only the owner or an admin may delete.
func (s *AdService) DeleteAd(ctx context.Context, id string, userID int64, isAdmin bool) error {
	existing, err := s.adRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.SellerID != userID && !isAdmin {
		return fmt.Errorf("%w: not the owner of this ad", xerrors.ErrForbidden)
	}

	if err := s.adRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete ad: %w", err)
	}

	if err := s.adCache.DeleteAd(ctx, id); err != nil {
		s.logger.Warn("failed to evict cached ad", zap.String("ad_id", id), zap.Error(err))
	}
	if err := s.publisher.Publish(ctx, nats.SubjectAdDeleted, map[string]string{"id": id}); err != nil {
		s.logger.Warn("failed to publish ad deleted event", zap.String("ad_id", id))
	}

	s.logger.Info("ad deleted", zap.String("ad_id", id), zap.Int64("by_user", userID))
	return nil
}

func (s *AdService) Stats(ctx context.Context) (*addomain.AdStats, error) {
	return s.adRepo.Stats(ctx)
}

func (s *AdService) validateCatalogFields(categoryID, subcategory, locationID, condition string) error {
	if _, ok := s.catalog.CategoryByID(categoryID); !ok {
		return fmt.Errorf("%w: unknown category %q", xerrors.ErrInvalidInput, categoryID)
	}
	if subcategory != "" && !s.catalog.HasSubcategory(categoryID, subcategory) {
		return fmt.Errorf("%w: subcategory %q does not belong to category %q", xerrors.ErrInvalidInput, subcategory, categoryID)
	}
	if _, ok := s.catalog.LocationByID(locationID); !ok {
		return fmt.Errorf("%w: unknown location %q", xerrors.ErrInvalidInput, locationID)
	}
	if condition != "" && !catalog.ValidCondition(condition) {
		return fmt.Errorf("%w: unknown condition %q", xerrors.ErrInvalidInput, condition)
	}
	return nil
}

// dropModerationFields strips the fields reserved for admin endpoints from a
// seller's update. Featuring and status changes go through /admin routes.
func dropModerationFields(req *addomain.UpdateAdRequest) {
	req.Featured = nil
	req.Status = nil
}

func (s *AdService) validateUpdateFields(existing *addomain.Ad, req *addomain.UpdateAdRequest) error {
	categoryID := existing.CategoryID
	if req.CategoryID != nil {
		if _, ok := s.catalog.CategoryByID(*req.CategoryID); !ok {
			return fmt.Errorf("%w: unknown category %q", xerrors.ErrInvalidInput, *req.CategoryID)
		}
		categoryID = *req.CategoryID
	}

	// Membership is checked against the effective category, so changing the
	// category cannot leave a stale subcategory behind.
	subcategory := existing.Subcategory.String
	if req.Subcategory != nil {
		subcategory = *req.Subcategory
	}
	if subcategory != "" && !s.catalog.HasSubcategory(categoryID, subcategory) {
		return fmt.Errorf("%w: subcategory %q does not belong to category %q", xerrors.ErrInvalidInput, subcategory, categoryID)
	}

	if req.LocationID != nil {
		if _, ok := s.catalog.LocationByID(*req.LocationID); !ok {
			return fmt.Errorf("%w: unknown location %q", xerrors.ErrInvalidInput, *req.LocationID)
		}
	}
	if req.Condition != nil && *req.Condition != "" && !catalog.ValidCondition(*req.Condition) {
		return fmt.Errorf("%w: unknown condition %q", xerrors.ErrInvalidInput, *req.Condition)
	}
	if req.Images != nil && len(*req.Images) > addomain.MaxImages {
		return fmt.Errorf("%w: at most %d images allowed", xerrors.ErrInvalidInput, addomain.MaxImages)
	}
	return nil
}
