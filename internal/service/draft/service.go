// internal/service/draft/service.go
package draft

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	addomain "github.com/tradeyardgit/TradeYard/internal/domain/ad"
	"github.com/tradeyardgit/TradeYard/internal/domain/catalog"
	draftdomain "github.com/tradeyardgit/TradeYard/internal/domain/draft"
	"github.com/tradeyardgit/TradeYard/internal/domain/suggestion"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
	"github.com/tradeyardgit/TradeYard/internal/repository/cache"
	adservice "github.com/tradeyardgit/TradeYard/internal/service/ad"
	"github.com/tradeyardgit/TradeYard/internal/service/analysis"
)

// UpdateDraftRequest carries raw form field changes. Nil fields are left
// untouched.
type UpdateDraftRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *string   `json:"price"`
	CategoryID  *string   `json:"category"`
	Subcategory *string   `json:"subcategory"`
	LocationID  *string   `json:"location"`
	Condition   *string   `json:"condition"`
	Negotiable  *bool     `json:"negotiable"`
	Images      *[]string `json:"images"`
}

// SubmitResult is the outcome of a submit attempt. FieldErrors is non-nil
// when validation failed and nothing was sent to the listing store.
type SubmitResult struct {
	Ad          *addomain.Ad            `json:"ad,omitempty"`
	FieldErrors draftdomain.FieldErrors `json:"field_errors,omitempty"`
}

// DraftService owns the in-progress ad form state and its AI suggestion
// lifecycle.
type DraftService struct {
	drafts     *cache.DraftStore
	analyzer   *analysis.Client
	reconciler *suggestion.Reconciler
	ads        *adservice.AdService
	catalog    *catalog.Catalog
	logger     *zap.Logger
}

func NewDraftService(drafts *cache.DraftStore, analyzer *analysis.Client, reconciler *suggestion.Reconciler, ads *adservice.AdService, cat *catalog.Catalog, logger *zap.Logger) *DraftService {
	return &DraftService{
		drafts:     drafts,
		analyzer:   analyzer,
		reconciler: reconciler,
		ads:        ads,
		catalog:    cat,
		logger:     logger,
	}
}

// StartDraft creates an empty draft for a new ad.
func (s *DraftService) StartDraft(ctx context.Context, ownerID int64) (*draftdomain.Draft, error) {
	now := time.Now()
	d := &draftdomain.Draft{
		ID:              ulid.Make().String(),
		OwnerID:         ownerID,
		SuggestionState: suggestion.StateIdle,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return d, nil
}

// StartDraftFromAd pre-populates a draft from an existing listing so the
// owner can edit it. Submit then updates that listing in place.
func (s *DraftService) StartDraftFromAd(ctx context.Context, ownerID int64, adID string) (*draftdomain.Draft, error) {
	a, err := s.ads.GetAd(ctx, adID)
	if err != nil {
		return nil, err
	}
	if a.SellerID != ownerID {
		return nil, fmt.Errorf("%w: not the owner of this ad", xerrors.ErrForbidden)
	}

	now := time.Now()
	d := &draftdomain.Draft{
		ID:                 ulid.Make().String(),
		OwnerID:            ownerID,
		Title:              a.Title,
		Description:        a.Description,
		Price:              strconv.FormatFloat(a.Price, 'f', -1, 64),
		CategoryID:         a.CategoryID,
		Subcategory:        a.Subcategory.String,
		LocationID:         a.LocationID,
		Condition:          a.Condition.String,
		Negotiable:         a.Negotiable,
		Featured:           a.Featured,
		Images:             a.Images,
		SubcategoryOptions: s.catalog.SubcategoriesOf(a.CategoryID),
		SuggestionState:    suggestion.StateIdle,
		EditingAdID:        a.ID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return d, nil
}

func (s *DraftService) GetDraft(ctx context.Context, ownerID int64, draftID string) (*draftdomain.Draft, error) {
	return s.drafts.Get(ctx, ownerID, draftID)
}

// UpdateDraft merges raw form changes into the draft. A category change
// refreshes the subcategory options and drops a subcategory that no longer
// belongs.
func (s *DraftService) UpdateDraft(ctx context.Context, ownerID int64, draftID string, req *UpdateDraftRequest) (*draftdomain.Draft, error) {
	d, err := s.drafts.Get(ctx, ownerID, draftID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		d.Title = *req.Title
	}
	if req.Description != nil {
		d.Description = *req.Description
	}
	if req.Price != nil {
		d.Price = *req.Price
	}
	if req.CategoryID != nil && *req.CategoryID != d.CategoryID {
		d.CategoryID = *req.CategoryID
		d.SubcategoryOptions = s.catalog.SubcategoriesOf(d.CategoryID)
		if !s.catalog.HasSubcategory(d.CategoryID, d.Subcategory) {
			d.Subcategory = ""
		}
	}
	if req.Subcategory != nil {
		d.Subcategory = *req.Subcategory
	}
	if req.LocationID != nil {
		d.LocationID = *req.LocationID
	}
	if req.Condition != nil {
		d.Condition = *req.Condition
	}
	if req.Negotiable != nil {
		d.Negotiable = *req.Negotiable
	}
	if req.Images != nil {
		d.Images = *req.Images
	}
	d.UpdatedAt = time.Now()

	if err := s.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return d, nil
}

// Analyze runs image analysis for the draft and stores the resulting
// suggestion as ready. A suggestion already ready is silently replaced.
// On analysis failure the lifecycle returns to idle and the error surfaces
// to the caller; the draft's form fields are untouched either way.
func (s *DraftService) Analyze(ctx context.Context, ownerID int64, draftID, imageURL string) (*draftdomain.Draft, error) {
	d, err := s.drafts.Get(ctx, ownerID, draftID)
	if err != nil {
		return nil, err
	}

	d.SuggestionState = suggestion.StatePending
	d.Suggestion = nil
	if err := s.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	result, err := s.analyzer.AnalyzeImage(ctx, imageURL)
	if err != nil {
		d.ClearSuggestion()
		if saveErr := s.drafts.Save(ctx, d); saveErr != nil {
			s.logger.Warn("failed to reset draft after analysis failure",
				zap.String("draft_id", draftID), zap.Error(saveErr))
		}
		return nil, fmt.Errorf("image analysis failed: %w", err)
	}

	d.Suggestion = result
	d.SuggestionState = suggestion.StateReady
	d.UpdatedAt = time.Now()
	if err := s.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	s.logger.Info("image analyzed",
		zap.String("draft_id", draftID),
		zap.String("suggested_category", result.Category),
		zap.Float64("confidence", result.Confidence),
	)
	return d, nil
}

// ApplySuggestion merges the ready suggestion into the draft and returns the
// lifecycle to idle. With no ready suggestion this is a no-op, so applying
// twice in a row changes nothing the second time. A suggestion whose category
// doesn't reconcile is discarded the same way, without an error.
func (s *DraftService) ApplySuggestion(ctx context.Context, ownerID int64, draftID string) (*draftdomain.Draft, error) {
	d, err := s.drafts.Get(ctx, ownerID, draftID)
	if err != nil {
		return nil, err
	}

	if d.SuggestionState != suggestion.StateReady || d.Suggestion == nil {
		return d, nil
	}

	patch := s.reconciler.Reconcile(d.Suggestion)
	d.ApplyPatch(patch)
	d.ClearSuggestion()
	d.UpdatedAt = time.Now()

	if err := s.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return d, nil
}

// DismissSuggestion discards the ready suggestion without touching the form.
func (s *DraftService) DismissSuggestion(ctx context.Context, ownerID int64, draftID string) (*draftdomain.Draft, error) {
	d, err := s.drafts.Get(ctx, ownerID, draftID)
	if err != nil {
		return nil, err
	}

	d.ClearSuggestion()
	d.UpdatedAt = time.Now()

	if err := s.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return d, nil
}

// Submit validates the draft and, on success, inserts a new listing or
// updates the one being edited. The draft is discarded only after the store
// call succeeds, so a failed submit leaves the draft intact for retry.
func (s *DraftService) Submit(ctx context.Context, ownerID int64, draftID string) (*SubmitResult, error) {
	d, err := s.drafts.Get(ctx, ownerID, draftID)
	if err != nil {
		return nil, err
	}

	if errs := d.Validate(s.catalog); errs != nil {
		return &SubmitResult{FieldErrors: errs}, nil
	}

	var a *addomain.Ad
	if d.EditingAdID != "" {
		a, err = s.ads.UpdateAd(ctx, d.EditingAdID, ownerID, false, updateRequestFromDraft(d))
	} else {
		a, err = s.ads.CreateAd(ctx, ownerID, false, d.ToCreateRequest())
	}
	if err != nil {
		return nil, err
	}

	if err := s.drafts.Delete(ctx, ownerID, draftID); err != nil {
		s.logger.Warn("failed to delete submitted draft",
			zap.String("draft_id", draftID), zap.Error(err))
	}
	return &SubmitResult{Ad: a}, nil
}

// Discard drops a draft without submitting.
func (s *DraftService) Discard(ctx context.Context, ownerID int64, draftID string) error {
	return s.drafts.Delete(ctx, ownerID, draftID)
}

func updateRequestFromDraft(d *draftdomain.Draft) *addomain.UpdateAdRequest {
	req := d.ToCreateRequest()
	return &addomain.UpdateAdRequest{
		Title:       &req.Title,
		Description: &req.Description,
		Price:       &req.Price,
		CategoryID:  &req.CategoryID,
		Subcategory: &req.Subcategory,
		LocationID:  &req.LocationID,
		Images:      &req.Images,
		Condition:   &req.Condition,
		Negotiable:  &req.Negotiable,
	}
}
