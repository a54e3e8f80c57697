// internal/handlers/draft/draft_handler.go
package draft

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradeyardgit/TradeYard/internal/middleware"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
	"github.com/tradeyardgit/TradeYard/internal/pkg/ratelimit"
	"github.com/tradeyardgit/TradeYard/internal/pkg/response"
	service "github.com/tradeyardgit/TradeYard/internal/service/draft"
)

type DraftHandler struct {
	draftService *service.DraftService
	rateLimiter  *ratelimit.RateLimiter
}

func NewDraftHandler(draftService *service.DraftService, rateLimiter *ratelimit.RateLimiter) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
		rateLimiter:  rateLimiter,
	}
}

// StartDraft opens a new empty draft, or one pre-filled from an existing ad
// when ad_id is given.
func (h *DraftHandler) StartDraft(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	var req struct {
		AdID string `json:"ad_id"`
	}
	// Body is optional for a blank draft.
	_ = c.ShouldBindJSON(&req)

	if req.AdID != "" {
		d, err := h.draftService.StartDraftFromAd(c.Request.Context(), userID, req.AdID)
		if err != nil {
			writeDraftError(c, err, "failed to start draft")
			return
		}
		response.Success(c, http.StatusCreated, "draft started", d)
		return
	}

	d, err := h.draftService.StartDraft(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to start draft", err)
		return
	}
	response.Success(c, http.StatusCreated, "draft started", d)
}

func (h *DraftHandler) GetDraft(c *gin.Context) {
	d, err := h.draftService.GetDraft(c.Request.Context(), middleware.MustGetUserID(c), c.Param("id"))
	if err != nil {
		writeDraftError(c, err, "failed to get draft")
		return
	}
	response.Success(c, http.StatusOK, "draft retrieved", d)
}

// UpdateDraft merges raw form field values into the draft.
func (h *DraftHandler) UpdateDraft(c *gin.Context) {
	var req service.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	d, err := h.draftService.UpdateDraft(c.Request.Context(), middleware.MustGetUserID(c), c.Param("id"), &req)
	if err != nil {
		writeDraftError(c, err, "failed to update draft")
		return
	}
	response.Success(c, http.StatusOK, "draft updated", d)
}

// Analyze runs AI image analysis for the draft. Usage is rate limited per
// user.
func (h *DraftHandler) Analyze(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	var req struct {
		ImageURL string `json:"image_url" binding:"required,url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "image_url is required", err)
		return
	}

	allowed, err := h.rateLimiter.CheckAnalysisAttempt(c.Request.Context(), userID)
	if err == nil && !allowed {
		response.Error(c, http.StatusTooManyRequests, "too many analysis requests, try again later", nil)
		return
	}

	d, err := h.draftService.Analyze(c.Request.Context(), userID, c.Param("id"), req.ImageURL)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "draft not found")
			return
		}
		response.Error(c, http.StatusBadGateway, "image analysis failed", err)
		return
	}
	response.Success(c, http.StatusOK, "image analyzed", d)
}

// ApplySuggestion merges the ready suggestion into the draft. With nothing
// ready it succeeds without changing anything.
func (h *DraftHandler) ApplySuggestion(c *gin.Context) {
	d, err := h.draftService.ApplySuggestion(c.Request.Context(), middleware.MustGetUserID(c), c.Param("id"))
	if err != nil {
		writeDraftError(c, err, "failed to apply suggestion")
		return
	}
	response.Success(c, http.StatusOK, "suggestion applied", d)
}

// DismissSuggestion discards the ready suggestion.
func (h *DraftHandler) DismissSuggestion(c *gin.Context) {
	d, err := h.draftService.DismissSuggestion(c.Request.Context(), middleware.MustGetUserID(c), c.Param("id"))
	if err != nil {
		writeDraftError(c, err, "failed to dismiss suggestion")
		return
	}
	response.Success(c, http.StatusOK, "suggestion dismissed", d)
}

// Submit validates the draft and publishes it as a listing. Validation
// failures come back as field errors with a 422.
func (h *DraftHandler) Submit(c *gin.Context) {
	result, err := h.draftService.Submit(c.Request.Context(), middleware.MustGetUserID(c), c.Param("id"))
	if err != nil {
		writeDraftError(c, err, "failed to submit draft")
		return
	}

	if result.FieldErrors != nil {
		response.Error(c, http.StatusUnprocessableEntity, "draft has validation errors", nil, result.FieldErrors)
		return
	}

	response.Success(c, http.StatusCreated, "ad published successfully", result.Ad)
}

// Discard drops the draft without submitting.
func (h *DraftHandler) Discard(c *gin.Context) {
	if err := h.draftService.Discard(c.Request.Context(), middleware.MustGetUserID(c), c.Param("id")); err != nil {
		writeDraftError(c, err, "failed to discard draft")
		return
	}
	response.Success(c, http.StatusOK, "draft discarded", nil)
}

func writeDraftError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		response.NotFound(c, "draft not found")
	case errors.Is(err, xerrors.ErrForbidden):
		response.Error(c, http.StatusForbidden, "not allowed", err)
	case errors.Is(err, xerrors.ErrInvalidInput):
		response.ValidationError(c, "invalid request", err)
	default:
		response.Error(c, http.StatusInternalServerError, fallback, err)
	}
}
