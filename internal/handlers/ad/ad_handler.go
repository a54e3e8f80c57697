// internal/handlers/ad/ad_handler.go
package ad

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	addomain "github.com/tradeyardgit/TradeYard/internal/domain/ad"
	"github.com/tradeyardgit/TradeYard/internal/middleware"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
	"github.com/tradeyardgit/TradeYard/internal/pkg/response"
	service "github.com/tradeyardgit/TradeYard/internal/service/ad"
)

type AdHandler struct {
	adService *service.AdService
}

func NewAdHandler(adService *service.AdService) *AdHandler {
	return &AdHandler{adService: adService}
}

// ListAds returns active listings matching the query filters.
func (h *AdHandler) ListAds(c *gin.Context) {
	f := parseFilter(c)

	ads, err := h.adService.ListAds(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list ads", err)
		return
	}

	response.Success(c, http.StatusOK, "ads retrieved", addomain.AdListResponse{
		Ads:   ads,
		Total: len(ads),
	})
}

// GetFeaturedAds returns up to limit featured listings.
func (h *AdHandler) GetFeaturedAds(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	ads, err := h.adService.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list featured ads", err)
		return
	}

	response.Success(c, http.StatusOK, "featured ads retrieved", ads)
}

// GetAd returns one listing by id.
func (h *AdHandler) GetAd(c *gin.Context) {
	a, err := h.adService.GetAd(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "ad not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get ad", err)
		return
	}

	response.Success(c, http.StatusOK, "ad retrieved", a)
}

// MyAds returns the authenticated seller's own listings, any status.
func (h *AdHandler) MyAds(c *gin.Context) {
	sellerID := middleware.MustGetUserID(c)

	ads, err := h.adService.ListBySeller(c.Request.Context(), sellerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list your ads", err)
		return
	}

	response.Success(c, http.StatusOK, "ads retrieved", ads)
}

// CreateAd inserts a new listing for the authenticated seller.
func (h *AdHandler) CreateAd(c *gin.Context) {
	sellerID := middleware.MustGetUserID(c)

	var req addomain.CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	a, err := h.adService.CreateAd(c.Request.Context(), sellerID, middleware.IsAdmin(c), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidInput) {
			response.ValidationError(c, "invalid ad", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create ad", err)
		return
	}

	response.Success(c, http.StatusCreated, "ad created successfully", a)
}

// UpdateAd replaces the named fields of a listing.
func (h *AdHandler) UpdateAd(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	var req addomain.UpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	a, err := h.adService.UpdateAd(c.Request.Context(), c.Param("id"), userID, middleware.IsAdmin(c), &req)
	if err != nil {
		writeAdError(c, err, "failed to update ad")
		return
	}

	response.Success(c, http.StatusOK, "ad updated successfully", a)
}

// MarkSold marks the authenticated seller's listing as sold.
func (h *AdHandler) MarkSold(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	if err := h.adService.MarkSold(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeAdError(c, err, "failed to mark ad sold")
		return
	}

	response.Success(c, http.StatusOK, "ad marked as sold", nil)
}

// DeleteAd removes a listing.
func (h *AdHandler) DeleteAd(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	if err := h.adService.DeleteAd(c.Request.Context(), c.Param("id"), userID, middleware.IsAdmin(c)); err != nil {
		writeAdError(c, err, "failed to delete ad")
		return
	}

	response.Success(c, http.StatusOK, "ad deleted successfully", nil)
}

func writeAdError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		response.NotFound(c, "ad not found")
	case errors.Is(err, xerrors.ErrForbidden):
		response.Error(c, http.StatusForbidden, "not allowed", err)
	case errors.Is(err, xerrors.ErrInvalidInput):
		response.ValidationError(c, "invalid request", err)
	default:
		response.Error(c, http.StatusInternalServerError, fallback, err)
	}
}
