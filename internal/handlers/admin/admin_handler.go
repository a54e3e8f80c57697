// internal/handlers/admin/admin_handler.go
package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	addomain "github.com/tradeyardgit/TradeYard/internal/domain/ad"
	"github.com/tradeyardgit/TradeYard/internal/domain/user"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
	"github.com/tradeyardgit/TradeYard/internal/pkg/response"
	adservice "github.com/tradeyardgit/TradeYard/internal/service/ad"
	authservice "github.com/tradeyardgit/TradeYard/internal/service/auth"
	ws "github.com/tradeyardgit/TradeYard/internal/websocket"
)

// AdminHandler backs the moderation screens: user management, listing
// moderation and marketplace stats.
type AdminHandler struct {
	adService   *adservice.AdService
	authService *authservice.AuthService
	hub         *ws.Hub
}

func NewAdminHandler(adService *adservice.AdService, authService *authservice.AuthService, hub *ws.Hub) *AdminHandler {
	return &AdminHandler{
		adService:   adService,
		authService: authService,
		hub:         hub,
	}
}

// ========== Users ==========

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list users", err)
		return
	}
	response.Success(c, http.StatusOK, "users retrieved", users)
}

// SetUserStatus suspends or reactivates an account.
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid user ID", err)
		return
	}

	var req struct {
		Status user.Status `json:"status" binding:"required,oneof=active suspended"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "status must be active or suspended", err)
		return
	}

	if err := h.authService.SetUserStatus(c.Request.Context(), userID, req.Status); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to set user status", err)
		return
	}

	response.Success(c, http.StatusOK, "user status updated", nil)
}

// ========== Listings ==========

// ListAds returns every listing, any status, with the same filters as the
// public list.
func (h *AdminHandler) ListAds(c *gin.Context) {
	ads, err := h.adService.ListAll(c.Request.Context(), parseAdminFilter(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list ads", err)
		return
	}
	response.Success(c, http.StatusOK, "ads retrieved", addomain.AdListResponse{Ads: ads, Total: len(ads)})
}

// SetAdStatus moderates one listing and notifies the seller.
func (h *AdminHandler) SetAdStatus(c *gin.Context) {
	adID := c.Param("id")

	var req struct {
		Status addomain.AdStatus `json:"status" binding:"required,oneof=active pending sold expired"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid status", err)
		return
	}

	a, err := h.adService.GetAd(c.Request.Context(), adID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "ad not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get ad", err)
		return
	}

	if err := h.adService.SetStatus(c.Request.Context(), adID, req.Status); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to set ad status", err)
		return
	}

	h.hub.NotifyAdStatus(a.SellerID, adID, string(req.Status))
	response.Success(c, http.StatusOK, "ad status updated", nil)
}

// SetAdFeatured toggles a listing's featured placement.
func (h *AdminHandler) SetAdFeatured(c *gin.Context) {
	var req struct {
		Featured *bool `json:"featured" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "featured flag is required", err)
		return
	}

	if err := h.adService.SetFeatured(c.Request.Context(), c.Param("id"), *req.Featured); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "ad not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to set featured", err)
		return
	}

	response.Success(c, http.StatusOK, "ad featured flag updated", nil)
}

// ========== Stats ==========

func (h *AdminHandler) GetStats(c *gin.Context) {
	adStats, err := h.adService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to get stats", err)
		return
	}

	userCount, err := h.authService.CountUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to get stats", err)
		return
	}

	response.Success(c, http.StatusOK, "stats retrieved", gin.H{
		"ads":   adStats,
		"users": userCount,
	})
}

// parseAdminFilter mirrors the public filter params; malformed numeric
// bounds are skipped.
func parseAdminFilter(c *gin.Context) addomain.Filter {
	f := addomain.Filter{
		CategoryID:  c.Query("category"),
		Subcategory: c.Query("subcategory"),
		LocationID:  c.Query("location"),
		SearchText:  c.Query("q"),
		SortKey:     addomain.SortNewest,
	}

	if v := c.Query("price_min"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMin = &p
		}
	}
	if v := c.Query("price_max"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMax = &p
		}
	}
	return f
}
