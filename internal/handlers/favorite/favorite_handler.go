// internal/handlers/favorite/favorite_handler.go
package favorite

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradeyardgit/TradeYard/internal/middleware"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
	"github.com/tradeyardgit/TradeYard/internal/pkg/response"
	service "github.com/tradeyardgit/TradeYard/internal/service/favorite"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	if err := h.favoriteService.Add(c.Request.Context(), userID, c.Param("adId")); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "ad not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to add favorite", err)
		return
	}

	response.Success(c, http.StatusOK, "added to favorites", nil)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	if err := h.favoriteService.Remove(c.Request.Context(), userID, c.Param("adId")); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to remove favorite", err)
		return
	}

	response.Success(c, http.StatusOK, "removed from favorites", nil)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	ads, err := h.favoriteService.List(c.Request.Context(), middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list favorites", err)
		return
	}

	response.Success(c, http.StatusOK, "favorites retrieved", ads)
}
