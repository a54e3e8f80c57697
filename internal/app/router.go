// internal/app/router.go
package app

import (
	"github.com/gin-gonic/gin"

	adHandler "github.com/tradeyardgit/TradeYard/internal/handlers/ad"
	adminHandler "github.com/tradeyardgit/TradeYard/internal/handlers/admin"
	authHandler "github.com/tradeyardgit/TradeYard/internal/handlers/auth"
	catalogHandler "github.com/tradeyardgit/TradeYard/internal/handlers/catalog"
	contactHandler "github.com/tradeyardgit/TradeYard/internal/handlers/contact"
	draftHandler "github.com/tradeyardgit/TradeYard/internal/handlers/draft"
	favoriteHandler "github.com/tradeyardgit/TradeYard/internal/handlers/favorite"
	uploadHandler "github.com/tradeyardgit/TradeYard/internal/handlers/upload"
	wsHandler "github.com/tradeyardgit/TradeYard/internal/handlers/websocket"
	"github.com/tradeyardgit/TradeYard/internal/middleware"
)

type Handlers struct {
	AdHandler       *adHandler.AdHandler
	AuthHandler     *authHandler.AuthHandler
	CatalogHandler  *catalogHandler.CatalogHandler
	DraftHandler    *draftHandler.DraftHandler
	FavoriteHandler *favoriteHandler.FavoriteHandler
	ContactHandler  *contactHandler.ContactHandler
	UploadHandler   *uploadHandler.UploadHandler
	AdminHandler    *adminHandler.AdminHandler
	WSHandler       *wsHandler.WSHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.WSHandler.Connect)

	// ==================== Auth ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/register", h.AuthHandler.Register)
		authPublic.POST("/login", h.AuthHandler.Login)
		authPublic.POST("/forgot-password", h.AuthHandler.ForgotPassword)
		authPublic.POST("/reset-password", h.AuthHandler.ResetPassword)
	}

	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.GET("/me", h.AuthHandler.GetProfile)
		authProtected.PUT("/profile", h.AuthHandler.UpdateProfile)
	}

	// ==================== Catalog ====================
	catalog := api.Group("/catalog")
	{
		catalog.GET("/categories", h.CatalogHandler.ListCategories)
		catalog.GET("/categories/:id/subcategories", h.CatalogHandler.GetSubcategories)
		catalog.GET("/locations", h.CatalogHandler.ListLocations)
		catalog.GET("/conditions", h.CatalogHandler.ListConditions)
	}

	// ==================== Ads ====================
	ads := api.Group("/ads")
	{
		ads.GET("", h.AdHandler.ListAds)
		ads.GET("/featured", h.AdHandler.GetFeaturedAds)
		ads.GET("/:id", h.AdHandler.GetAd)

		adsAuth := ads.Group("")
		adsAuth.Use(h.AuthMiddleware.Auth())
		{
			adsAuth.POST("", h.AdHandler.CreateAd)
			adsAuth.GET("/mine", h.AdHandler.MyAds)
			adsAuth.PATCH("/:id", h.AdHandler.UpdateAd)
			adsAuth.POST("/:id/sold", h.AdHandler.MarkSold)
			adsAuth.DELETE("/:id", h.AdHandler.DeleteAd)
			adsAuth.POST("/:id/messages", h.ContactHandler.SendMessage)
		}
	}

	// ==================== Drafts ====================
	drafts := api.Group("/drafts")
	drafts.Use(h.AuthMiddleware.Auth())
	{
		drafts.POST("", h.DraftHandler.StartDraft)
		drafts.GET("/:id", h.DraftHandler.GetDraft)
		drafts.PATCH("/:id", h.DraftHandler.UpdateDraft)
		drafts.POST("/:id/analyze", h.DraftHandler.Analyze)
		drafts.POST("/:id/suggestion/apply", h.DraftHandler.ApplySuggestion)
		drafts.POST("/:id/suggestion/dismiss", h.DraftHandler.DismissSuggestion)
		drafts.POST("/:id/submit", h.DraftHandler.Submit)
		drafts.DELETE("/:id", h.DraftHandler.Discard)
	}

	// ==================== Uploads ====================
	uploads := api.Group("/uploads")
	uploads.Use(h.AuthMiddleware.Auth())
	{
		uploads.POST("/images", h.UploadHandler.UploadImage)
	}

	// ==================== Favorites ====================
	favorites := api.Group("/favorites")
	favorites.Use(h.AuthMiddleware.Auth())
	{
		favorites.GET("", h.FavoriteHandler.List)
		favorites.PUT("/:adId", h.FavoriteHandler.Add)
		favorites.DELETE("/:adId", h.FavoriteHandler.Remove)
	}

	// ==================== Messages ====================
	messages := api.Group("/messages")
	messages.Use(h.AuthMiddleware.Auth())
	{
		messages.GET("", h.ContactHandler.Inbox)
	}

	// ==================== Admin ====================
	admin := api.Group("/admin")
	admin.Use(h.AuthMiddleware.AdminOnly()...)
	{
		admin.GET("/users", h.AdminHandler.ListUsers)
		admin.PATCH("/users/:id/status", h.AdminHandler.SetUserStatus)
		admin.GET("/ads", h.AdminHandler.ListAds)
		admin.PATCH("/ads/:id/status", h.AdminHandler.SetAdStatus)
		admin.PATCH("/ads/:id/featured", h.AdminHandler.SetAdFeatured)
		admin.GET("/stats", h.AdminHandler.GetStats)
	}
}
