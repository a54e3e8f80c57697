// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tradeyardgit/TradeYard/internal/config"
	"github.com/tradeyardgit/TradeYard/internal/db"
	catalogdomain "github.com/tradeyardgit/TradeYard/internal/domain/catalog"
	"github.com/tradeyardgit/TradeYard/internal/domain/suggestion"
	adHandler "github.com/tradeyardgit/TradeYard/internal/handlers/ad"
	adminHandler "github.com/tradeyardgit/TradeYard/internal/handlers/admin"
	authHandler "github.com/tradeyardgit/TradeYard/internal/handlers/auth"
	catalogHandler "github.com/tradeyardgit/TradeYard/internal/handlers/catalog"
	contactHandler "github.com/tradeyardgit/TradeYard/internal/handlers/contact"
	draftHandler "github.com/tradeyardgit/TradeYard/internal/handlers/draft"
	favoriteHandler "github.com/tradeyardgit/TradeYard/internal/handlers/favorite"
	uploadHandler "github.com/tradeyardgit/TradeYard/internal/handlers/upload"
	wsHandler "github.com/tradeyardgit/TradeYard/internal/handlers/websocket"
	"github.com/tradeyardgit/TradeYard/internal/messaging/nats"
	"github.com/tradeyardgit/TradeYard/internal/middleware"
	"github.com/tradeyardgit/TradeYard/internal/pkg/jwt"
	"github.com/tradeyardgit/TradeYard/internal/pkg/ratelimit"
	"github.com/tradeyardgit/TradeYard/internal/repository/cache"
	"github.com/tradeyardgit/TradeYard/internal/repository/postgres"
	adservice "github.com/tradeyardgit/TradeYard/internal/service/ad"
	"github.com/tradeyardgit/TradeYard/internal/service/analysis"
	authservice "github.com/tradeyardgit/TradeYard/internal/service/auth"
	contactservice "github.com/tradeyardgit/TradeYard/internal/service/contact"
	draftservice "github.com/tradeyardgit/TradeYard/internal/service/draft"
	"github.com/tradeyardgit/TradeYard/internal/service/email"
	favoriteservice "github.com/tradeyardgit/TradeYard/internal/service/favorite"
	"github.com/tradeyardgit/TradeYard/internal/storage/s3"
	"github.com/tradeyardgit/TradeYard/internal/websocket"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB()
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// ----- JWT Manager -----
	jwtManager, err := jwt.LoadAndBuild(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to load JWT manager: %w", err)
	}

	// ----- Catalog -----
	catalog := catalogdomain.Default()

	// ----- Rate Limiter -----
	rateLimiter := ratelimit.NewRateLimiter(redisClient)

	// ----- Email -----
	emailSender := email.NewSender(
		s.cfg.SMTPHost,
		s.cfg.SMTPPort,
		s.cfg.SMTPUser,
		s.cfg.SMTPPass,
		s.cfg.SMTPFromName,
		s.cfg.SMTPSecure,
	)

	// ----- Image storage -----
	imageStorage, err := s3.NewImageStorage(
		s.cfg.S3Endpoint,
		s.cfg.S3AccessKey,
		s.cfg.S3SecretKey,
		s.cfg.S3Bucket,
		s.cfg.S3UseSSL,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to init image storage: %w", err)
	}

	// ----- Event bus -----
	publisher, err := nats.NewPublisher(s.cfg.NATSURL, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer publisher.Close()

	// ----- Repositories -----
	adRepo := postgres.NewAdRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	favoriteRepo := postgres.NewFavoriteRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)
	adCache := cache.NewAdCache(redisClient)
	draftStore := cache.NewDraftStore(redisClient)

	// ----- WebSocket Hub -----
	hub := websocket.NewHub(jwtManager.Verifier, logger)
	go hub.Run(ctx)

	// ----- Services -----
	analysisClient := analysis.NewClient(s.cfg.GeminiAPIKey, s.cfg.GeminiModel, catalog, logger)
	reconciler := suggestion.NewReconciler(catalog)

	adService := adservice.NewAdService(adRepo, adCache, publisher, catalog, logger)
	authService := authservice.NewAuthService(userRepo, jwtManager, rateLimiter, emailSender, s.cfg.BaseURL, logger)
	draftService := draftservice.NewDraftService(draftStore, analysisClient, reconciler, adService, catalog, logger)
	favoriteService := favoriteservice.NewFavoriteService(favoriteRepo, adService, logger)
	contactService := contactservice.NewContactService(messageRepo, userRepo, adService, hub, emailSender, s.cfg.BaseURL, logger)

	// ----- Handlers -----
	adHandlerInst := adHandler.NewAdHandler(adService)
	authHandlerInst := authHandler.NewAuthHandler(authService)
	catalogHandlerInst := catalogHandler.NewCatalogHandler(catalog)
	draftHandlerInst := draftHandler.NewDraftHandler(draftService, rateLimiter)
	favoriteHandlerInst := favoriteHandler.NewFavoriteHandler(favoriteService)
	contactHandlerInst := contactHandler.NewContactHandler(contactService)
	uploadHandlerInst := uploadHandler.NewUploadHandler(imageStorage)
	adminHandlerInst := adminHandler.NewAdminHandler(adService, authService, hub)
	wsHandlerInst := wsHandler.NewWSHandler(hub, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(jwtManager.Verifier)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AdHandler:       adHandlerInst,
		AuthHandler:     authHandlerInst,
		CatalogHandler:  catalogHandlerInst,
		DraftHandler:    draftHandlerInst,
		FavoriteHandler: favoriteHandlerInst,
		ContactHandler:  contactHandlerInst,
		UploadHandler:   uploadHandlerInst,
		AdminHandler:    adminHandlerInst,
		WSHandler:       wsHandlerInst,
		AuthMiddleware:  authMiddleware,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
