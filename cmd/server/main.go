package main

import (
	"context"
	"log"

	"github.com/thehfpv/backend/internal/application/services"
	"github.com/thehfpv/backend/internal/config"
	"github.com/thehfpv/backend/internal/delivery/handler"
	"github.com/thehfpv/backend/internal/infrastructure"
	"github.com/thehfpv/backend/internal/infrastructure/db/postgres"
	"github.com/thehfpv/backend/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.NewDefault()
	ctx := context.Background()

	db, err := postgres.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	visitRepo := postgres.NewVisitRepository(db)

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.JWTValidity)
	rateLimiter := infrastructure.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMaxRequests)

	var emailSender infrastructure.EmailSender = infrastructure.NoopSender{}
	if cfg.EmailEnabled {
		emailSender = infrastructure.NewSendGridSender(cfg.EmailAPIKey, cfg.EmailSender)
	}

	var sessionStore infrastructure.SessionStore
	if client := infrastructure.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); client != nil {
		sessionStore = infrastructure.NewRedisSessionStore(client)
		logger.Info(ctx, "session store backed by redis", "addr", cfg.RedisAddr)
	} else {
		sessionStore = infrastructure.NewMemorySessionStore()
		logger.Warn(ctx, "redis unavailable, using in-memory session store")
	}

	var fileStore infrastructure.FileStore
	if cfg.S3Enabled {
		fileStore, err = infrastructure.NewS3FileStore(ctx, cfg.S3User, cfg.S3Password, cfg.S3Region, cfg.S3Endpoint, cfg.S3Bucket, cfg.UploadBaseURL)
	} else {
		fileStore, err = infrastructure.NewLocalFileStore(cfg.UploadDir, cfg.UploadBaseURL)
	}
	if err != nil {
		log.Fatalf("file store: %v", err)
	}

	oauthClient := infrastructure.NewGoogleOAuthClient(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectURL)

	authService := services.NewAuthService(userRepo, jwtService, emailSender, rateLimiter, logger)
	oauthService := services.NewOAuthService(userRepo, logger)
	visitorService := services.NewVisitorService(visitRepo, logger)
	adminService := services.NewAdminService(userRepo, logger)

	routers := handler.Routers{
		Auth:    handler.NewAuthHandler(authService, sessionStore, logger),
		OAuth:   handler.NewOAuthHandler(oauthClient, oauthService, jwtService, sessionStore, cfg.FrontendURL, cfg.SessionTTL, logger),
		Visitor: handler.NewVisitorHandler(visitorService, logger),
		Upload:  handler.NewUploadHandler(fileStore, cfg.MaxUploadMB, logger),
		Admin:   handler.NewAdminHandler(adminService, logger),
	}

	e := handler.NewRouter(
		routers,
		handler.AuthGate(jwtService, authService, logger),
		handler.DefaultAccessPolicy(),
		handler.GlobalRateLimit(cfg.GlobalRatePerSecond, cfg.GlobalRateBurst),
		cfg.FrontendURL,
		cfg.UploadDir,
	)

	logger.Info(ctx, "server starting", "addr", cfg.ListenAddr)
	if err := e.Start(cfg.ListenAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
