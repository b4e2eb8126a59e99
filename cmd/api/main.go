package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"messenger-backend/config"
	"messenger-backend/internal/handler"
	"messenger-backend/internal/redis"
	"messenger-backend/internal/repository"
	"messenger-backend/internal/services"
	"messenger-backend/internal/storage"
	"messenger-backend/pkg/database"
	"messenger-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == "release" {
		logMode = logger.ProductionMode
		gin.SetMode(gin.ReleaseMode)
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)

	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	chatService := services.NewChatService(chatRepo)

	// Redis and S3 are optional: without them the API still serves
	// messaging, just without rate limiting or uploads.
	var limiter *redis.RateLimiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redis.Ping(ctx, client); err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		cancel()
		limiter = redis.NewRateLimiter(client, redis.DefaultRateLimitConfig())
	}

	// Without S3 config the upload service stays up and answers 503.
	var s3Client *storage.Client
	if cfg.S3Bucket != "" {
		s3Client, err = storage.NewClient(context.Background(), storage.S3Config{
			Region:     cfg.S3Region,
			Bucket:     cfg.S3Bucket,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			Endpoint:   cfg.S3Endpoint,
			PublicBase: cfg.S3PublicBase,
			PresignTTL: 15 * time.Minute,
		})
		if err != nil {
			log.Fatalf("Failed to create s3 client: %v", err)
		}
	}
	uploadHandler := handler.NewUploadHandler(services.NewUploadService(s3Client))

	router := handler.NewRouter(handler.RouterConfig{
		Auth:        handler.NewAuthHandler(authService),
		Messages:    handler.NewMessagesHandler(chatService, userService),
		Search:      handler.NewSearchHandler(userService),
		Upload:      uploadHandler,
		AuthService: authService,
		Limiter:     limiter,
		Logger:      l,
	})

	l.Infof("Starting server on port %s", cfg.AppPort)
	if err := router.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
