package handler

import (
	"net/http"

	"messenger-backend/internal/middleware"
	"messenger-backend/internal/redis"
	"messenger-backend/internal/services"
	"messenger-backend/internal/transport/httpdto"
	"messenger-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RouterConfig collects everything the router needs. Limiter and Upload
// are optional; routes depending on them degrade gracefully when nil.
type RouterConfig struct {
	Auth        *AuthHandler
	Messages    *MessagesHandler
	Search      *SearchHandler
	Upload      *UploadHandler
	AuthService *services.AuthService
	Limiter     *redis.RateLimiter
	Logger      *logger.Logger
}

// NewRouter builds the gin engine with the full middleware chain and
// all API routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(cfg.Logger))
	r.Use(middleware.CORSMiddleware())

	// Anything outside the published route/method surface answers with
	// the same fixed envelope as an unknown action.
	r.HandleMethodNotAllowed = true
	badRequest := func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgInvalidRequest))
	}
	r.NoRoute(badRequest)
	r.NoMethod(badRequest)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	authPost := []gin.HandlerFunc{}
	if cfg.Limiter != nil {
		authPost = append(authPost, middleware.AuthRateLimitMiddleware(cfg.Limiter))
	}
	authPost = append(authPost, cfg.Auth.HandlePost)
	r.POST("/auth", authPost...)
	r.GET("/auth", cfg.Auth.HandleGet)

	messagesPost := []gin.HandlerFunc{}
	if cfg.Limiter != nil {
		messagesPost = append(messagesPost, middleware.MessageRateLimitMiddleware(cfg.Limiter))
	}
	messagesPost = append(messagesPost, cfg.Messages.HandlePost)
	r.POST("/messages", messagesPost...)
	r.GET("/messages", cfg.Messages.HandleGet)

	r.GET("/search-users", cfg.Search.HandleGet)
	r.POST("/search-users", cfg.Search.HandlePost)

	if cfg.Upload != nil {
		r.POST("/uploads/presign", middleware.AuthMiddleware(cfg.AuthService), cfg.Upload.Presign)
	}

	return r
}
