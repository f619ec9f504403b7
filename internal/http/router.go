// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"activabot/internal/bot"
	"activabot/internal/http/handlers"
	"activabot/internal/http/middleware"
)

type RouterDeps struct {
	Bot *bot.Service
	// Redis is optional; nil disables rate limiting.
	Redis         *redis.Client
	RatePerMinute int
	Log           *logrus.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))

	chatHandler := handlers.NewChatHandler(deps.Bot)
	api := r.Group("/api")
	api.Use(middleware.RateLimit(deps.Redis, deps.RatePerMinute, deps.Log))
	api.POST("/chat", chatHandler.Chat)

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
	})
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
