package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires middlewares and routes. With an empty jwtSecret the webhook
// is open; otherwise it requires a valid bearer token.
func NewRouter(logger *zap.Logger, webhookH *WebhookHandler, jwtSecret string) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	webhook := r.Group("/webhook")
	if jwtSecret != "" {
		webhook.Use(JWTAuthMiddleware(jwtSecret))
	}
	webhook.POST("", webhookH.Handle)

	sessions := r.Group("/sessions")
	if jwtSecret != "" {
		sessions.Use(JWTAuthMiddleware(jwtSecret))
	}
	sessions.GET("/:session_id/turns", webhookH.ListTurns)

	return r
}

// zapLoggerMiddleware logs one line per request.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware forces Content-Type: application/json on responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
