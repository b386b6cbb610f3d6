package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID keeps an incoming request id or assigns a new one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// requestLogger logs HTTP requests using slog
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString("request_id"),
		)
	}
}

func recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Error("panic recovered",
			"error", err,
			"path", c.Request.URL.Path,
			"request_id", c.GetString("request_id"),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}

var untrackedPrefixes = []string{"/static/", "/api/", "/admin", "/favicon", "/privacy", "/health"}

func tracked(c *gin.Context) bool {
	if c.Request.Method != http.MethodGet {
		return false
	}
	path := c.Request.URL.Path
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	// htmx fragments are part of a page that was already counted
	if c.GetHeader("HX-Request") == "true" {
		return false
	}
	return c.GetHeader("DNT") != "1"
}

// visitorTracking records page views with a hashed IP in the background.
// Each write is counted in pending so shutdown can wait for it.
func visitorTracking(store Analytics, pending *sync.WaitGroup, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tracked(c) {
			c.Next()
			return
		}

		ip, agent, path := c.ClientIP(), c.GetHeader("User-Agent"), c.Request.URL.Path
		pending.Add(1)
		go func() {
			defer pending.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.RecordVisit(ctx, ip, agent, path); err != nil {
				logger.Error("failed to record visitor", "error", err, "path", path)
			}
		}()
		c.Next()
	}
}
