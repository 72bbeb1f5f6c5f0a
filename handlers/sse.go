package handlers

import (
	"encoding/json"
	"finance-tracker/api/logger"
	"finance-tracker/api/middleware"
	"finance-tracker/api/sse"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleNotificationStream attaches the client to their live notification
// stream. EventSource cannot set headers, so the token arrives as a query
// parameter.
func HandleNotificationStream(c *gin.Context) {
	tokenString := c.DefaultQuery("token", "")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid token"})
		return
	}

	claims, err := middleware.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}
	owner := claims.Subject

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.String(http.StatusInternalServerError, "Streaming unsupported!")
		return
	}

	stream := sse.Register(owner)
	defer sse.Unregister(owner, stream)

	logger.Get().Debug("notification stream attached",
		zap.String("owner", owner))

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case n, ok := <-stream.Notifications:
			if !ok {
				return false
			}
			payload, err := json.Marshal(n)
			if err != nil {
				logger.Get().Error("failed to marshal notification",
					zap.String("owner", owner),
					zap.Error(err))
				return true
			}
			c.Writer.Write([]byte("data: " + string(payload) + "\n\n"))
			flusher.Flush()
			return true
		case <-c.Request.Context().Done():
			return false
		case <-stream.Done:
			return false
		}
	})

	logger.Get().Debug("notification stream closed",
		zap.String("owner", owner))
}
