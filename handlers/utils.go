package handlers

import (
	"finance-tracker/api/dispatch"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Dispatcher receives every event the request handlers produce. Set once
// from main before the router starts serving.
var Dispatcher *dispatch.Dispatcher

func ownerFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}

	owner, ok := v.(string)
	if !ok || owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return owner, true
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
