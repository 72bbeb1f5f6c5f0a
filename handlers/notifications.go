package handlers

import (
	"errors"
	"finance-tracker/api/logger"
	"finance-tracker/api/mongodb"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

func HandleGetNotifications(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	notifications, err := mongodb.GetNotificationsByOwner(c.Request.Context(), owner)
	if err != nil {
		logger.Get().Error("failed to fetch notifications",
			zap.String("owner", owner),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func HandleMarkNotificationRead(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	id := c.Param("id")
	notification, err := mongodb.MarkNotificationRead(c.Request.Context(), owner, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		logger.Get().Error("failed to mark notification read",
			zap.String("owner", owner),
			zap.String("notification_id", id),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notification)
}
