package handlers

import (
	"database/sql"
	"errors"
	"finance-tracker/api/db"
	"finance-tracker/api/logger"
	"finance-tracker/api/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleGetProfile returns the caller's stored preferences, or defaults if
// none were ever written.
func HandleGetProfile(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	if !db.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Profile store not configured"})
		return
	}

	profile, err := db.GetProfileByUserID(owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusOK, models.UserProfile{UserID: owner, Currency: "USD"})
			return
		}
		logger.Get().Error("failed to fetch profile",
			zap.String("owner", owner),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

type updateProfileReq struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
}

func HandleUpdateProfile(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	if !db.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Profile store not configured"})
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := &models.UserProfile{
		UserID:   owner,
		Name:     req.Name,
		Country:  req.Country,
		Currency: req.Currency,
	}
	if profile.Currency == "" {
		profile.Currency = "USD"
	}

	if err := db.UpsertProfile(profile); err != nil {
		logger.Get().Error("failed to update profile",
			zap.String("owner", owner),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": profile})
}
