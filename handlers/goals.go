package handlers

import (
	"encoding/json"
	"errors"
	"finance-tracker/api/alerts"
	"finance-tracker/api/logger"
	"finance-tracker/api/models"
	"finance-tracker/api/mongodb"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

type createGoalReq struct {
	Name         string     `json:"name" binding:"required"`
	TargetAmount float64    `json:"target_amount" binding:"required,gt=0"`
	Deadline     *time.Time `json:"deadline"`
}

func HandleCreateGoal(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var req createGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal := &models.Goal{
		ID:           uuid.NewString(),
		Owner:        owner,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		SavedAmount:  0,
		Deadline:     req.Deadline,
		CreatedAt:    time.Now(),
	}

	if err := mongodb.CreateGoal(c.Request.Context(), goal); err != nil {
		logger.Get().Error("failed to create goal",
			zap.String("owner", owner),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goal)
}

func HandleGetGoals(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	goals, err := mongodb.GetGoalsByOwner(c.Request.Context(), owner)
	if err != nil {
		logger.Get().Error("failed to fetch goals",
			zap.String("owner", owner),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goals)
}

// updateGoalReq is the allow-list for goal updates. The decoder rejects any
// field outside it instead of merging arbitrary request data.
type updateGoalReq struct {
	Name         *string    `json:"name"`
	TargetAmount *float64   `json:"target_amount"`
	SavedAmount  *float64   `json:"saved_amount"`
	Deadline     *time.Time `json:"deadline"`
}

func HandleUpdateGoal(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req updateGoalReq
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown or malformed field: " + err.Error()})
		return
	}
	if req.TargetAmount != nil && *req.TargetAmount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_amount must be positive"})
		return
	}
	if req.SavedAmount != nil && *req.SavedAmount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "saved_amount must be non-negative"})
		return
	}

	ctx := c.Request.Context()
	goal, err := mongodb.GetGoalByID(ctx, owner, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	prior := goal.SavedAmount
	updates := bson.M{}
	if req.Name != nil {
		goal.Name = *req.Name
		updates["name"] = *req.Name
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
		updates["target_amount"] = *req.TargetAmount
	}
	if req.SavedAmount != nil {
		goal.SavedAmount = *req.SavedAmount
		updates["saved_amount"] = *req.SavedAmount
	}
	if req.Deadline != nil {
		goal.Deadline = req.Deadline
		updates["deadline"] = *req.Deadline
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, goal)
		return
	}

	if err := mongodb.UpdateGoal(ctx, owner, id, updates); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		logger.Get().Error("failed to update goal",
			zap.String("owner", owner),
			zap.String("goal_id", id),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// A direct write that lands the saved amount at or past the target is a
	// crossing too; delta is measured from the zero-floored prior value.
	if req.SavedAmount != nil {
		if prior < 0 {
			prior = 0
		}
		Dispatcher.Dispatch(ctx, alerts.GoalEvents(goal, prior, *req.SavedAmount-prior)...)
	}

	c.JSON(http.StatusOK, goal)
}

type contributeReq struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// HandleContributeToGoal atomically increments the saved amount. Threshold
// events are computed against the pre-increment value returned by the store.
func HandleContributeToGoal(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req contributeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	prior, err := mongodb.ContributeToGoal(ctx, owner, id, req.Amount)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		logger.Get().Error("failed to contribute to goal",
			zap.String("owner", owner),
			zap.String("goal_id", id),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	Dispatcher.Dispatch(ctx, alerts.GoalEvents(prior, prior.SavedAmount, req.Amount)...)

	updated := *prior
	updated.SavedAmount += req.Amount
	c.JSON(http.StatusOK, updated)
}

func HandleDeleteGoal(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := mongodb.DeleteGoal(c.Request.Context(), owner, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		logger.Get().Error("failed to delete goal",
			zap.String("owner", owner),
			zap.String("goal_id", id),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
