package handlers

import (
	"errors"
	"finance-tracker/api/logger"
	"finance-tracker/api/models"
	"finance-tracker/api/mongodb"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

type upsertBudgetReq struct {
	Category string              `json:"category" binding:"required"`
	Amount   float64             `json:"amount" binding:"required,gt=0"`
	Period   models.BudgetPeriod `json:"period" binding:"omitempty,oneof=monthly yearly"`
}

// HandleUpsertBudget creates or replaces the budget for
// (owner, category, period).
func HandleUpsertBudget(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var req upsertBudgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Period == "" {
		req.Period = models.PeriodMonthly
	}

	budget, err := mongodb.UpsertBudget(c.Request.Context(), owner, req.Category, req.Amount, req.Period)
	if err != nil {
		logger.Get().Error("failed to upsert budget",
			zap.String("owner", owner),
			zap.String("category", req.Category),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, budget)
}

func HandleGetBudgets(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	budgets, err := mongodb.GetBudgetsByOwner(c.Request.Context(), owner)
	if err != nil {
		logger.Get().Error("failed to fetch budgets",
			zap.String("owner", owner),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, budgets)
}

func HandleDeleteBudget(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := mongodb.DeleteBudget(c.Request.Context(), owner, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
			return
		}
		logger.Get().Error("failed to delete budget",
			zap.String("owner", owner),
			zap.String("budget_id", id),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
