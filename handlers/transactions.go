package handlers

import (
	"errors"
	"finance-tracker/api/alerts"
	"finance-tracker/api/cache"
	"finance-tracker/api/logger"
	"finance-tracker/api/models"
	"finance-tracker/api/mongodb"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

type recurrenceReq struct {
	Enabled   bool             `json:"enabled"`
	Frequency models.Frequency `json:"frequency" binding:"omitempty,oneof=once daily weekly monthly yearly"`
	EndDate   *time.Time       `json:"end_date"`
}

type createTransactionReq struct {
	Kind       models.TransactionKind `json:"kind" binding:"required,oneof=income expense"`
	Category   string                 `json:"category" binding:"required"`
	Amount     float64                `json:"amount"`
	Date       *time.Time             `json:"date"`
	Note       string                 `json:"note"`
	Recurrence *recurrenceReq         `json:"recurrence"`
}

// HandleCreateTransaction stores the transaction, then runs the two
// creation-time checks: budget threshold crossing (expenses with a matching
// monthly budget) and the bill-due reminder. Resulting events go to the
// dispatcher; they never fail the request.
func HandleCreateTransaction(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be non-negative"})
		return
	}

	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	tx := &models.Transaction{
		ID:        uuid.NewString(),
		Owner:     owner,
		Kind:      req.Kind,
		Category:  req.Category,
		Amount:    req.Amount,
		Date:      date,
		Note:      req.Note,
		CreatedAt: now,
	}
	if req.Recurrence != nil {
		frequency := req.Recurrence.Frequency
		if frequency == "" {
			frequency = models.FrequencyOnce
		}
		tx.Recurrence = &models.Recurrence{
			Enabled:   req.Recurrence.Enabled,
			Frequency: frequency,
			EndDate:   req.Recurrence.EndDate,
		}
	}

	ctx := c.Request.Context()
	events := []models.Event{}
	monthStart := startOfMonth(now)

	// Prior total is the month-to-date spend before this expense lands.
	if tx.Kind == models.KindExpense {
		budget, err := mongodb.GetBudget(ctx, owner, tx.Category, models.PeriodMonthly)
		switch {
		case err == nil:
			prior, hit := cache.GetMonthSpend(ctx, owner, tx.Category, monthStart)
			if !hit {
				prior, err = mongodb.MonthToDateSpend(ctx, owner, tx.Category, monthStart)
				if err != nil {
					logger.Get().Error("failed to aggregate month-to-date spend",
						zap.String("owner", owner),
						zap.String("category", tx.Category),
						zap.Error(err))
				} else {
					cache.SetMonthSpend(ctx, owner, tx.Category, monthStart, prior)
				}
			}
			if err == nil {
				events = append(events, alerts.BudgetEvents(owner, tx.Category, prior, tx.Amount, budget.Amount)...)
			}
		case !errors.Is(err, mongo.ErrNoDocuments):
			logger.Get().Error("failed to look up budget",
				zap.String("owner", owner),
				zap.String("category", tx.Category),
				zap.Error(err))
		}
	}

	if ev := alerts.BillReminder(tx, now); ev != nil {
		events = append(events, *ev)
	}

	if err := mongodb.CreateTransaction(ctx, tx); err != nil {
		logger.Get().Error("failed to create transaction",
			zap.String("owner", owner),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if tx.Kind == models.KindExpense {
		cache.InvalidateMonthSpend(ctx, owner, tx.Category, monthStart)
	}

	Dispatcher.Dispatch(ctx, events...)
	c.JSON(http.StatusOK, tx)
}

func HandleGetTransactions(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	transactions, err := mongodb.GetTransactionsByOwner(c.Request.Context(), owner)
	if err != nil {
		logger.Get().Error("failed to fetch transactions",
			zap.String("owner", owner),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

func HandleDeleteTransaction(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	id := c.Param("id")
	ctx := c.Request.Context()

	tx, err := mongodb.GetTransactionByID(ctx, owner, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := mongodb.DeleteTransaction(ctx, owner, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Get().Error("failed to delete transaction",
			zap.String("owner", owner),
			zap.String("transaction_id", id),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if tx.Kind == models.KindExpense {
		cache.InvalidateMonthSpend(ctx, owner, tx.Category, startOfMonth(time.Now()))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
