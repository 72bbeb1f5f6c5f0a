package mongodb

import (
	"context"
	"finance-tracker/api/models"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UpsertBudget writes the budget for (owner, category, period), creating it
// if absent. The unique key keeps at most one budget per tuple.
func UpsertBudget(ctx context.Context, owner, category string, amount float64, period models.BudgetPeriod) (*models.Budget, error) {
	filter := bson.M{
		"owner":    owner,
		"category": category,
		"period":   period,
	}
	update := bson.M{
		"$set": bson.M{"amount": amount},
		"$setOnInsert": bson.M{
			"_id":        uuid.NewString(),
			"owner":      owner,
			"category":   category,
			"period":     period,
			"created_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var budget models.Budget
	err := collection(BudgetCollection).
		FindOneAndUpdate(ctx, filter, update, opts).
		Decode(&budget)
	if err != nil {
		return nil, fmt.Errorf("error upserting budget: %v", err)
	}
	return &budget, nil
}

// GetBudget looks up the budget covering (owner, category, period). Returns
// mongo.ErrNoDocuments when none is set.
func GetBudget(ctx context.Context, owner, category string, period models.BudgetPeriod) (*models.Budget, error) {
	var budget models.Budget
	err := collection(BudgetCollection).
		FindOne(ctx, bson.M{"owner": owner, "category": category, "period": period}).
		Decode(&budget)
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

func GetBudgetsByOwner(ctx context.Context, owner string) ([]models.Budget, error) {
	cursor, err := collection(BudgetCollection).Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("error fetching budgets: %v", err)
	}
	defer cursor.Close(ctx)

	budgets := []models.Budget{}
	for cursor.Next(ctx) {
		var budget models.Budget
		if err := cursor.Decode(&budget); err != nil {
			return nil, fmt.Errorf("error decoding budget: %v", err)
		}
		budgets = append(budgets, budget)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return budgets, nil
}

func DeleteBudget(ctx context.Context, owner, id string) error {
	res, err := collection(BudgetCollection).
		DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return fmt.Errorf("error deleting budget: %v", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
