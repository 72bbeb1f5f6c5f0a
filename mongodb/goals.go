package mongodb

import (
	"context"
	"finance-tracker/api/models"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func CreateGoal(ctx context.Context, goal *models.Goal) error {
	_, err := collection(GoalCollection).InsertOne(ctx, goal)
	if err != nil {
		return fmt.Errorf("error creating goal: %v", err)
	}
	return nil
}

func GetGoalsByOwner(ctx context.Context, owner string) ([]models.Goal, error) {
	cursor, err := collection(GoalCollection).Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("error fetching goals: %v", err)
	}
	defer cursor.Close(ctx)

	goals := []models.Goal{}
	for cursor.Next(ctx) {
		var goal models.Goal
		if err := cursor.Decode(&goal); err != nil {
			return nil, fmt.Errorf("error decoding goal: %v", err)
		}
		goals = append(goals, goal)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return goals, nil
}

func GetGoalByID(ctx context.Context, owner, id string) (*models.Goal, error) {
	var goal models.Goal
	err := collection(GoalCollection).
		FindOne(ctx, bson.M{"_id": id, "owner": owner}).
		Decode(&goal)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoal applies an allow-listed set of field updates.
func UpdateGoal(ctx context.Context, owner, id string, updates bson.M) error {
	res, err := collection(GoalCollection).UpdateOne(
		ctx,
		bson.M{"_id": id, "owner": owner},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("error updating goal: %v", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ContributeToGoal atomically increments saved_amount and returns the goal
// as it was before the increment, so the caller can detect threshold
// crossings against the prior total.
func ContributeToGoal(ctx context.Context, owner, id string, amount float64) (*models.Goal, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var prior models.Goal
	err := collection(GoalCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "owner": owner},
		bson.M{"$inc": bson.M{"saved_amount": amount}},
		opts,
	).Decode(&prior)
	if err != nil {
		return nil, err
	}
	return &prior, nil
}

func DeleteGoal(ctx context.Context, owner, id string) error {
	res, err := collection(GoalCollection).
		DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return fmt.Errorf("error deleting goal: %v", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
