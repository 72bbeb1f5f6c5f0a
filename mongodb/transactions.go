package mongodb

import (
	"context"
	"finance-tracker/api/models"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	_, err := collection(TransactionCollection).InsertOne(ctx, tx)
	if err != nil {
		return fmt.Errorf("error creating transaction: %v", err)
	}
	return nil
}

func GetTransactionsByOwner(ctx context.Context, owner string) ([]models.Transaction, error) {
	filter := bson.M{"owner": owner}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := collection(TransactionCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching transactions: %v", err)
	}
	defer cursor.Close(ctx)

	transactions := []models.Transaction{}
	for cursor.Next(ctx) {
		var tx models.Transaction
		if err := cursor.Decode(&tx); err != nil {
			return nil, fmt.Errorf("error decoding transaction: %v", err)
		}
		transactions = append(transactions, tx)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return transactions, nil
}

func GetTransactionByID(ctx context.Context, owner, id string) (*models.Transaction, error) {
	var tx models.Transaction
	err := collection(TransactionCollection).
		FindOne(ctx, bson.M{"_id": id, "owner": owner}).
		Decode(&tx)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// DeleteTransaction removes an owned transaction. Returns
// mongo.ErrNoDocuments when no matching record exists.
func DeleteTransaction(ctx context.Context, owner, id string) error {
	res, err := collection(TransactionCollection).
		DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return fmt.Errorf("error deleting transaction: %v", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// MonthToDateSpend sums this owner's expenses in the category since the
// start of the current calendar month. Always an aggregation over the
// stored records, never a cached running total.
func MonthToDateSpend(ctx context.Context, owner, category string, monthStart time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"owner":    owner,
			"category": category,
			"kind":     models.KindExpense,
			"date":     bson.M{"$gte": monthStart},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := collection(TransactionCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error aggregating spend: %v", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("error decoding spend aggregate: %v", err)
		}
	}
	if err := cursor.Err(); err != nil {
		return 0, fmt.Errorf("cursor error: %v", err)
	}

	return result.Total, nil
}

// GetRecurringTemplates returns every enabled recurring transaction across
// all owners, for the daily sweep.
func GetRecurringTemplates(ctx context.Context) ([]models.Transaction, error) {
	filter := bson.M{"recurrence.enabled": true}

	cursor, err := collection(TransactionCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching recurring templates: %v", err)
	}
	defer cursor.Close(ctx)

	templates := []models.Transaction{}
	for cursor.Next(ctx) {
		var tx models.Transaction
		if err := cursor.Decode(&tx); err != nil {
			return nil, fmt.Errorf("error decoding template: %v", err)
		}
		templates = append(templates, tx)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return templates, nil
}

// StampRecurrence records that a template fired on the given day so a
// repeated sweep does not materialize it twice.
func StampRecurrence(ctx context.Context, id string, ranOn time.Time) error {
	_, err := collection(TransactionCollection).UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"recurrence.last_run_date": ranOn}},
	)
	if err != nil {
		return fmt.Errorf("error stamping recurrence: %v", err)
	}
	return nil
}
