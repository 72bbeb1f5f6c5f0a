package mongodb

import (
	"context"
	"finance-tracker/api/models"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func CreateNotification(ctx context.Context, n *models.Notification) error {
	_, err := collection(NotificationCollection).InsertOne(ctx, n)
	if err != nil {
		return fmt.Errorf("error creating notification: %v", err)
	}
	return nil
}

func GetNotificationsByOwner(ctx context.Context, owner string) ([]models.Notification, error) {
	filter := bson.M{"owner": owner}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := collection(NotificationCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching notifications: %v", err)
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	for cursor.Next(ctx) {
		var n models.Notification
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("error decoding notification: %v", err)
		}
		notifications = append(notifications, n)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return notifications, nil
}

func MarkNotificationRead(ctx context.Context, owner, id string) (*models.Notification, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var n models.Notification
	err := collection(NotificationCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "owner": owner},
		bson.M{"$set": bson.M{"read": true}},
		opts,
	).Decode(&n)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
