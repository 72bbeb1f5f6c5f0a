package mongodb

import (
	"context"
	"finance-tracker/api/logger"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

var (
	TransactionCollection  string = "transactions"
	BudgetCollection       string = "budgets"
	GoalCollection         string = "goals"
	NotificationCollection string = "notifications"
	MongoDatabase          string = "finance"
	MongoClient            *mongo.Client
)

func InitMongoDB() error {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return fmt.Errorf("MONGO_URI environment variable not set")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(mongoURI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		logger.Get().Error("failed to connect to MongoDB",
			zap.Error(err))
		return fmt.Errorf("error connecting to MongoDB: %v", err)
	}

	MongoClient = client
	logger.Get().Info("successfully connected to MongoDB")
	return nil
}

func Ping(ctx context.Context) error {
	if MongoClient == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	return MongoClient.Ping(ctx, nil)
}

func CloseMongoDB() {
	if MongoClient != nil {
		if err := MongoClient.Disconnect(context.TODO()); err != nil {
			logger.Get().Error("failed to disconnect from MongoDB",
				zap.Error(err))
			return
		}
		logger.Get().Info("successfully disconnected from MongoDB")
	}
}

func collection(name string) *mongo.Collection {
	return MongoClient.Database(MongoDatabase).Collection(name)
}
