package main

import (
	"context"
	"finance-tracker/api/cache"
	"finance-tracker/api/db"
	"finance-tracker/api/dispatch"
	"finance-tracker/api/handlers"
	"finance-tracker/api/kafka"
	"finance-tracker/api/logger"
	"finance-tracker/api/middleware"
	"finance-tracker/api/models"
	"finance-tracker/api/mongodb"
	"finance-tracker/api/recurring"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// mongoStore adapts the mongodb package to the interfaces the sweep and the
// dispatcher accept.
type mongoStore struct{}

func (mongoStore) GetRecurringTemplates(ctx context.Context) ([]models.Transaction, error) {
	return mongodb.GetRecurringTemplates(ctx)
}

func (mongoStore) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	return mongodb.CreateTransaction(ctx, tx)
}

func (mongoStore) StampRecurrence(ctx context.Context, id string, ranOn time.Time) error {
	return mongodb.StampRecurrence(ctx, id, ranOn)
}

func (mongoStore) CreateNotification(ctx context.Context, n *models.Notification) error {
	return mongodb.CreateNotification(ctx, n)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	development := os.Getenv("GIN_MODE") != "release"
	if err := logger.Init(development, os.Getenv("LOG_LEVEL")); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := mongodb.InitMongoDB(); err != nil {
		logger.Get().Fatal("failed to initialize MongoDB", zap.Error(err))
	}
	defer mongodb.CloseMongoDB()

	// Optional backends: profiles, spend cache, event broker.
	if err := db.InitDB(); err != nil {
		logger.Get().Warn("profile store unavailable", zap.Error(err))
	}
	defer db.CloseDB()

	if err := cache.InitRedis(); err != nil {
		logger.Get().Warn("spend cache unavailable", zap.Error(err))
	}
	defer cache.CloseRedis()

	dispatcher := dispatch.New(mongoStore{})
	if kafka.Configured() {
		if err := kafka.InitProducer(); err != nil {
			logger.Get().Fatal("failed to initialize Kafka producer", zap.Error(err))
		}
		defer kafka.CloseProducer()

		dispatcher.UseProducer(kafka.Produce, kafka.NotificationTopic)
		if err := kafka.StartConsumer(kafka.NotificationTopic, dispatcher.HandleMessage); err != nil {
			logger.Get().Fatal("failed to start Kafka consumer", zap.Error(err))
		}
	}
	handlers.Dispatcher = dispatcher

	// Midnight sweep over every recurring template.
	sweeper := recurring.NewSweeper(mongoStore{})
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		logger.Get().Info("checking recurring transactions")
		if _, err := sweeper.Run(ctx, time.Now()); err != nil {
			logger.Get().Error("recurring sweep failed", zap.Error(err))
		}
	}); err != nil {
		logger.Get().Fatal("failed to schedule recurring sweep", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})
	router.Use(middleware.CorsMiddleware)

	router.GET("/health", handlers.HandleHealthCheck)
	// SSE authenticates via query token inside the handler.
	router.GET("/api/notifications/stream", handlers.HandleNotificationStream)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware)
	{
		api.POST("/transactions", handlers.HandleCreateTransaction)
		api.GET("/transactions", handlers.HandleGetTransactions)
		api.DELETE("/transactions/:id", handlers.HandleDeleteTransaction)

		api.POST("/budgets", handlers.HandleUpsertBudget)
		api.GET("/budgets", handlers.HandleGetBudgets)
		api.DELETE("/budgets/:id", handlers.HandleDeleteBudget)

		api.POST("/goals", handlers.HandleCreateGoal)
		api.GET("/goals", handlers.HandleGetGoals)
		api.PUT("/goals/:id", handlers.HandleUpdateGoal)
		api.POST("/goals/:id/contribute", handlers.HandleContributeToGoal)
		api.DELETE("/goals/:id", handlers.HandleDeleteGoal)

		api.GET("/notifications", handlers.HandleGetNotifications)
		api.PUT("/notifications/:id/read", handlers.HandleMarkNotificationRead)

		api.GET("/users/me", handlers.HandleGetProfile)
		api.PUT("/users/me", handlers.HandleUpdateProfile)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Get().Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}
