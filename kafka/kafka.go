package kafka

import (
	"finance-tracker/api/logger"
	"os"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.uber.org/zap"
)

var (
	notificationProducer *kafka.Producer

	NotificationTopic string = "notification_events"
	GroupID           string = "notification-consumer"
)

// Configured reports whether a broker address is present in the
// environment. Without one the service runs broker-less and the dispatcher
// persists notifications inline.
func Configured() bool {
	return os.Getenv("KAFKA_BOOTSTRAP_SERVERS") != ""
}

func InitProducer() error {
	config := &kafka.ConfigMap{
		"bootstrap.servers": os.Getenv("KAFKA_BOOTSTRAP_SERVERS"),
		"sasl.username":     os.Getenv("KAFKA_API_KEY"),
		"sasl.password":     os.Getenv("KAFKA_API_SECRET"),
		"security.protocol": "SASL_SSL",
		"sasl.mechanism":    "PLAIN",
	}

	var err error
	notificationProducer, err = kafka.NewProducer(config)
	if err != nil {
		logger.Get().Error("failed to initialize Kafka producer",
			zap.String("bootstrap_servers", os.Getenv("KAFKA_BOOTSTRAP_SERVERS")),
			zap.Error(err))
		return err
	}

	logger.Get().Info("Kafka producer initialized successfully",
		zap.String("bootstrap_servers", os.Getenv("KAFKA_BOOTSTRAP_SERVERS")))
	return nil
}

func Produce(topic string, message []byte) error {
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          message,
	}

	err := notificationProducer.Produce(msg, nil)
	if err != nil {
		logger.Get().Error("failed to produce message",
			zap.String("topic", topic),
			zap.Error(err))
		return err
	}

	logger.Get().Debug("message produced successfully",
		zap.String("topic", topic))
	return nil
}

// StartConsumer subscribes to a topic and feeds every message to handle on
// a background goroutine.
func StartConsumer(topic string, handle func(value []byte)) error {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  os.Getenv("KAFKA_BOOTSTRAP_SERVERS"),
		"security.protocol":  "SASL_SSL",
		"sasl.mechanisms":    "PLAIN",
		"sasl.username":      os.Getenv("KAFKA_API_KEY"),
		"sasl.password":      os.Getenv("KAFKA_API_SECRET"),
		"session.timeout.ms": "45000",
		"group.id":           GroupID,
		"auto.offset.reset":  "latest",
	})
	if err != nil {
		logger.Get().Error("failed to create consumer",
			zap.String("bootstrap_servers", os.Getenv("KAFKA_BOOTSTRAP_SERVERS")),
			zap.Error(err))
		return err
	}

	err = consumer.Subscribe(topic, nil)
	if err != nil {
		logger.Get().Error("failed to subscribe to topic",
			zap.String("topic", topic),
			zap.Error(err))
		return err
	}

	logger.Get().Info("Kafka consumer started successfully",
		zap.String("topic", topic),
		zap.String("group_id", GroupID))

	go func() {
		for {
			msg, err := consumer.ReadMessage(-1)
			if err != nil {
				logger.Get().Error("consumer error",
					zap.String("topic", topic),
					zap.Error(err))
				continue
			}

			logger.Get().Debug("received message",
				zap.String("topic", topic))
			handle(msg.Value)
		}
	}()

	return nil
}

func CloseProducer() {
	if notificationProducer != nil {
		notificationProducer.Flush(5000)
		notificationProducer.Close()
	}
}
