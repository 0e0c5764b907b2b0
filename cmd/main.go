package main

import (
	"context"
	"log"
	"strconv"

	"andes/quipu_loan_decisioning/configs"
	"andes/quipu_loan_decisioning/internal/app/router"
	"andes/quipu_loan_decisioning/internal/pkg/db"
	"andes/quipu_loan_decisioning/internal/pkg/kafka/producer"
	"andes/quipu_loan_decisioning/internal/pkg/logger"
	"andes/quipu_loan_decisioning/internal/pkg/otel"
	"andes/quipu_loan_decisioning/internal/pkg/pubsub"
	"andes/quipu_loan_decisioning/internal/pkg/redis"
	"andes/quipu_loan_decisioning/internal/pkg/utils/worker"
)

func main() {
	err := configs.LoadEnv()
	if err != nil {
		logger.Debug("Error loading .env file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err = otel.Setup(ctx, configs.SERVICE_NAME, configs.OTEL_URL)
	if err != nil {
		logger.Error(ctx, "Error setting up OTLP: %v", err)
	}

	mdb, dbErr := db.NewMongoDB()
	if dbErr != nil {
		logger.Error(ctx, "Error connecting to MongoDB: %v", dbErr)
	}
	db.MDB = mdb
	defer mdb.Close()

	kafkaProducer, err := producer.NewKafkaProducer(configs.KAFKA_SERVER, configs.KAFKA_AUDIT_TOPIC)
	if err != nil {
		logger.Error(ctx, "Failed to create Kafka producer: %v", err)
	} else {
		producer.KafkaProducer = kafkaProducer
		defer kafkaProducer.Close()
		logger.Info(ctx, "Kafka producer created")
	}

	pubsubPublisher, err := pubsub.NewPubSubPublisher(ctx, configs.PROJECT_ID)
	if err != nil {
		logger.Error(ctx, "Failed to create Pub/Sub publisher: %v", err)
	} else {
		defer pubsubPublisher.Close()
		logger.Info(ctx, "Pub/Sub publisher created")
	}

	redisClient, err := redis.ConnectToRedis(ctx, configs.GetRedisConfig(), nil)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	numberOfWorkers, er := strconv.Atoi(configs.WORKER_POOL)
	if er != nil {
		logger.Error(ctx, er)
	}
	workerPool := worker.NewWorkerPool(numberOfWorkers)
	defer workerPool.Stop()

	r := router.SetupRouter(workerPool, redisClient.Client, pubsubPublisher)

	port := configs.SERVER_PORT
	if err := r.Run(":" + port); err != nil {
		logger.Error(ctx, "Failed to run server: %v", err)
	}
}
