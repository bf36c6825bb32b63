package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/rafaelleal24/orderplacement/docs"
	"github.com/rafaelleal24/orderplacement/internal/adapters/config"
	"github.com/rafaelleal24/orderplacement/internal/adapters/http"
	"github.com/rafaelleal24/orderplacement/internal/adapters/http/controllers"
	"github.com/rafaelleal24/orderplacement/internal/adapters/mongo"
	"github.com/rafaelleal24/orderplacement/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/orderplacement/internal/adapters/outbox"
	"github.com/rafaelleal24/orderplacement/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/orderplacement/internal/adapters/redis"
	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/logger"
	"github.com/rafaelleal24/orderplacement/internal/core/service"
)

// @title       Order Placement API
// @version     1.0
// @description Places orders against the product catalog and decrements stock

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet
		fmt.Fprintln(os.Stderr, "failed to initialize logger: "+err.Error())
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	mongoClient, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer mongo.Disconnect(mongoClient)
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer publisher.Close()
	logger.Info(ctx, "Connected to RabbitMQ", nil)

	database := mongoClient.Database(cfg.Mongo.Database)
	customerRepository := repository.NewCustomerRepository(database)
	productRepository := repository.NewProductRepository(database)
	orderRepository := repository.NewOrderRepository(database)
	outboxRepository := repository.NewOutboxRepository(database)
	txManager := mongo.NewTransactionManager(mongoClient)

	orderCache := redis.NewCache[domain.Order](redisClient, "order-cache")
	rateLimiter := redis.NewRateLimiter(redisClient)

	outboxHandler := outbox.NewHandler(outboxRepository, publisher, cfg.Outbox)
	go outboxHandler.Start(ctx)
	logger.Info(ctx, "Outbox handler started", map[string]any{
		"interval":   cfg.Outbox.Interval.String(),
		"batch_size": cfg.Outbox.BatchSize,
	})

	customerService := service.NewCustomerService(customerRepository)
	productService := service.NewProductService(productRepository)
	orderService := service.NewOrderService(
		orderRepository,
		productRepository,
		customerRepository,
		outboxRepository,
		orderCache,
		txManager,
	)

	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "mongodb", Check: mongo.HealthCheck(mongoClient)},
		{Name: "redis", Check: redisClient.Ping},
		{Name: "rabbitmq", Check: func(context.Context) error { return publisher.HealthCheck() }},
	})
	router := http.NewRouter(
		healthController,
		controllers.NewOrderController(orderService),
		controllers.NewProductController(productService),
		controllers.NewCustomerController(customerService),
		rateLimiter,
		cfg.HTTP.RateLimit,
	)

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	if err := router.ListenAndServe(ctx, cfg.HTTP); err != nil {
		logger.Fatal(ctx, "HTTP server failed", err, nil)
	}
	logger.Info(context.Background(), "Shutting down", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := logger.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintln(os.Stderr, "logger shutdown error: "+err.Error())
	}
}
