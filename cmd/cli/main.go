package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rafaelleal24/orderplacement/internal/adapters/cli"
	"github.com/rafaelleal24/orderplacement/internal/adapters/config"
	"github.com/rafaelleal24/orderplacement/internal/adapters/mongo"
	"github.com/rafaelleal24/orderplacement/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/orderplacement/internal/adapters/outbox"
	"github.com/rafaelleal24/orderplacement/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/orderplacement/internal/adapters/redis"
	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/service"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx, connect); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// connect wires the services over MongoDB and Redis. RabbitMQ is only dialed
// when an outbox relay is requested.
func connect(ctx context.Context, settings cli.Settings) (*cli.App, error) {
	cfg := config.NewConfig()
	cfg.Mongo.URI = settings.MongoURI
	cfg.Mongo.Database = settings.MongoDatabase
	cfg.Redis.URL = settings.RedisURL
	cfg.RabbitMQ.URL = settings.RabbitMQURL

	mongoClient, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		return nil, err
	}
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		_ = mongo.Disconnect(mongoClient)
		return nil, err
	}

	database := mongoClient.Database(cfg.Mongo.Database)
	customerRepository := repository.NewCustomerRepository(database)
	productRepository := repository.NewProductRepository(database)
	orderRepository := repository.NewOrderRepository(database)
	outboxRepository := repository.NewOutboxRepository(database)

	orderService := service.NewOrderService(
		orderRepository,
		productRepository,
		customerRepository,
		outboxRepository,
		redis.NewCache[domain.Order](redisClient, "order-cache"),
		mongo.NewTransactionManager(mongoClient),
	)

	var publisher *rabbitmq.Publisher
	relay := func(ctx context.Context) (int, error) {
		if publisher == nil {
			p, err := rabbitmq.NewPublisher(cfg.RabbitMQ)
			if err != nil {
				return 0, err
			}
			publisher = p
		}
		return outbox.NewHandler(outboxRepository, publisher, cfg.Outbox).Relay(ctx)
	}

	return &cli.App{
		Customers: service.NewCustomerService(customerRepository),
		Products:  service.NewProductService(productRepository),
		Orders:    orderService,
		Relay:     relay,
		Close: func(ctx context.Context) error {
			var errs []error
			if publisher != nil {
				errs = append(errs, publisher.Close())
			}
			errs = append(errs, redisClient.Close(), mongo.Disconnect(mongoClient))
			return errors.Join(errs...)
		},
	}, nil
}
