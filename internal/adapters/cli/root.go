// Package cli implements orderctl, an operator CLI that drives the same
// services as the HTTP API directly against the backing stores.
package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/rafaelleal24/orderplacement/internal/core/logger"
	"github.com/rafaelleal24/orderplacement/internal/core/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "ORDERCTL"

// Settings are the connection parameters resolved from flags, ORDERCTL_*
// env vars and an optional config file, in that order of precedence.
type Settings struct {
	MongoURI      string
	MongoDatabase string
	RedisURL      string
	RabbitMQURL   string
}

// App holds what the commands operate on. Close is called once the command
// finishes; Relay publishes one batch of pending outbox events.
type App struct {
	Customers *service.CustomerService
	Products  *service.ProductService
	Orders    *service.OrderService
	Relay     func(ctx context.Context) (int, error)
	Close     func(ctx context.Context) error
}

// Connector builds an App from resolved settings.
type Connector func(ctx context.Context, settings Settings) (*App, error)

var errNotConnected = errors.New("not connected")

type runtime struct {
	app     *App
	connect Connector
	config  *viper.Viper
}

func (r *runtime) services() (*App, error) {
	if r.app == nil {
		return nil, errNotConnected
	}
	return r.app, nil
}

// NewRootCommand builds the orderctl command tree. The connector runs before
// any subcommand unless an App was already provided.
func NewRootCommand(connect Connector, app *App) *cobra.Command {
	rt := &runtime{app: app, connect: connect, config: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "orderctl",
		Short:         "Operate the order placement service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if rt.app != nil {
				return nil
			}

			if cfg := rt.config.GetString("config"); cfg != "" {
				rt.config.SetConfigFile(cfg)
				if err := rt.config.ReadInConfig(); err != nil {
					return err
				}
			}

			if rt.config.GetBool("verbose") {
				if err := logger.Initialize("", "orderctl", false); err != nil {
					return err
				}
			}

			connected, err := rt.connect(cmd.Context(), Settings{
				MongoURI:      rt.config.GetString("mongo-uri"),
				MongoDatabase: rt.config.GetString("mongo-database"),
				RedisURL:      rt.config.GetString("redis-url"),
				RabbitMQURL:   rt.config.GetString("rabbitmq-url"),
			})
			if err != nil {
				return err
			}
			rt.app = connected
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if rt.app == nil || rt.app.Close == nil {
				return nil
			}
			return rt.app.Close(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file")
	flags.String("mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI")
	flags.String("mongo-database", "orderplacement", "MongoDB database")
	flags.String("redis-url", "redis://localhost:6379", "Redis URL")
	flags.String("rabbitmq-url", "amqp://localhost:5672", "RabbitMQ URL")
	flags.Bool("verbose", false, "log to stdout")

	for _, name := range []string{"config", "mongo-uri", "mongo-database", "redis-url", "rabbitmq-url", "verbose"} {
		_ = rt.config.BindPFlag(name, flags.Lookup(name))
	}
	rt.config.SetEnvPrefix(envPrefix)
	rt.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	rt.config.AutomaticEnv()

	rootCmd.AddCommand(
		newCustomerCommand(rt),
		newProductCommand(rt),
		newOrderCommand(rt),
		newOutboxCommand(rt),
	)
	return rootCmd
}

// Execute runs the command tree with ctx and returns the first error.
func Execute(ctx context.Context, connect Connector) error {
	return NewRootCommand(connect, nil).ExecuteContext(ctx)
}
