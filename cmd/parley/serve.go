package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/adapters/file"
	"github.com/aretw0/parley/internal/adapters/memory"
	"github.com/aretw0/parley/internal/adapters/rules"
	"github.com/aretw0/parley/internal/config"
	"github.com/aretw0/parley/internal/logging"
	httpAdapter "github.com/aretw0/parley/pkg/adapters/http"
	"github.com/aretw0/parley/pkg/adapters/luis"
	redisAdapter "github.com/aretw0/parley/pkg/adapters/redis"
	"github.com/aretw0/parley/pkg/observability"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bot HTTP server",
	Long:  `Starts the bot behind a channel-connector style REST API, with health and metrics endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		addrFlag, _ := cmd.Flags().GetString("addr")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr = addrFlag
		}

		logger := logging.New(cfg.Logging.SlogLevel())

		store, locker, cleanup, err := buildStore(cfg.Store)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}
		defer cleanup()

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

		botOpts := []parley.Option{
			parley.WithLogger(logger),
			parley.WithLifecycleHooks(metrics.Hooks()),
		}
		if locker != nil {
			botOpts = append(botOpts, parley.WithLocker(locker))
		}

		bot, err := parley.New(store, buildRecognizer(cfg.NLU), botOpts...)
		if err != nil {
			fmt.Printf("Error initializing bot: %v\n", err)
			os.Exit(1)
		}

		r := chi.NewRouter()
		r.Mount("/", httpAdapter.NewHandler(bot, httpAdapter.WithLogger(logger)))
		r.Handle("/metrics", promhttp.Handler())

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: r,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Parley Server on %s\n", srv.Addr)
			fmt.Printf("Store driver: %s, NLU driver: %s\n", cfg.Store.Driver, cfg.NLU.Driver)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Parley Server stopped gracefully")
		}
	},
}

// buildStore constructs the configured store backend. The redis driver also
// yields a distributed locker so multiple processes can share it.
func buildStore(cfg config.StoreConfig) (ports.StateStore, ports.DistributedLocker, func(), error) {
	switch cfg.Driver {
	case "memory":
		return memory.NewStore(), nil, func() {}, nil

	case "file":
		return file.New(cfg.Path), nil, func() {}, nil

	case "redis":
		client := backend.NewClient(&backend.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		storeOpts := []redisAdapter.Option{}
		if cfg.Redis.Prefix != "" {
			storeOpts = append(storeOpts, redisAdapter.WithPrefix(cfg.Redis.Prefix))
		}
		if cfg.Redis.TTL > 0 {
			storeOpts = append(storeOpts, redisAdapter.WithTTL(time.Duration(cfg.Redis.TTL)))
		}
		store := redisAdapter.NewFromClient(client, storeOpts...)
		locker := redisAdapter.NewLocker(client, cfg.Redis.Prefix)
		return store, locker, func() { _ = store.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func buildRecognizer(cfg config.NLUConfig) ports.Recognizer {
	if cfg.Driver == "luis" {
		return luis.NewClient(cfg.Endpoint, cfg.APIKey)
	}
	return rules.New()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8978", "Address to listen on")
}
