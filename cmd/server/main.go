// Package main is the entry point for the factory operations service.
// It wires together all modules and starts the HTTP server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/eventbus"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/httpserver"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/spanner"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/transaction"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines"
	machinespersistence "github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/infrastructure/persistence"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/notifications"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders"
	orderspersistence "github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/infrastructure/persistence"
)

const serviceName = "factory-ops"

func main() {
	// Initialize logger
	slogOptions := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	slogJsonHandler := slog.NewJSONHandler(os.Stdout, slogOptions)
	logger := slog.New(slogJsonHandler)
	slog.SetDefault(logger)

	logger.Info("starting factory operations service")

	// Initialize Spanner client
	ctx := context.Background()
	spannerCfg := spanner.Config{
		ProjectID:  getEnv("SPANNER_PROJECT_ID", "local-project"),
		InstanceID: getEnv("SPANNER_INSTANCE_ID", "local-instance"),
		DatabaseID: getEnv("SPANNER_DATABASE_ID", "factory-db"),
	}

	spannerClient, err := spanner.NewClient(ctx, spannerCfg)
	if err != nil {
		logger.Error("failed to create spanner client", slog.Any("error", err))
		os.Exit(1)
	}
	defer spannerClient.Close()

	logger.Info("connected to spanner", slog.String("dsn", spannerCfg.DSN()))

	// Event bus for inter-module communication
	eventBus := eventbus.New(logger)

	// Transaction scope shared by commands that pair a guarded transition
	// with its event publication
	txScope := transaction.NewSpannerScope(spannerClient)

	// Repositories
	orderPartsRepo := orderspersistence.NewSpannerOrderPartRepository(spannerClient)
	statusRepo := orderspersistence.NewSpannerStatusRepository(spannerClient)
	machineRepo := machinespersistence.NewSpannerMachineRepository(spannerClient)
	machinePartRepo := machinespersistence.NewSpannerMachinePartRepository(spannerClient)

	// Modules
	ordersModule := orders.New(orders.Config{
		Repository:       orderPartsRepo,
		StatusRepository: statusRepo,
		TxScope:          txScope,
		HandlerRegistry:  eventBus.Registry(),
		Logger:           logger,
	})

	machinesModule := machines.New(machines.Config{
		MachineRepository:     machineRepo,
		MachinePartRepository: machinePartRepo,
		Logger:                logger,
	})

	_ = notifications.New(notifications.Config{
		EventSubscriber: eventBus,
		Logger:          logger,
	})

	// Build HTTP router
	router := buildRouter(ordersModule, machinesModule)

	// Apply middleware
	handler := httpserver.Middleware(router,
		httpserver.Recovery(logger),
		httpserver.Logging(logger),
		httpserver.Tracing(serviceName),
		httpserver.CORS([]string{"*"}),
	)

	// Create and start server
	cfg := httpserver.DefaultConfig()
	server := httpserver.New(cfg, handler, logger)

	// Graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	logger.Info("server stopped")
}

// buildRouter creates the main HTTP router with all module handlers.
func buildRouter(ordersModule orders.Module, machinesModule machines.Module) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Each module registers its own routes
	ordersModule.RegisterRoutes(mux)
	machinesModule.RegisterRoutes(mux)

	return mux
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
