package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"

	paymentUseCase "github.com/khanut-app/backend/internal/domain/usecase/payment"
	transactionUseCase "github.com/khanut-app/backend/internal/domain/usecase/transaction"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/api/handler"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/api/routes"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/chapa"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/database"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/logger"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/repository"
	timeProvider "github.com/khanut-app/backend/internal/infrastructure/adapter/time"
	"github.com/khanut-app/backend/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	// Connect to the database
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            parsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	}
	conn, err := database.NewConnection(dbConfig)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer conn.Close()

	if err := conn.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize adapters
	tp := timeProvider.NewRealTimeProvider()
	transactionRepo := repository.NewTransactionRepository(conn.DB, appLogger)

	// Single owned Chapa client, configured once and injected everywhere
	chapaClient := chapa.NewClient(chapa.Config{
		SecretKey:          cfg.Chapa.SecretKey,
		BaseURL:            cfg.Chapa.BaseURL,
		CallbackURL:        cfg.Chapa.CallbackURL,
		ReturnURL:          cfg.Chapa.ReturnURL,
		DefaultTitle:       cfg.Chapa.DefaultTitle,
		DefaultDescription: cfg.Chapa.DefaultDescription,
		Timeout:            cfg.Chapa.Timeout,
	}, appLogger)

	// Initialize use cases
	listUseCase := transactionUseCase.NewListTransactionsUseCase(transactionRepo, appLogger)
	paymentService := paymentUseCase.NewService(chapaClient, transactionRepo, tp, appLogger)

	// Initialize API handlers
	transactionHandler := handler.NewTransactionHandler(listUseCase, appLogger)
	paymentHandler := handler.NewPaymentHandler(paymentService, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, transactionHandler, paymentHandler, cfg.Auth.JWTSecret, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or KH_DB_HOST)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or KH_DB_USERNAME)")
	}
	if cfg.Database.Password == "" {
		missing = append(missing, "database.password (or KH_DB_PASSWORD)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or KH_DB_NAME)")
	}
	if cfg.Auth.JWTSecret == "" {
		missing = append(missing, "auth.jwtSecret (or KH_JWT_SECRET)")
	}
	if cfg.Chapa.SecretKey == "" {
		missing = append(missing, "chapa.secretKey (or KH_CHAPA_SECRET_KEY)")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s", cfg.Environment)
	}

	return nil
}

// parsePort converts the configured port string to an int
func parsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil {
		return 5432
	}
	return p
}
