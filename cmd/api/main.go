package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"go.uber.org/zap"

	"github.com/blincar/blincar/internal/pkg/config"
	"github.com/blincar/blincar/internal/pkg/database"
	"github.com/blincar/blincar/internal/pkg/health"
	"github.com/blincar/blincar/internal/pkg/logger"
	"github.com/blincar/blincar/internal/pkg/middleware"
	natspkg "github.com/blincar/blincar/internal/pkg/nats"
	nrpkg "github.com/blincar/blincar/internal/pkg/newrelic"
	wspkg "github.com/blincar/blincar/internal/pkg/websocket"
	notifGateway "github.com/blincar/blincar/services/notifications/gateway"
	notifHandler "github.com/blincar/blincar/services/notifications/handler"
	notifRepository "github.com/blincar/blincar/services/notifications/repository"
	notifUsecase "github.com/blincar/blincar/services/notifications/usecase"
	routesHandler "github.com/blincar/blincar/services/routes/handler"
	routesRepository "github.com/blincar/blincar/services/routes/repository"
	routesUsecase "github.com/blincar/blincar/services/routes/usecase"
	safetyHandler "github.com/blincar/blincar/services/safety/handler"
	safetyRepository "github.com/blincar/blincar/services/safety/repository"
	safetyUsecase "github.com/blincar/blincar/services/safety/usecase"
	tripsHandler "github.com/blincar/blincar/services/trips/handler"
	tripsRepository "github.com/blincar/blincar/services/trips/repository"
	tripsUsecase "github.com/blincar/blincar/services/trips/usecase"
	usersRepository "github.com/blincar/blincar/services/users/repository"
)

func main() {
	appName := "blincar-api"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = ".env"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Initialize repositories
	tripRepo := tripsRepository.NewTripRepository(configs, db)
	rcRepo := routesRepository.NewRouteChangeRepository(configs, db)
	panicRepo := safetyRepository.NewPanicRepository(configs, db)
	notifRepo := notifRepository.NewNotificationRepository(configs, db)
	userRepo := usersRepository.NewUserRepository(configs, db)
	tokenRepo := usersRepository.NewDeviceTokenRepository(configs, db, redisClient)

	// Presence directory and gateways
	manager := wspkg.NewManager(configs.JWT, configs.Dispatch.SocketBuffer)
	pushClient := notifGateway.NewPushClient(configs.Push)
	eventGW := notifGateway.NewEventGateway(natsClient)

	// Initialize use cases
	dispatcher := notifUsecase.NewDispatcherUC(configs, notifRepo, tripRepo, userRepo, tokenRepo, pushClient, eventGW, manager)
	notifUC := notifUsecase.NewNotificationUC(notifRepo)
	tripUC := tripsUsecase.NewTripUC(configs, tripRepo, userRepo, dispatcher)
	rcUC := routesUsecase.NewRouteChangeUC(configs, rcRepo, tripRepo, dispatcher, manager)
	panicUC := safetyUsecase.NewPanicUC(configs, panicRepo, tripRepo, userRepo, dispatcher, eventGW)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	tripsHandler.NewHandler(tripUC, configs).RegisterRoutes(e)
	routesHandler.NewHandler(rcUC, configs).RegisterRoutes(e)
	safetyHandler.NewHandler(panicUC, configs).RegisterRoutes(e)
	notifHandler.NewHandler(notifUC, manager, configs).RegisterRoutes(e)

	// Start server
	go func() {
		zapLogger.Info("Starting server",
			zap.String("app", appName),
			zap.Int("port", configs.Server.Port),
		)
		if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server",
				zap.String("app", appName),
				zap.Error(err),
			)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	zapLogger.Info("Shutting down server", zap.String("app", appName))
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server shutdown failed", zap.Error(err))
	}
}
