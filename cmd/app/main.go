package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/rabbitmq"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := logging.New(configs.LogLevel)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := postgres.Migrate(gormDB); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	publisher, closePublisher := connectPublisher(configs, logger)
	defer closePublisher()

	app, err := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)
	if err != nil {
		logger.Fatal("failed to build application", zap.Error(err))
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Fatal("failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startWebServer(ctx, &app, configs.HTTPPort, logger)
}

// connectPublisher dials the broker when AMQP_URL is set. Without a broker status
// events are dropped.
func connectPublisher(configs cmd.Config, logger *zap.Logger) (ports.EventPublisher, func()) {
	if configs.AMQPURL == "" {
		logger.Warn("AMQP_URL is not set, status events are not published")
		return rabbitmq.NoopPublisher{}, func() {}
	}
	publisher, err := rabbitmq.Dial(configs.AMQPURL, configs.AMQPExchange, logging.Component(logger, "rabbitmq"))
	if err != nil {
		logger.Fatal("failed to connect to rabbitmq", zap.Error(err))
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("closing rabbitmq connection failed", zap.Error(err))
		}
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *zap.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	app.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
}
