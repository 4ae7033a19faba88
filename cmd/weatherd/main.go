package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	grpcadapter "github.com/couchcryptid/weather-observation-service/internal/adapter/grpc"
	httpadapter "github.com/couchcryptid/weather-observation-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/weather-observation-service/internal/adapter/kafka"
	"github.com/couchcryptid/weather-observation-service/internal/adapter/mongo"
	"github.com/couchcryptid/weather-observation-service/internal/adapter/openweather"
	"github.com/couchcryptid/weather-observation-service/internal/config"
	"github.com/couchcryptid/weather-observation-service/internal/ingest"
	"github.com/couchcryptid/weather-observation-service/internal/observability"
	"github.com/couchcryptid/weather-observation-service/internal/service"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"google.golang.org/grpc"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := mongo.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoTimeout, clock, logger)
	if err != nil {
		logger.Error("failed to connect to mongo", "error", err)
		os.Exit(1)
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		// Reads still work without the index, only slower.
		logger.Warn("failed to ensure mongo indexes", "error", err)
	}

	provider := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherURL, cfg.OpenWeatherTimeout, clock, metrics, logger)

	// Event publishing is feature-flagged via KAFKA_BROKERS.
	var publisher service.ObservationPublisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("observation events enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("observation events disabled")
	}

	weather := service.NewWeatherService(provider, store, publisher, clock, logger, metrics)
	series := service.NewSeriesService(store, clock, logger, metrics)
	current := service.NewCurrentService(store)

	grpcSrv := grpcadapter.NewServer(cfg, grpcadapter.NewHandler(weather, series), logger, metrics)
	httpSrv := httpadapter.NewServer(cfg.HTTPAddr, store, current, series, logger, metrics)
	scheduler := ingest.New(cfg.IngestCities, cfg.IngestInterval, weather, logger, metrics)

	go func() {
		if err := grpcSrv.Start(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.Error("grpc server error", "error", err)
			stop()
		}
	}()

	go func() {
		if err := httpSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	if err := scheduler.Start(ctx); err != nil {
		logger.Error("ingest scheduler error", "error", err)
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	scheduler.Stop()
	if err := grpcSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("grpc server shutdown error", "error", err)
	}
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("mongo close error", "error", err)
	}

	logger.Info("shutdown complete")
}
