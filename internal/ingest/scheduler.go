// Package ingest periodically fetches current weather for a fixed set of
// cities so series stay populated without client traffic.
package ingest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/domain"
	"github.com/couchcryptid/weather-observation-service/internal/observability"
	"github.com/go-co-op/gocron"
)

// fetchTimeout bounds one city fetch, persistence included.
const fetchTimeout = 30 * time.Second

// WeatherFetcher fetches and records the current weather of a city.
type WeatherFetcher interface {
	GetCurrentWeather(ctx context.Context, city string) (domain.NormalizedWeather, error)
}

// Scheduler runs a fetch of every configured city on a fixed interval.
type Scheduler struct {
	scheduler *gocron.Scheduler
	fetcher   WeatherFetcher
	cities    []string
	interval  time.Duration
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Scheduler. Nothing runs until Start.
func New(cities []string, interval time.Duration, fetcher WeatherFetcher, logger *slog.Logger, metrics *observability.Metrics) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		fetcher:   fetcher,
		cities:    cities,
		interval:  interval,
		logger:    logger,
		metrics:   metrics,
	}
}

// Start schedules the periodic job. Runs never overlap; a slow run delays
// the next one. ctx is the parent of every fetch.
func (s *Scheduler) Start(ctx context.Context) error {
	if len(s.cities) == 0 {
		s.logger.Info("ingest scheduler disabled: no cities configured")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(func() {
		s.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info("ingest scheduler started", "cities", len(s.cities), "interval", s.interval)
	return nil
}

// RunOnce fetches every city concurrently and waits for all of them.
func (s *Scheduler) RunOnce(ctx context.Context) {
	var wg sync.WaitGroup
	for _, city := range s.cities {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.fetch(ctx, city)
		}()
	}
	wg.Wait()
}

func (s *Scheduler) fetch(ctx context.Context, city string) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	n, err := s.fetcher.GetCurrentWeather(ctx, city)
	if err != nil {
		s.metrics.IngestRuns.WithLabelValues("error").Inc()
		s.logger.Warn("scheduled fetch failed", "city", city, "error", err)
		return
	}
	s.metrics.IngestRuns.WithLabelValues("success").Inc()
	s.logger.Debug("scheduled fetch complete", "city", n.City)
}

// Stop cancels future runs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}
