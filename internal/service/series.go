package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/domain"
	"github.com/couchcryptid/weather-observation-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

// SeriesService reads temperature series from stored observations.
type SeriesService struct {
	store   ObservationReader
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *observability.Metrics
}

func NewSeriesService(store ObservationReader, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *SeriesService {
	return &SeriesService{store: store, clock: clock, logger: logger, metrics: metrics}
}

// GetBucketedSeries returns the series for the last minutes minutes.
func (s *SeriesService) GetBucketedSeries(ctx context.Context, city string, minutes, bucketMinutes int) ([]domain.SeriesPoint, error) {
	if minutes < 1 {
		return nil, domain.NewError(domain.ErrInvalidArgument, "minutes must be positive", nil)
	}
	end := s.clock.Now().UTC()
	start := end.Add(-time.Duration(minutes) * time.Minute)
	return s.GetSeriesRange(ctx, city, start, end, bucketMinutes)
}

// GetSeriesRange returns bucketed averages for [start, end]. When no bucket
// can be formed it falls back to one point per raw observation; an empty
// result is not an error.
func (s *SeriesService) GetSeriesRange(ctx context.Context, city string, start, end time.Time, bucketMinutes int) ([]domain.SeriesPoint, error) {
	city, err := canonicalInput(city)
	if err != nil {
		return nil, err
	}
	if bucketMinutes < 1 {
		return nil, domain.NewError(domain.ErrInvalidArgument, "bucket_minutes must be positive", nil)
	}
	if start.After(end) {
		return nil, domain.NewError(domain.ErrInvalidArgument, "start must not be after end", nil)
	}

	points, err := s.store.BucketedSeries(ctx, city, start, end, bucketMinutes)
	if err != nil {
		return nil, storageError("bucketed series", err)
	}
	if len(points) > 0 {
		return points, nil
	}

	raw, err := s.store.QueryRange(ctx, city, start, end)
	if err != nil {
		return nil, storageError("query range", err)
	}
	if len(raw) == 0 {
		return []domain.SeriesPoint{}, nil
	}
	s.metrics.SeriesFallbacks.Inc()
	s.logger.Debug("series fell back to raw observations", "city", city, "count", len(raw))
	return domain.RawSeries(raw), nil
}

// GetDailySeries returns one point per UTC day for the last days days.
func (s *SeriesService) GetDailySeries(ctx context.Context, city string, days int) ([]domain.DailyPoint, error) {
	city, err := canonicalInput(city)
	if err != nil {
		return nil, err
	}
	points, err := s.store.DailySeries(ctx, city, days)
	if err != nil {
		return nil, storageError("daily series", err)
	}
	return points, nil
}

func canonicalInput(city string) (string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", domain.NewError(domain.ErrInvalidArgument, "City required", nil)
	}
	return domain.CanonicalCity(city), nil
}

func storageError(op string, err error) error {
	return domain.NewError(domain.ErrStorage, "storage error", fmt.Errorf("%s: %w", op, err))
}
