// Package service holds the use cases of the weather service: fetching and
// recording current weather, and reading series and snapshots back. Ports to
// the upstream provider, the observation store, and the event publisher are
// declared here and implemented under internal/adapter.
package service

import (
	"context"
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/domain"
)

// WeatherProvider returns the raw current-weather payload for a city.
type WeatherProvider interface {
	GetCurrent(ctx context.Context, city string) (map[string]any, error)
}

// ObservationWriter persists observations.
type ObservationWriter interface {
	Insert(ctx context.Context, obs domain.Observation) (string, error)
}

// ObservationReader answers range and aggregate queries over stored observations.
type ObservationReader interface {
	QueryRange(ctx context.Context, city string, start, end time.Time) ([]domain.Observation, error)
	BucketedSeries(ctx context.Context, city string, start, end time.Time, bucketMinutes int) ([]domain.SeriesPoint, error)
	DailySeries(ctx context.Context, city string, days int) ([]domain.DailyPoint, error)
	// LatestObservation returns nil, nil when the city has no observations.
	LatestObservation(ctx context.Context, city string) (*domain.Observation, error)
}

// ObservationStore is the full storage port.
type ObservationStore interface {
	ObservationWriter
	ObservationReader
}

// ObservationPublisher announces recorded observations to other systems.
type ObservationPublisher interface {
	PublishObservation(ctx context.Context, obs domain.Observation) error
}
