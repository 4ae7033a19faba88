package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/couchcryptid/weather-observation-service/internal/domain"
	"github.com/couchcryptid/weather-observation-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

// WeatherService fetches current weather, records it, and returns the
// normalized view.
type WeatherService struct {
	provider  WeatherProvider
	store     ObservationWriter
	publisher ObservationPublisher
	clock     clockwork.Clock
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewWeatherService wires the fetch use case. publisher may be nil to
// disable event publishing.
func NewWeatherService(provider WeatherProvider, store ObservationWriter, publisher ObservationPublisher, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *WeatherService {
	return &WeatherService{
		provider:  provider,
		store:     store,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
	}
}

// GetCurrentWeather fetches the city's current weather from the provider,
// persists it as an observation, and returns the normalized view. Storage
// and publish failures are logged but never fail the call.
func (s *WeatherService) GetCurrentWeather(ctx context.Context, city string) (domain.NormalizedWeather, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.NormalizedWeather{}, domain.NewError(domain.ErrInvalidArgument, "City required", nil)
	}

	payload, err := s.provider.GetCurrent(ctx, city)
	if err != nil {
		return domain.NormalizedWeather{}, classifyUpstream(city, err)
	}

	normalized := domain.NormalizeWeather(payload, city, s.clock.Now())
	s.record(ctx, normalized.Observation(payload))
	return normalized, nil
}

func (s *WeatherService) record(ctx context.Context, obs domain.Observation) {
	id, err := s.store.Insert(ctx, obs)
	if err != nil {
		s.metrics.PersistErrors.Inc()
		s.logger.Warn("failed to persist observation", "city", obs.City, "error", err)
		return
	}
	s.metrics.ObservationsStored.Inc()
	obs.ID = id

	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishObservation(ctx, obs); err != nil {
		s.metrics.PublishErrors.Inc()
		s.logger.Warn("failed to publish observation", "city", obs.City, "id", id, "error", err)
		return
	}
	s.metrics.EventsPublished.Inc()
}

// classifyUpstream maps provider failures onto error kinds.
func classifyUpstream(city string, err error) error {
	var (
		httpErr *domain.UpstreamHTTPError
		reqErr  *domain.UpstreamRequestError
	)
	switch {
	case errors.Is(err, domain.ErrUpstreamNotFound):
		return domain.NewError(domain.ErrNotFound, fmt.Sprintf("City '%s' not found", city), err)
	case errors.As(err, &reqErr):
		return domain.NewError(domain.ErrUnavailable, reqErr.Error(), err)
	case errors.As(err, &httpErr):
		return domain.NewError(domain.ErrInternal, httpErr.Error(), err)
	case errors.Is(err, domain.ErrUpstreamInvalidResponse):
		return domain.NewError(domain.ErrInternal, err.Error(), err)
	default:
		return domain.NewError(domain.ErrInternal, "internal error", err)
	}
}
