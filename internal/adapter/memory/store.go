// Package memory is an in-process observation store. It answers the same
// queries as the MongoDB store using the domain aggregation helpers, and
// backs tests and local runs without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/domain"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Store is a concurrency-safe in-memory observation store.
type Store struct {
	mu sync.RWMutex

	// key: city, value: observations sorted by ObservationTime
	data  map[string][]domain.Observation
	clock clockwork.Clock
}

// NewStore creates an empty Store. The clock supplies default timestamps
// and the "now" of daily windows.
func NewStore(clock clockwork.Clock) *Store {
	return &Store{
		data:  make(map[string][]domain.Observation),
		clock: clock,
	}
}

// Insert stores obs and returns its generated ID.
func (s *Store) Insert(_ context.Context, obs domain.Observation) (string, error) {
	obs = obs.WithDefaults(s.clock.Now())
	obs.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.data[obs.City]
	// Equal timestamps keep insertion order.
	i := sort.Search(len(history), func(i int) bool {
		return history[i].ObservationTime.After(obs.ObservationTime)
	})
	history = append(history, domain.Observation{})
	copy(history[i+1:], history[i:])
	history[i] = obs
	s.data[obs.City] = history

	return obs.ID, nil
}

// QueryRange returns the city's observations in [start, end], ascending.
func (s *Store) QueryRange(_ context.Context, city string, start, end time.Time) ([]domain.Observation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rangeLocked(city, start, end), nil
}

// BucketedSeries aggregates [start, end] into buckets of bucketMinutes.
func (s *Store) BucketedSeries(_ context.Context, city string, start, end time.Time, bucketMinutes int) ([]domain.SeriesPoint, error) {
	if bucketMinutes < 1 {
		return nil, domain.NewError(domain.ErrInvalidArgument, "bucket_minutes must be positive", nil)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.AggregateBuckets(s.rangeLocked(city, start, end), bucketMinutes), nil
}

// DailySeries aggregates the last days UTC calendar days, today included.
func (s *Store) DailySeries(_ context.Context, city string, days int) ([]domain.DailyPoint, error) {
	if days < 1 {
		return []domain.DailyPoint{}, nil
	}
	now := s.clock.Now().UTC()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.AggregateDaily(s.rangeLocked(city, domain.DailyWindowStart(now, days), now)), nil
}

// LatestObservation returns the city's most recent observation, or nil.
func (s *Store) LatestObservation(_ context.Context, city string) (*domain.Observation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.data[city]
	if len(history) == 0 {
		return nil, nil
	}
	latest := history[len(history)-1]
	return &latest, nil
}

// CheckReadiness always succeeds; the store has no external dependency.
func (s *Store) CheckReadiness(_ context.Context) error {
	return nil
}

func (s *Store) rangeLocked(city string, start, end time.Time) []domain.Observation {
	var result []domain.Observation
	for _, obs := range s.data[city] {
		if obs.ObservationTime.Before(start) || obs.ObservationTime.After(end) {
			continue
		}
		result = append(result, obs)
	}
	return result
}
