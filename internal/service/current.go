package service

import (
	"context"

	"github.com/couchcryptid/weather-observation-service/internal/domain"
)

// CurrentService serves the enriched snapshot of a city's latest stored
// observation.
type CurrentService struct {
	store ObservationReader
}

func NewCurrentService(store ObservationReader) *CurrentService {
	return &CurrentService{store: store}
}

// GetCurrent returns nil, nil when the city has no observations.
func (s *CurrentService) GetCurrent(ctx context.Context, city string) (*domain.CurrentSnapshot, error) {
	canonical, err := canonicalInput(city)
	if err != nil {
		return nil, err
	}
	obs, err := s.store.LatestObservation(ctx, canonical)
	if err != nil {
		return nil, storageError("latest observation", err)
	}
	if obs == nil {
		return nil, nil
	}
	snap := domain.BuildCurrentSnapshot(*obs, city)
	return &snap, nil
}
