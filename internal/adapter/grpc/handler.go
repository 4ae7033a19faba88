package grpc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/adapter/grpc/weatherpb"
	"github.com/couchcryptid/weather-observation-service/internal/domain"
)

const (
	defaultBucketMinutes = 5
	maxBucketMinutes     = 60
)

// WeatherFetcher fetches and records current weather.
type WeatherFetcher interface {
	GetCurrentWeather(ctx context.Context, city string) (domain.NormalizedWeather, error)
}

// SeriesRanger reads bucketed series over an explicit time range.
type SeriesRanger interface {
	GetSeriesRange(ctx context.Context, city string, start, end time.Time, bucketMinutes int) ([]domain.SeriesPoint, error)
}

// Handler implements weatherpb.WeatherServiceServer on top of the service layer.
type Handler struct {
	weatherpb.UnimplementedWeatherServiceServer

	weather WeatherFetcher
	series  SeriesRanger
}

func NewHandler(weather WeatherFetcher, series SeriesRanger) *Handler {
	return &Handler{weather: weather, series: series}
}

func (h *Handler) GetCurrentWeather(ctx context.Context, req *weatherpb.GetWeatherRequest) (*weatherpb.GetWeatherResponse, error) {
	n, err := h.weather.GetCurrentWeather(ctx, req.GetCity())
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &weatherpb.GetWeatherResponse{
		City:         n.City,
		FetchedAtIso: domain.FormatTimestamp(n.FetchedAt),
	}
	if n.TempC != nil {
		resp.TempC = *n.TempC
	}
	if n.HumidityPct != nil {
		resp.HumidityPct = int32(*n.HumidityPct)
	}
	if n.Conditions != nil {
		resp.Conditions = *n.Conditions
	}
	if n.WindSpeedMS != nil {
		resp.WindSpeedMs = *n.WindSpeedMS
	}
	return resp, nil
}

func (h *Handler) GetTemperatureSeries(ctx context.Context, req *weatherpb.GetSeriesRequest) (*weatherpb.GetSeriesResponse, error) {
	bucket := int(req.GetBucketMinutes())
	if bucket == 0 {
		bucket = defaultBucketMinutes
	}
	if bucket < 1 || bucket > maxBucketMinutes {
		return nil, statusFromError(invalid("bucket_minutes must be between 1 and %d", maxBucketMinutes))
	}
	start, err := parseISO(req.GetStartIso())
	if err != nil {
		return nil, statusFromError(invalid("invalid start_iso %q", req.GetStartIso()))
	}
	end, err := parseISO(req.GetEndIso())
	if err != nil {
		return nil, statusFromError(invalid("invalid end_iso %q", req.GetEndIso()))
	}

	points, err := h.series.GetSeriesRange(ctx, req.GetCity(), start, end, bucket)
	if err != nil {
		return nil, statusFromError(err)
	}
	if len(points) == 0 {
		return nil, statusFromError(domain.NewError(domain.ErrNotFound, "No data for city/time range", nil))
	}

	resp := &weatherpb.GetSeriesResponse{
		City:   domain.CanonicalCity(strings.TrimSpace(req.GetCity())),
		Points: make([]*weatherpb.SeriesPoint, 0, len(points)),
	}
	for _, p := range points {
		resp.Points = append(resp.Points, &weatherpb.SeriesPoint{
			TimestampIso: domain.FormatTimestamp(p.Timestamp),
			AvgTempC:     p.AvgTempC,
		})
	}
	return resp, nil
}

func invalid(format string, args ...any) error {
	return domain.NewError(domain.ErrInvalidArgument, fmt.Sprintf(format, args...), nil)
}

// isoLayouts are tried in order. Timestamps without a zone are UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
