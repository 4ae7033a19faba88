package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/couchcryptid/weather-observation-service/internal/domain"
	"github.com/go-playground/validator/v10"
)

// CurrentReader returns the latest snapshot for a city, or nil if none.
type CurrentReader interface {
	GetCurrent(ctx context.Context, city string) (*domain.CurrentSnapshot, error)
}

// SeriesReader returns temperature series over recent windows.
type SeriesReader interface {
	GetBucketedSeries(ctx context.Context, city string, minutes, bucketMinutes int) ([]domain.SeriesPoint, error)
	GetDailySeries(ctx context.Context, city string, days int) ([]domain.DailyPoint, error)
}

type currentQuery struct {
	City string `query:"city" validate:"required"`
}

type seriesQuery struct {
	City    string `query:"city" validate:"required"`
	Minutes int    `query:"minutes" validate:"min=1,max=1440"`
	Bucket  int    `query:"bucket" validate:"min=1,max=60"`
}

type dailyQuery struct {
	City string `query:"city" validate:"required"`
	Days int    `query:"days" validate:"min=1,max=60"`
}

type seriesPoint struct {
	Timestamp string  `json:"timestamp"`
	AvgTempC  float64 `json:"avg_temp_c"`
	Icon      *string `json:"icon,omitempty"`
	IconURL   *string `json:"icon_url,omitempty"`
}

type seriesResponse struct {
	City          string        `json:"city"`
	Points        []seriesPoint `json:"points"`
	BucketMinutes int           `json:"bucket_minutes"`
	WindowMinutes int           `json:"window_minutes"`
}

type dailyPoint struct {
	Date     string  `json:"date"`
	AvgTempC float64 `json:"avg_temp_c"`
	Icon     *string `json:"icon,omitempty"`
	IconURL  *string `json:"icon_url,omitempty"`
}

type dailyResponse struct {
	City       string       `json:"city"`
	Points     []dailyPoint `json:"points"`
	WindowDays int          `json:"window_days"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("query")
	})
	return v
}

type api struct {
	current CurrentReader
	series  SeriesReader
	logger  *slog.Logger
}

func (a *api) handleCurrent(w http.ResponseWriter, r *http.Request) {
	q := currentQuery{City: cityParam(r)}
	if err := validate.Struct(q); err != nil {
		writeValidationError(w, err)
		return
	}

	snap, err := a.current.GetCurrent(r.Context(), q.City)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	if snap == nil {
		writeError(w, http.StatusNotFound, "No current observation for city")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (a *api) handleSeries(w http.ResponseWriter, r *http.Request) {
	minutes, err := intParam(r, "minutes", 60)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	bucket, err := intParam(r, "bucket", 5)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	q := seriesQuery{City: cityParam(r), Minutes: minutes, Bucket: bucket}
	if err := validate.Struct(q); err != nil {
		writeValidationError(w, err)
		return
	}

	points, err := a.series.GetBucketedSeries(r.Context(), q.City, q.Minutes, q.Bucket)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	if len(points) == 0 {
		writeError(w, http.StatusNotFound, "No data for city/time range")
		return
	}

	resp := seriesResponse{
		City:          domain.CanonicalCity(q.City),
		Points:        make([]seriesPoint, 0, len(points)),
		BucketMinutes: q.Bucket,
		WindowMinutes: q.Minutes,
	}
	for _, p := range points {
		icon, iconURL := iconFields(p.Icon)
		resp.Points = append(resp.Points, seriesPoint{
			Timestamp: domain.FormatTimestamp(p.Timestamp),
			AvgTempC:  round2(p.AvgTempC),
			Icon:      icon,
			IconURL:   iconURL,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) handleDaily(w http.ResponseWriter, r *http.Request) {
	days, err := intParam(r, "days", 7)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	q := dailyQuery{City: cityParam(r), Days: days}
	if err := validate.Struct(q); err != nil {
		writeValidationError(w, err)
		return
	}

	points, err := a.series.GetDailySeries(r.Context(), q.City, q.Days)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	if len(points) == 0 {
		writeError(w, http.StatusNotFound, "No daily data for city")
		return
	}

	resp := dailyResponse{
		City:       domain.CanonicalCity(q.City),
		Points:     make([]dailyPoint, 0, len(points)),
		WindowDays: q.Days,
	}
	for _, p := range points {
		icon, iconURL := iconFields(p.Icon)
		resp.Points = append(resp.Points, dailyPoint{
			Date:     p.Date,
			AvgTempC: round2(p.AvgTempC),
			Icon:     icon,
			IconURL:  iconURL,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		a.logger.Error("api request failed", "path", r.URL.Path, "error", err)
	}
	writeError(w, status, domain.Message(err))
}

// statusFor maps error kinds onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func cityParam(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("city"))
}

func intParam(r *http.Request, name string, def int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be <= %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	writeError(w, http.StatusUnprocessableEntity, strings.Join(msgs, "; "))
}

func iconFields(icon string) (*string, *string) {
	if icon == "" {
		return nil, nil
	}
	u := domain.IconURL(icon)
	return &icon, &u
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
