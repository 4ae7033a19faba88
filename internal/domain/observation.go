package domain

import "time"

// ProviderOpenWeatherMap tags observations fetched from the live upstream.
const ProviderOpenWeatherMap = "openweathermap"

// ProviderSynthetic tags observations produced by the seed generator.
const ProviderSynthetic = "synthetic"

// Observation is one stored weather sample for a city.
type Observation struct {
	ID              string         `json:"id,omitempty"`
	City            string         `json:"city"`
	ObservationTime time.Time      `json:"observation_time"`
	FetchedAt       time.Time      `json:"fetched_at"`
	TempC           *float64       `json:"temp_c"`
	HumidityPct     *int           `json:"humidity_pct"`
	WindSpeedMS     *float64       `json:"wind_speed_ms"`
	Conditions      *string        `json:"conditions"`
	Provider        string         `json:"provider"`
	Raw             map[string]any `json:"raw,omitempty"`
}

// WithDefaults fills the timestamps a stored observation must carry.
// A zero ObservationTime takes FetchedAt, and a zero FetchedAt takes now.
func (o Observation) WithDefaults(now time.Time) Observation {
	if o.FetchedAt.IsZero() {
		o.FetchedAt = now
	}
	if o.ObservationTime.IsZero() {
		o.ObservationTime = o.FetchedAt
	}
	o.FetchedAt = o.FetchedAt.UTC()
	o.ObservationTime = o.ObservationTime.UTC()
	if o.Provider == "" {
		o.Provider = ProviderOpenWeatherMap
	}
	return o
}

// SeriesPoint is one time bucket of a temperature series.
type SeriesPoint struct {
	Timestamp time.Time
	AvgTempC  float64
	Icon      string
}

// DailyPoint is one UTC calendar day of a temperature series.
type DailyPoint struct {
	Date     string
	AvgTempC float64
	Icon     string
}
