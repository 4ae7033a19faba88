package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCurrentSnapshot(t *testing.T) {
	obsTime := time.Date(2024, 4, 26, 10, 0, 0, 0, time.UTC)
	obs := Observation{
		City:            "Constanta",
		ObservationTime: obsTime,
		Raw: map[string]any{
			"dt":         float64(1714125600),
			"coord":      map[string]any{"lat": 44.18, "lon": 28.63},
			"weather":    []any{map[string]any{"id": float64(500), "main": "Rain", "description": "light rain", "icon": "10d"}},
			"main":       map[string]any{"temp": 12.5, "feels_like": 11.9, "temp_min": 11.0, "temp_max": 13.0, "pressure": int32(1012), "humidity": int32(81)},
			"visibility": int64(10000),
			"wind":       map[string]any{"speed": 4.1, "deg": float64(200)},
			"clouds":     map[string]any{"all": float64(75)},
			"sys":        map[string]any{"country": "RO", "sunrise": float64(1714100000), "sunset": float64(1714150000)},
		},
	}

	snap := BuildCurrentSnapshot(obs, "constanța")

	assert.Equal(t, "Constanta", snap.City)
	require.NotNil(t, snap.ObservationTimeISO)
	assert.Equal(t, "2024-04-26T10:00:00Z", *snap.ObservationTimeISO)
	require.NotNil(t, snap.SourceTimestampISO)
	assert.Equal(t, "2024-04-26T10:00:00Z", *snap.SourceTimestampISO)
	require.NotNil(t, snap.Weather.IconURL)
	assert.Equal(t, "https://openweathermap.org/img/wn/10d@2x.png", *snap.Weather.IconURL)
	require.NotNil(t, snap.Pressure.HPa)
	assert.InDelta(t, 1012, *snap.Pressure.HPa, 1e-9)
	require.NotNil(t, snap.VisibilityM)
	assert.InDelta(t, 10000, *snap.VisibilityM, 1e-9)
	require.NotNil(t, snap.Country)
	assert.Equal(t, "RO", *snap.Country)
	assert.Nil(t, snap.Pressure.SeaLevelHPa)
}

func TestBuildCurrentSnapshot_EmptyRaw(t *testing.T) {
	snap := BuildCurrentSnapshot(Observation{}, "Oslo")

	assert.Equal(t, "Oslo", snap.City)
	assert.Nil(t, snap.ObservationTimeISO)
	assert.Nil(t, snap.Weather.Icon)
	assert.Nil(t, snap.Weather.IconURL)
	assert.Nil(t, snap.Temperature.TempC)
	assert.Nil(t, snap.Sun.SunriseISO)
}
