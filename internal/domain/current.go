package domain

import (
	"time"
)

// FormatTimestamp renders t as an RFC 3339 UTC string ending in "Z".
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// CurrentSnapshot is the enriched view of a city's latest observation.
// Nested values are nil when the stored payload lacks them.
type CurrentSnapshot struct {
	City               string         `json:"city"`
	ObservationTimeISO *string        `json:"observation_time_iso"`
	SourceTimestampISO *string        `json:"source_timestamp_iso"`
	Coords             Coords         `json:"coords"`
	Weather            WeatherSummary `json:"weather"`
	Temperature        Temperature    `json:"temperature"`
	Pressure           Pressure       `json:"pressure"`
	HumidityPct        *float64       `json:"humidity_pct"`
	VisibilityM        *float64       `json:"visibility_m"`
	Wind               Wind           `json:"wind"`
	CloudCoveragePct   *float64       `json:"cloud_coverage_pct"`
	Sun                SunTimes       `json:"sun"`
	Country            *string        `json:"country"`
}

type Coords struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type WeatherSummary struct {
	ID          *float64 `json:"id"`
	Main        *string  `json:"main"`
	Description *string  `json:"description"`
	Icon        *string  `json:"icon"`
	IconURL     *string  `json:"icon_url"`
}

type Temperature struct {
	TempC      *float64 `json:"temp_c"`
	FeelsLikeC *float64 `json:"feels_like_c"`
	MinC       *float64 `json:"min_c"`
	MaxC       *float64 `json:"max_c"`
}

type Pressure struct {
	HPa            *float64 `json:"hpa"`
	SeaLevelHPa    *float64 `json:"sea_level_hpa"`
	GroundLevelHPa *float64 `json:"ground_level_hpa"`
}

type Wind struct {
	SpeedMS *float64 `json:"speed_ms"`
	Deg     *float64 `json:"deg"`
}

type SunTimes struct {
	SunriseISO *string `json:"sunrise_iso"`
	SunsetISO  *string `json:"sunset_iso"`
}

// BuildCurrentSnapshot derives the snapshot from a stored observation.
// requestedCity is the last fallback for the city name.
func BuildCurrentSnapshot(obs Observation, requestedCity string) CurrentSnapshot {
	raw := obs.Raw
	main := objectAt(raw, "main")
	wind := objectAt(raw, "wind")
	sys := objectAt(raw, "sys")
	coord := objectAt(raw, "coord")
	weather0 := firstObject(raw, "weather")

	city := obs.City
	if city == "" {
		if name := stringAt(raw, "name"); name != nil && *name != "" {
			city = *name
		} else {
			city = requestedCity
		}
	}

	var obsTime *string
	if !obs.ObservationTime.IsZero() {
		s := FormatTimestamp(obs.ObservationTime)
		obsTime = &s
	}

	var icon, iconURL *string
	if code := NormalizeIcon(weather0["icon"]); code != "" {
		u := IconURL(code)
		icon, iconURL = &code, &u
	}

	return CurrentSnapshot{
		City:               city,
		ObservationTimeISO: obsTime,
		SourceTimestampISO: unixAt(raw, "dt"),
		Coords:             Coords{Lat: floatAt(coord, "lat"), Lon: floatAt(coord, "lon")},
		Weather: WeatherSummary{
			ID:          floatAt(weather0, "id"),
			Main:        stringAt(weather0, "main"),
			Description: stringAt(weather0, "description"),
			Icon:        icon,
			IconURL:     iconURL,
		},
		Temperature: Temperature{
			TempC:      floatAt(main, "temp"),
			FeelsLikeC: floatAt(main, "feels_like"),
			MinC:       floatAt(main, "temp_min"),
			MaxC:       floatAt(main, "temp_max"),
		},
		Pressure: Pressure{
			HPa:            floatAt(main, "pressure"),
			SeaLevelHPa:    floatAt(main, "sea_level"),
			GroundLevelHPa: floatAt(main, "grnd_level"),
		},
		HumidityPct:      floatAt(main, "humidity"),
		VisibilityM:      floatAt(raw, "visibility"),
		Wind:             Wind{SpeedMS: floatAt(wind, "speed"), Deg: floatAt(wind, "deg")},
		CloudCoveragePct: floatAt(objectAt(raw, "clouds"), "all"),
		Sun:              SunTimes{SunriseISO: unixAt(sys, "sunrise"), SunsetISO: unixAt(sys, "sunset")},
		Country:          stringAt(sys, "country"),
	}
}

// unixAt reads a Unix-seconds field as an ISO timestamp.
func unixAt(m map[string]any, key string) *string {
	sec := floatAt(m, key)
	if sec == nil {
		return nil
	}
	s := FormatTimestamp(time.Unix(int64(*sec), 0))
	return &s
}
