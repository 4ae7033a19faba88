package domain

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizedWeather is the compact view of one upstream payload.
type NormalizedWeather struct {
	City        string
	TempC       *float64
	HumidityPct *int
	Conditions  *string
	WindSpeedMS *float64
	FetchedAt   time.Time
}

// CanonicalCity folds a city name to ASCII: NFKD decomposition followed by
// removal of every non-ASCII rune. If nothing is left the input is returned.
func CanonicalCity(name string) string {
	// transform.Chain keeps internal buffers, so build one per call.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	folded, _, err := transform.String(t, name)
	if err != nil || folded == "" {
		return name
	}
	return folded
}

// NormalizeWeather extracts the compact view from an upstream payload.
// inputCity is used when the payload carries no name.
func NormalizeWeather(payload map[string]any, inputCity string, fetchedAt time.Time) NormalizedWeather {
	name := inputCity
	if s, ok := payload["name"].(string); ok && strings.TrimSpace(s) != "" {
		name = s
	}

	main := objectAt(payload, "main")
	var conditions *string
	if w := firstObject(payload, "weather"); w != nil {
		conditions = stringAt(w, "description")
	}

	return NormalizedWeather{
		City:        CanonicalCity(name),
		TempC:       floatAt(main, "temp"),
		HumidityPct: intAt(main, "humidity"),
		Conditions:  conditions,
		WindSpeedMS: floatAt(objectAt(payload, "wind"), "speed"),
		FetchedAt:   fetchedAt.UTC(),
	}
}

// Observation builds the record persisted for a fetched payload.
func (n NormalizedWeather) Observation(raw map[string]any) Observation {
	return Observation{
		City:            n.City,
		ObservationTime: n.FetchedAt,
		FetchedAt:       n.FetchedAt,
		TempC:           n.TempC,
		HumidityPct:     n.HumidityPct,
		WindSpeedMS:     n.WindSpeedMS,
		Conditions:      n.Conditions,
		Provider:        ProviderOpenWeatherMap,
		Raw:             raw,
	}
}
