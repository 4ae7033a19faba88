// Package seed generates synthetic observations for chart testing without
// calling the upstream provider.
//
// Output is deterministic for a given clock and city list: every city draws
// from its own random source seeded by the city name.
package seed

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/domain"
	"github.com/jonboulle/clockwork"
)

// Mode selects the shape of the generated series.
type Mode string

const (
	// ModeAll covers Days days at the configured interval.
	ModeAll Mode = "all"
	// ModeDaily emits a morning and an evening sample per day.
	ModeDaily Mode = "daily"
	// ModeSeries covers the last 24 hours at the configured interval.
	ModeSeries Mode = "series"
)

var dayIcons = []string{"01d", "02d", "03d", "04d", "09d", "10d", "11d", "13d", "50d"}

var conditionsByIcon = map[string]string{
	"01": "clear sky",
	"02": "few clouds",
	"03": "scattered clouds",
	"04": "overcast clouds",
	"09": "shower rain",
	"10": "rain",
	"11": "thunderstorm",
	"13": "snow",
	"50": "mist",
}

// Options configures Generate.
type Options struct {
	Cities          []string
	Days            int
	IntervalMinutes int
	Mode            Mode
}

// Validate reports the first invalid option.
func (o Options) Validate() error {
	if len(o.Cities) == 0 {
		return errors.New("at least one city is required")
	}
	switch o.Mode {
	case ModeAll, ModeDaily, ModeSeries:
	default:
		return fmt.Errorf("invalid mode %q: must be all, daily, or series", o.Mode)
	}
	if o.Mode != ModeSeries && o.Days < 1 {
		return fmt.Errorf("days must be positive, got %d", o.Days)
	}
	if o.Mode != ModeDaily && o.IntervalMinutes < 1 {
		return fmt.Errorf("interval must be positive, got %d minutes", o.IntervalMinutes)
	}
	return nil
}

// Generator produces synthetic observations relative to its clock.
type Generator struct {
	clock clockwork.Clock
}

// NewGenerator creates a Generator.
func NewGenerator(clock clockwork.Clock) *Generator {
	return &Generator{clock: clock}
}

// Generate returns observations for every city, ordered by city then time.
func (g *Generator) Generate(opts Options) ([]domain.Observation, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	now := g.clock.Now().UTC().Truncate(time.Minute)
	var out []domain.Observation
	for _, city := range opts.Cities {
		rng := cityRand(city)
		base := -2 + rng.Float64()*24
		for _, ts := range timestamps(now, opts) {
			out = append(out, synthesize(rng, city, base, ts))
		}
	}
	return out, nil
}

// Ramp returns points observations for city starting at start, spaced by
// step, with temperatures base, base+delta, base+2*delta and so on.
func Ramp(city string, start time.Time, points int, step time.Duration, base, delta float64) []domain.Observation {
	out := make([]domain.Observation, 0, points)
	humidity := 50
	wind := 2.0
	conditions := "synthetic"
	for i := range points {
		ts := start.Add(time.Duration(i) * step).UTC()
		temp := base + float64(i)*delta
		out = append(out, domain.Observation{
			City:            city,
			ObservationTime: ts,
			FetchedAt:       ts,
			TempC:           &temp,
			HumidityPct:     &humidity,
			WindSpeedMS:     &wind,
			Conditions:      &conditions,
			Provider:        domain.ProviderSynthetic,
		})
	}
	return out
}

func timestamps(now time.Time, opts Options) []time.Time {
	step := time.Duration(opts.IntervalMinutes) * time.Minute
	switch opts.Mode {
	case ModeSeries:
		return stepped(now.Add(-24*time.Hour), 24*time.Hour, step)
	case ModeDaily:
		start := now.AddDate(0, 0, -(opts.Days - 1))
		out := make([]time.Time, 0, 2*opts.Days)
		for d := range opts.Days {
			y, m, day := start.AddDate(0, 0, d).Date()
			out = append(out,
				time.Date(y, m, day, 8, 0, 0, 0, time.UTC),
				time.Date(y, m, day, 18, 0, 0, 0, time.UTC),
			)
		}
		return out
	default:
		start := now.AddDate(0, 0, -(opts.Days - 1))
		return stepped(start, time.Duration(opts.Days)*24*time.Hour, step)
	}
}

func stepped(start time.Time, span, step time.Duration) []time.Time {
	var out []time.Time
	for off := time.Duration(0); off < span; off += step {
		out = append(out, start.Add(off))
	}
	return out
}

func synthesize(rng *rand.Rand, city string, base float64, ts time.Time) domain.Observation {
	hours := float64(ts.Hour()) + float64(ts.Minute())/60
	diurnal := 6 * math.Sin(hours/24*2*math.Pi)
	seasonal := 4 * math.Sin(float64(ts.YearDay()%30)/30*2*math.Pi)
	temp := base + diurnal + seasonal + (rng.Float64()*3 - 1.5)
	humidity := max(25, min(100, int(65+rng.NormFloat64()*15)))
	wind := math.Round((0.2+rng.Float64()*8.3)*100) / 100

	icon := dayIcons[rng.IntN(len(dayIcons))]
	if ts.Hour() < 6 || ts.Hour() >= 20 {
		icon = strings.Replace(icon, "d", "n", 1)
	}
	conditions, ok := conditionsByIcon[icon[:2]]
	if !ok {
		conditions = "variable conditions"
	}

	return domain.Observation{
		City:            city,
		ObservationTime: ts,
		FetchedAt:       ts,
		TempC:           &temp,
		HumidityPct:     &humidity,
		WindSpeedMS:     &wind,
		Conditions:      &conditions,
		Provider:        domain.ProviderSynthetic,
		Raw: map[string]any{
			"weather": []any{map[string]any{
				"main":        headline(conditions),
				"description": conditions,
				"icon":        icon,
			}},
			"main": map[string]any{
				"temp":       temp,
				"feels_like": temp - rng.Float64()*2,
				"pressure":   990 + rng.IntN(46),
				"humidity":   humidity,
			},
			"wind": map[string]any{"speed": wind, "deg": rng.IntN(360)},
			"dt":   ts.Unix(),
			"name": city,
		},
	}
}

// headline capitalizes the first word of conditions, as in "Clear".
func headline(conditions string) string {
	word, _, _ := strings.Cut(conditions, " ")
	return strings.ToUpper(word[:1]) + word[1:]
}

func cityRand(city string) *rand.Rand {
	var sum uint64
	for _, r := range city {
		sum += uint64(r)
	}
	return rand.New(rand.NewPCG(sum, 0))
}
