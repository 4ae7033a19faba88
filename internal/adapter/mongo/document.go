package mongo

import (
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// observationDoc is the stored shape of an observation.
type observationDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	City            string             `bson:"city"`
	ObservationTime time.Time          `bson:"observation_time"`
	FetchedAt       time.Time          `bson:"fetched_at"`
	TempC           *float64           `bson:"temp_c"`
	HumidityPct     *int               `bson:"humidity_pct"`
	WindSpeedMS     *float64           `bson:"wind_speed_ms"`
	Conditions      *string            `bson:"conditions"`
	Provider        string             `bson:"provider"`
	Raw             bson.M             `bson:"raw,omitempty"`
}

type seriesRow struct {
	Timestamp time.Time `bson:"ts"`
	AvgTemp   *float64  `bson:"avg_temp"`
	Icon      any       `bson:"icon"`
}

type dailyRow struct {
	Date    string   `bson:"_id"`
	AvgTemp *float64 `bson:"avg_temp"`
	Icon    any      `bson:"icon"`
}

func toDoc(obs domain.Observation) observationDoc {
	doc := observationDoc{
		City:            obs.City,
		ObservationTime: obs.ObservationTime.UTC(),
		FetchedAt:       obs.FetchedAt.UTC(),
		TempC:           obs.TempC,
		HumidityPct:     obs.HumidityPct,
		WindSpeedMS:     obs.WindSpeedMS,
		Conditions:      obs.Conditions,
		Provider:        obs.Provider,
	}
	if obs.Raw != nil {
		doc.Raw = bson.M(obs.Raw)
	}
	return doc
}

func fromDoc(doc observationDoc) domain.Observation {
	obs := domain.Observation{
		City:            doc.City,
		ObservationTime: doc.ObservationTime.UTC(),
		FetchedAt:       doc.FetchedAt.UTC(),
		TempC:           doc.TempC,
		HumidityPct:     doc.HumidityPct,
		WindSpeedMS:     doc.WindSpeedMS,
		Conditions:      doc.Conditions,
		Provider:        doc.Provider,
	}
	if !doc.ID.IsZero() {
		obs.ID = doc.ID.Hex()
	}
	if doc.Raw != nil {
		obs.Raw, _ = plain(doc.Raw).(map[string]any)
	}
	return obs
}

func (r seriesRow) point() domain.SeriesPoint {
	return domain.SeriesPoint{
		Timestamp: r.Timestamp.UTC(),
		AvgTempC:  valueOrZero(r.AvgTemp),
		Icon:      domain.NormalizeIcon(plain(r.Icon)),
	}
}

func (r dailyRow) point() domain.DailyPoint {
	return domain.DailyPoint{
		Date:     r.Date,
		AvgTempC: valueOrZero(r.AvgTemp),
		Icon:     domain.NormalizeIcon(plain(r.Icon)),
	}
}

func valueOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// plain converts driver container types (M, D, A) into map[string]any and
// []any so domain code can read decoded payloads with plain type switches.
func plain(v any) any {
	switch t := v.(type) {
	case primitive.M:
		return plainMap(t)
	case map[string]any:
		return plainMap(t)
	case primitive.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = plain(e.Value)
		}
		return m
	case primitive.A:
		return plainSlice(t)
	case []any:
		return plainSlice(t)
	case primitive.DateTime:
		return t.Time().UTC()
	default:
		return v
	}
}

func plainMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = plain(v)
	}
	return out
}

func plainSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = plain(v)
	}
	return out
}
