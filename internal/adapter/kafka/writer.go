package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/config"
	"github.com/couchcryptid/weather-observation-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// EventType is the value of the event_type header on every message.
const EventType = "observation_recorded"

// Writer publishes recorded observations to a Kafka topic.
// It implements service.ObservationPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured observation topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishObservation writes one observation event keyed by city, so a
// city's events stay ordered within its partition.
func (w *Writer) PublishObservation(ctx context.Context, obs domain.Observation) error {
	msg, err := serializeToMessage(obs)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish observation: %w", err)
	}
	w.logger.Debug("observation published", "city", obs.City, "id", obs.ID)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// observationEvent is the message body. The raw upstream payload stays in
// the database and is not repeated here.
type observationEvent struct {
	ID              string    `json:"id"`
	City            string    `json:"city"`
	ObservationTime time.Time `json:"observation_time"`
	FetchedAt       time.Time `json:"fetched_at"`
	TempC           *float64  `json:"temp_c"`
	HumidityPct     *int      `json:"humidity_pct"`
	WindSpeedMS     *float64  `json:"wind_speed_ms"`
	Conditions      *string   `json:"conditions"`
	Icon            string    `json:"icon,omitempty"`
	Provider        string    `json:"provider"`
}

// serializeToMessage marshals an observation into a Kafka message.
func serializeToMessage(obs domain.Observation) (kafkago.Message, error) {
	data, err := json.Marshal(observationEvent{
		ID:              obs.ID,
		City:            obs.City,
		ObservationTime: obs.ObservationTime.UTC(),
		FetchedAt:       obs.FetchedAt.UTC(),
		TempC:           obs.TempC,
		HumidityPct:     obs.HumidityPct,
		WindSpeedMS:     obs.WindSpeedMS,
		Conditions:      obs.Conditions,
		Icon:            domain.ExtractIcon(obs.Raw),
		Provider:        obs.Provider,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize observation: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(obs.City),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(EventType)},
			{Key: "observation_time", Value: []byte(obs.ObservationTime.UTC().Format(time.RFC3339))},
		},
	}, nil
}
