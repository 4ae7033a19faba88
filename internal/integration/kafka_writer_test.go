//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/adapter/kafka"
	"github.com/couchcryptid/weather-observation-service/internal/adapter/memory"
	"github.com/couchcryptid/weather-observation-service/internal/adapter/openweather"
	"github.com/couchcryptid/weather-observation-service/internal/config"
	"github.com/couchcryptid/weather-observation-service/internal/domain"
	"github.com/couchcryptid/weather-observation-service/internal/observability"
	"github.com/couchcryptid/weather-observation-service/internal/service"
	"github.com/jonboulle/clockwork"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTopic = "test-observations"

// publishedMessage holds a decoded message read from the observation topic.
type publishedMessage struct {
	Body    map[string]any
	Key     string
	Headers map[string]string
}

func readPublished(ctx context.Context, t *testing.T, consumer *kafkago.Reader) publishedMessage {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from observation topic")

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	return publishedMessage{Body: body, Key: string(msg.Key), Headers: headers}
}

func newConsumer(t *testing.T, broker string) *kafkago.Reader {
	t.Helper()
	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })
	return consumer
}

// TestWeatherServicePublishesObservation drives a fetch through the service
// against a stub upstream and reads the event back from Kafka.
func TestWeatherServicePublishesObservation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Zürich",
			"dt": 1714125600,
			"main": {"temp": 12.5, "humidity": 71},
			"wind": {"speed": 3.1},
			"weather": [{"main": "Clouds", "description": "broken clouds", "icon": "04d"}]
		}`))
	}))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{KafkaBrokers: []string{broker}, KafkaTopic: testTopic}
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	metrics := observability.NewMetricsForTesting()
	clock := clockwork.NewFakeClockAt(storeNow)
	provider := openweather.NewClient("test-key", upstream.URL, 5*time.Second, clock, metrics, discardLogger())
	store := memory.NewStore(clock)
	weather := service.NewWeatherService(provider, store, writer, clock, discardLogger(), metrics)

	got, err := weather.GetCurrentWeather(ctx, "Zürich")
	require.NoError(t, err)
	assert.Equal(t, "Zurich", got.City)

	msg := readPublished(ctx, t, newConsumer(t, broker))
	assert.Equal(t, "Zurich", msg.Key)
	assert.Equal(t, kafka.EventType, msg.Headers["event_type"])
	assert.NotEmpty(t, msg.Headers["observation_time"])
	assert.Equal(t, "Zurich", msg.Body["city"])
	assert.InDelta(t, 12.5, msg.Body["temp_c"], 1e-9)
	assert.Equal(t, "04d", msg.Body["icon"])
	assert.Equal(t, domain.ProviderOpenWeatherMap, msg.Body["provider"])
	assert.NotContains(t, msg.Body, "raw")

	stored, err := store.LatestObservation(ctx, "Zurich")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID, msg.Body["id"])
}
