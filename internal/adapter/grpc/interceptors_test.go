package grpc

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/couchcryptid/weather-observation-service/internal/adapter/grpc/weatherpb"
	"github.com/couchcryptid/weather-observation-service/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: weatherpb.WeatherService_GetCurrentWeather_FullMethodName}

func okHandler(called *bool) grpc.UnaryHandler {
	return func(_ context.Context, _ any) (any, error) {
		*called = true
		return "ok", nil
	}
}

func TestAuthInterceptor(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		md       metadata.MD
		allowed  bool
	}{
		{"matching key", "k", metadata.Pairs(APIKeyHeader, "k"), true},
		{"wrong key", "k", metadata.Pairs(APIKeyHeader, "x"), false},
		{"prefix of key", "key", metadata.Pairs(APIKeyHeader, "ke"), false},
		{"no metadata", "k", nil, false},
		{"empty configured key", "", metadata.Pairs(APIKeyHeader, ""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.md != nil {
				ctx = metadata.NewIncomingContext(ctx, tt.md)
			}
			var called bool
			_, err := AuthInterceptor(tt.expected)(ctx, nil, testInfo, okHandler(&called))

			assert.Equal(t, tt.allowed, called)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, codes.Unauthenticated, status.Code(err))
			}
		})
	}
}

func TestLoggingInterceptor_RecordsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	metrics := observability.NewMetricsForTesting()
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "req-42"))

	var called bool
	resp, err := LoggingInterceptor(logger, metrics)(ctx, nil, testInfo, okHandler(&called))
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.RPCRequests.WithLabelValues(weatherpb.WeatherService_GetCurrentWeather_FullMethodName, "OK")), 0)
}

func TestLoggingInterceptor_GeneratesRequestID(t *testing.T) {
	assert.NotEmpty(t, incomingRequestID(context.Background()))
}

func TestParseISO(t *testing.T) {
	for _, s := range []string{"2024-04-26T10:00:00Z", "2024-04-26T12:00:00+02:00", "2024-04-26T10:00:00", "2024-04-26T10:00:00.123456"} {
		ts, err := parseISO(s)
		require.NoError(t, err, s)
		assert.Equal(t, 10, ts.Hour(), s)
	}
	_, err := parseISO("26/04/2024")
	assert.Error(t, err)
}
