package grpc_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	grpcadapter "github.com/couchcryptid/weather-observation-service/internal/adapter/grpc"
	"github.com/couchcryptid/weather-observation-service/internal/adapter/grpc/weatherpb"
	"github.com/couchcryptid/weather-observation-service/internal/config"
	"github.com/couchcryptid/weather-observation-service/internal/domain"
	"github.com/couchcryptid/weather-observation-service/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const testAPIKey = "s3cret"

var fetchedAt = time.Date(2024, 4, 26, 10, 0, 0, 0, time.UTC)

// --- fakes ---

type fakeWeather struct {
	result domain.NormalizedWeather
	err    error
	calls  int
}

func (f *fakeWeather) GetCurrentWeather(_ context.Context, _ string) (domain.NormalizedWeather, error) {
	f.calls++
	return f.result, f.err
}

type fakeSeries struct {
	points    []domain.SeriesPoint
	err       error
	calls     int
	gotStart  time.Time
	gotEnd    time.Time
	gotBucket int
}

func (f *fakeSeries) GetSeriesRange(_ context.Context, _ string, start, end time.Time, bucket int) ([]domain.SeriesPoint, error) {
	f.calls++
	f.gotStart, f.gotEnd, f.gotBucket = start, end, bucket
	return f.points, f.err
}

func ptr[T any](v T) *T { return &v }

// startServer serves on an in-memory listener and returns a dial option
// that connects to it.
func startServer(t *testing.T, weather *fakeWeather, series *fakeSeries) grpc.DialOption {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	cfg := &config.Config{GRPCAPIKey: testAPIKey, GRPCWorkers: 2, GRPCMaxConcurrentStreams: 8}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := grpcadapter.NewServer(cfg, grpcadapter.NewHandler(weather, series), logger, observability.NewMetricsForTesting())

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})

	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

// newClient starts a server and returns a client that authenticates with apiKey.
func newClient(t *testing.T, weather *fakeWeather, series *fakeSeries, apiKey string) *grpcadapter.Client {
	t.Helper()

	client, err := grpcadapter.NewClient("passthrough:///bufnet", apiKey, startServer(t, weather, series))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// newRawConn starts a server and returns a bare connection with no defaults
// beyond insecure transport, as any generated client would use.
func newRawConn(t *testing.T, weather *fakeWeather, series *fakeSeries) *grpc.ClientConn {
	t.Helper()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		startServer(t, weather, series),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func withAPIKey(key string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), grpcadapter.APIKeyHeader, key)
}

// --- auth ---

func TestAuth_RejectsWrongKey(t *testing.T) {
	weather := &fakeWeather{}
	client := newClient(t, weather, &fakeSeries{}, "wrong")

	_, err := client.GetCurrentWeather(context.Background(), "Oslo")
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "invalid API key", status.Convert(err).Message())
	assert.Zero(t, weather.calls, "handler must not run")
}

func TestAuth_RejectsMissingKey(t *testing.T) {
	series := &fakeSeries{}
	client := newClient(t, &fakeWeather{}, series, "")

	_, err := client.GetTemperatureSeries(context.Background(), &weatherpb.GetSeriesRequest{City: "Oslo"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Zero(t, series.calls)
}

// --- GetCurrentWeather ---

func TestGetCurrentWeather_Success(t *testing.T) {
	weather := &fakeWeather{result: domain.NormalizedWeather{
		City:        "Constanta",
		TempC:       ptr(12.5),
		HumidityPct: ptr(81),
		Conditions:  ptr("light rain"),
		FetchedAt:   fetchedAt,
	}}
	client := newClient(t, weather, &fakeSeries{}, testAPIKey)

	resp, err := client.GetCurrentWeather(context.Background(), "Constanța")
	require.NoError(t, err)

	assert.Equal(t, "Constanta", resp.City)
	assert.InDelta(t, 12.5, resp.TempC, 1e-9)
	assert.Equal(t, int32(81), resp.HumidityPct)
	assert.Equal(t, "light rain", resp.Conditions)
	assert.Zero(t, resp.WindSpeedMs, "missing values default to zero")
	assert.Equal(t, "2024-04-26T10:00:00Z", resp.FetchedAtIso)
}

func TestGetCurrentWeather_ErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"invalid argument", domain.NewError(domain.ErrInvalidArgument, "City required", nil), codes.InvalidArgument, "City required"},
		{"not found", domain.NewError(domain.ErrNotFound, "City 'X' not found", domain.ErrUpstreamNotFound), codes.NotFound, "City 'X' not found"},
		{"unavailable", domain.NewError(domain.ErrUnavailable, "HTTP error: timeout", nil), codes.Unavailable, "HTTP error: timeout"},
		{"internal", domain.NewError(domain.ErrInternal, "upstream error 500", nil), codes.Internal, "upstream error 500"},
		{"storage", domain.NewError(domain.ErrStorage, "storage error", errors.New("reset")), codes.Internal, "storage error"},
		{"unclassified", errors.New("boom"), codes.Internal, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, &fakeWeather{err: tt.err}, &fakeSeries{}, testAPIKey)

			_, err := client.GetCurrentWeather(context.Background(), "X")
			assert.Equal(t, tt.code, status.Code(err))
			assert.Equal(t, tt.msg, status.Convert(err).Message())
		})
	}
}

// --- wire format ---

func TestGetCurrentWeather_GeneratedStub(t *testing.T) {
	weather := &fakeWeather{result: domain.NormalizedWeather{City: "London", TempC: ptr(9.0), FetchedAt: fetchedAt}}
	stub := weatherpb.NewWeatherServiceClient(newRawConn(t, weather, &fakeSeries{}))

	resp, err := stub.GetCurrentWeather(withAPIKey(testAPIKey), &weatherpb.GetWeatherRequest{City: "London"})
	require.NoError(t, err)
	assert.Equal(t, "London", resp.GetCity())
	assert.InDelta(t, 9.0, resp.GetTempC(), 1e-9)
	assert.Equal(t, 1, weather.calls)
}

func TestGetCurrentWeather_DecodesProtobufWire(t *testing.T) {
	// StringValue and GetWeatherRequest share the encoding of field 1.
	req := wrapperspb.String("London")
	want, err := proto.Marshal(&weatherpb.GetWeatherRequest{City: "London"})
	require.NoError(t, err)
	got, err := proto.Marshal(req)
	require.NoError(t, err)
	require.Equal(t, want, got)

	weather := &fakeWeather{result: domain.NormalizedWeather{City: "London", FetchedAt: fetchedAt}}
	conn := newRawConn(t, weather, &fakeSeries{})

	out := new(weatherpb.GetWeatherResponse)
	err = conn.Invoke(withAPIKey(testAPIKey), weatherpb.WeatherService_GetCurrentWeather_FullMethodName, req, out)
	require.NoError(t, err)
	assert.Equal(t, "London", out.GetCity())
	assert.Equal(t, "2024-04-26T10:00:00Z", out.GetFetchedAtIso())
	assert.Equal(t, 1, weather.calls)
}

func TestGeneratedStub_RejectsWrongKey(t *testing.T) {
	weather := &fakeWeather{}
	stub := weatherpb.NewWeatherServiceClient(newRawConn(t, weather, &fakeSeries{}))

	_, err := stub.GetCurrentWeather(withAPIKey("nope"), &weatherpb.GetWeatherRequest{City: "London"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Zero(t, weather.calls)
}

// --- GetTemperatureSeries ---

func TestGetTemperatureSeries_Success(t *testing.T) {
	series := &fakeSeries{points: []domain.SeriesPoint{
		{Timestamp: fetchedAt, AvgTempC: 11.5, Icon: "01d"},
		{Timestamp: fetchedAt.Add(5 * time.Minute), AvgTempC: 12},
	}}
	client := newClient(t, &fakeWeather{}, series, testAPIKey)

	resp, err := client.GetTemperatureSeries(context.Background(), &weatherpb.GetSeriesRequest{
		City:     "Constanța",
		StartIso: "2024-04-26T09:00:00Z",
		EndIso:   "2024-04-26T11:00:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "Constanta", resp.City)
	require.Len(t, resp.Points, 2)
	assert.Equal(t, "2024-04-26T10:00:00Z", resp.Points[0].TimestampIso)
	assert.InDelta(t, 11.5, resp.Points[0].AvgTempC, 1e-9)
	assert.Equal(t, 5, series.gotBucket, "zero bucket selects the default")
	assert.Equal(t, time.Date(2024, 4, 26, 9, 0, 0, 0, time.UTC), series.gotStart)
	assert.Equal(t, time.Date(2024, 4, 26, 11, 0, 0, 0, time.UTC), series.gotEnd)
}

func TestGetTemperatureSeries_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		req  *weatherpb.GetSeriesRequest
	}{
		{"bucket too large", &weatherpb.GetSeriesRequest{City: "Oslo", StartIso: "2024-04-26T09:00:00Z", EndIso: "2024-04-26T10:00:00Z", BucketMinutes: 61}},
		{"negative bucket", &weatherpb.GetSeriesRequest{City: "Oslo", StartIso: "2024-04-26T09:00:00Z", EndIso: "2024-04-26T10:00:00Z", BucketMinutes: -1}},
		{"bad start", &weatherpb.GetSeriesRequest{City: "Oslo", StartIso: "yesterday", EndIso: "2024-04-26T10:00:00Z"}},
		{"bad end", &weatherpb.GetSeriesRequest{City: "Oslo", StartIso: "2024-04-26T09:00:00Z", EndIso: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := &fakeSeries{}
			client := newClient(t, &fakeWeather{}, series, testAPIKey)

			_, err := client.GetTemperatureSeries(context.Background(), tt.req)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Zero(t, series.calls)
		})
	}
}

func TestGetTemperatureSeries_EmptyIsNotFound(t *testing.T) {
	client := newClient(t, &fakeWeather{}, &fakeSeries{points: []domain.SeriesPoint{}}, testAPIKey)

	_, err := client.GetTemperatureSeries(context.Background(), &weatherpb.GetSeriesRequest{
		City: "Oslo", StartIso: "2024-04-26T09:00:00Z", EndIso: "2024-04-26T10:00:00Z", BucketMinutes: 15,
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "No data for city/time range", status.Convert(err).Message())
}

func TestGetTemperatureSeries_ServiceValidation(t *testing.T) {
	series := &fakeSeries{err: domain.NewError(domain.ErrInvalidArgument, "start must not be after end", nil)}
	client := newClient(t, &fakeWeather{}, series, testAPIKey)

	_, err := client.GetTemperatureSeries(context.Background(), &weatherpb.GetSeriesRequest{
		City: "Oslo", StartIso: "2024-04-26T10:00:00Z", EndIso: "2024-04-26T09:00:00Z",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
