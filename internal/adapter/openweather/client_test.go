package openweather

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/domain"
	"github.com/couchcryptid/weather-observation-service/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 4, 26, 10, 0, 0, 123456789, time.UTC)

const (
	testAPIKey        = "test-key"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testClient(baseURL string) *Client {
	return &Client{
		apiKey:     testAPIKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		clock:      clockwork.NewFakeClockAt(testNow),
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_GetCurrent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Constanța", r.URL.Query().Get("q"))
		assert.Equal(t, testAPIKey, r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"name":"Constanța","main":{"temp":12.5,"humidity":81},"weather":[{"description":"light rain","icon":"10d"}]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	payload, err := c.GetCurrent(context.Background(), "Constanța")
	require.NoError(t, err)

	assert.Equal(t, "Constanța", payload["name"])
	assert.Equal(t, "2024-04-26T10:00:00.123456789Z", payload["_fetched_at"])
	assert.InDelta(t, 1, testutil.ToFloat64(c.metrics.UpstreamRequests.WithLabelValues("success")), 0)
}

func TestClient_GetCurrent_KeepsExistingFetchedAt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"main":{},"_fetched_at":"2024-01-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	payload, err := testClient(srv.URL).GetCurrent(context.Background(), "Oslo")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00Z", payload["_fetched_at"])
}

func TestClient_GetCurrent_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetCurrent(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamNotFound)
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestClient_GetCurrent_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetCurrent(context.Background(), "Oslo")
	var httpErr *domain.UpstreamHTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestClient_GetCurrent_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetCurrent(context.Background(), "Oslo")
	var httpErr *domain.UpstreamHTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestClient_GetCurrent_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetCurrent(context.Background(), "Oslo")
	assert.ErrorIs(t, err, domain.ErrUpstreamInvalidResponse)
}

func TestClient_GetCurrent_MissingMain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Oslo"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetCurrent(context.Background(), "Oslo")
	assert.ErrorIs(t, err, domain.ErrUpstreamInvalidResponse)
	assert.Contains(t, err.Error(), "main")
}

func TestClient_GetCurrent_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.httpClient.Timeout = 20 * time.Millisecond

	_, err := c.GetCurrent(context.Background(), "Oslo")
	var reqErr *domain.UpstreamRequestError
	require.ErrorAs(t, err, &reqErr)
	assert.InDelta(t, 1, testutil.ToFloat64(c.metrics.UpstreamRequests.WithLabelValues("request_error")), 0)
}

func TestClient_GetCurrent_MissingAPIKey(t *testing.T) {
	c := testClient("http://127.0.0.1:0")
	c.apiKey = ""

	_, err := c.GetCurrent(context.Background(), "Oslo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestNewClient_DefaultURL(t *testing.T) {
	c := NewClient(testAPIKey, "", time.Second, clockwork.NewRealClock(), observability.NewMetricsForTesting(), slog.Default())
	assert.Equal(t, DefaultURL, c.baseURL)
	assert.Equal(t, time.Second, c.httpClient.Timeout)
}

func TestClient_GetCurrent_StampsFromClock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"main":{"temp":1}}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	clock := clockwork.NewFakeClockAt(time.Date(2024, 4, 26, 12, 0, 0, 0, time.FixedZone("EEST", 3*3600)))
	c.clock = clock

	first, err := c.GetCurrent(context.Background(), "Oslo")
	require.NoError(t, err)
	assert.Equal(t, "2024-04-26T09:00:00Z", first["_fetched_at"])

	clock.Advance(90 * time.Second)
	second, err := c.GetCurrent(context.Background(), "Oslo")
	require.NoError(t, err)
	assert.Equal(t, "2024-04-26T09:01:30Z", second["_fetched_at"])
}
