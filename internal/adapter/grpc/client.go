package grpc

import (
	"context"
	"fmt"

	"github.com/couchcryptid/weather-observation-service/internal/adapter/grpc/weatherpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// Client calls weather.WeatherService with the shared API key attached to
// every call.
type Client struct {
	conn   *grpc.ClientConn
	stub   weatherpb.WeatherServiceClient
	apiKey string
}

// NewClient creates a client for target. Extra dial options are appended
// to the defaults.
func NewClient(target, apiKey string, opts ...grpc.DialOption) (*Client, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("grpc client %s: %w", target, err)
	}
	return &Client{conn: conn, stub: weatherpb.NewWeatherServiceClient(conn), apiKey: apiKey}, nil
}

func (c *Client) GetCurrentWeather(ctx context.Context, city string) (*weatherpb.GetWeatherResponse, error) {
	return c.stub.GetCurrentWeather(c.outgoing(ctx), &weatherpb.GetWeatherRequest{City: city})
}

func (c *Client) GetTemperatureSeries(ctx context.Context, req *weatherpb.GetSeriesRequest) (*weatherpb.GetSeriesResponse, error) {
	return c.stub.GetTemperatureSeries(c.outgoing(ctx), req)
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) outgoing(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, APIKeyHeader, c.apiKey)
}
