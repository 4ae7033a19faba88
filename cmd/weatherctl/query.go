package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcadapter "github.com/couchcryptid/weather-observation-service/internal/adapter/grpc"
	"github.com/couchcryptid/weather-observation-service/internal/adapter/grpc/weatherpb"
	"google.golang.org/grpc/status"
)

const callTimeout = 15 * time.Second

type currentCmd struct {
	City string `help:"City to fetch." required:""`
}

func (c *currentCmd) Run(g *Globals) error {
	client, err := grpcadapter.NewClient(g.Address, g.APIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	resp, err := client.GetCurrentWeather(ctx, c.City)
	if err != nil {
		return rpcError(err)
	}
	printWeather(resp)
	return nil
}

type seriesCmd struct {
	City   string `help:"City to query." required:""`
	Start  string `help:"ISO-8601 range start." required:""`
	End    string `help:"ISO-8601 range end." required:""`
	Bucket int    `help:"Bucket width in minutes (1-60)." default:"5"`
}

func (c *seriesCmd) Run(g *Globals) error {
	client, err := grpcadapter.NewClient(g.Address, g.APIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	resp, err := client.GetTemperatureSeries(ctx, &weatherpb.GetSeriesRequest{
		City:          c.City,
		StartIso:      c.Start,
		EndIso:        c.End,
		BucketMinutes: int32(c.Bucket),
	})
	if err != nil {
		return rpcError(err)
	}

	fmt.Printf("%s: %d points\n", resp.City, len(resp.Points))
	for _, p := range resp.Points {
		fmt.Printf("  %s  %6.2f°C\n", p.TimestampIso, p.AvgTempC)
	}
	return nil
}

type watchCmd struct {
	City     string        `help:"City to ingest." required:""`
	Interval time.Duration `help:"Time between fetches." default:"5m"`
}

func (c *watchCmd) Run(g *Globals) error {
	client, err := grpcadapter.NewClient(g.Address, g.APIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %q every %s against %s (Ctrl+C to stop)\n", c.City, c.Interval, g.Address)
	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	for {
		callCtx, cancel := context.WithTimeout(ctx, callTimeout)
		resp, err := client.GetCurrentWeather(callCtx, c.City)
		cancel()
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%s] %v\n", time.Now().UTC().Format(time.RFC3339), rpcError(err))
		} else {
			fmt.Printf("[%s] ", time.Now().UTC().Format(time.RFC3339))
			printWeather(resp)
		}

		select {
		case <-ctx.Done():
			fmt.Println("Stopping.")
			return nil
		case <-ticker.C:
		}
	}
}

func printWeather(r *weatherpb.GetWeatherResponse) {
	fmt.Printf("%s %.1f°C %d%% %s, wind %.1f m/s (fetched %s)\n",
		r.City, r.TempC, r.HumidityPct, r.Conditions, r.WindSpeedMs, r.FetchedAtIso)
}

func rpcError(err error) error {
	st := status.Convert(err)
	return fmt.Errorf("grpc %s: %s", st.Code(), st.Message())
}
