package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/adapter/mongo"
	"github.com/couchcryptid/weather-observation-service/internal/domain"
	"github.com/couchcryptid/weather-observation-service/internal/seed"
	"github.com/jonboulle/clockwork"
)

// MongoFlags locate the observation store.
type MongoFlags struct {
	MongoURI string        `help:"MongoDB connection string." env:"MONGO_URI" name:"mongo-uri"`
	Database string        `help:"Database name." env:"MONGO_APP_DB" default:"weatherdb"`
	Timeout  time.Duration `help:"Per-operation timeout." default:"10s"`
}

type seedCmd struct {
	MongoFlags `embed:""`

	Cities    []string      `help:"Comma-separated city names." required:""`
	Days      int           `help:"Number of days to cover." default:"3"`
	Interval  int           `help:"Minutes between samples." default:"5"`
	Mode      string        `help:"all, daily, or series." enum:"all,daily,series" default:"all"`
	BatchSize int           `help:"Documents per insert." default:"500"`
	Throttle  time.Duration `help:"Pause between batches."`
	DryRun    bool          `help:"Generate and count without writing."`
}

func (c *seedCmd) Run(_ *Globals) error {
	clock := clockwork.NewRealClock()
	obs, err := seed.NewGenerator(clock).Generate(seed.Options{
		Cities:          c.Cities,
		Days:            c.Days,
		IntervalMinutes: c.Interval,
		Mode:            seed.Mode(c.Mode),
	})
	if err != nil {
		return err
	}
	return insert(c.MongoFlags, clock, obs, c.BatchSize, c.Throttle, c.DryRun)
}

type rampCmd struct {
	MongoFlags `embed:""`

	City     string        `help:"City name." required:""`
	Points   int           `help:"Number of points." default:"24"`
	Step     time.Duration `help:"Time between points." default:"5m"`
	BaseTemp float64       `help:"Temperature of the first point." default:"10"`
	Delta    float64       `help:"Increment per point." default:"0.3"`
	Start    time.Time     `help:"Start time (RFC3339). Defaults to now minus points*step."`
}

func (c *rampCmd) Run(_ *Globals) error {
	clock := clockwork.NewRealClock()
	start := c.Start
	if start.IsZero() {
		start = clock.Now().Add(-time.Duration(c.Points) * c.Step)
	}
	obs := seed.Ramp(c.City, start, c.Points, c.Step, c.BaseTemp, c.Delta)
	return insert(c.MongoFlags, clock, obs, len(obs), 0, false)
}

func insert(f MongoFlags, clock clockwork.Clock, obs []domain.Observation, batchSize int, throttle time.Duration, dryRun bool) error {
	if dryRun {
		fmt.Printf("dry run: generated %d observations\n", len(obs))
		return nil
	}
	if f.MongoURI == "" {
		return fmt.Errorf("--mongo-uri or MONGO_URI is required")
	}
	if batchSize < 1 {
		batchSize = 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()
	store, err := mongo.Connect(ctx, f.MongoURI, f.Database, f.Timeout, clock, logger)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(ctx) }()

	total := 0
	for i := 0; i < len(obs); i += batchSize {
		batch := obs[i:min(i+batchSize, len(obs))]
		n, err := store.InsertMany(ctx, batch)
		total += n
		if err != nil {
			return fmt.Errorf("after %d inserted: %w", total, err)
		}
		if throttle > 0 && i+batchSize < len(obs) {
			time.Sleep(throttle)
		}
	}
	fmt.Printf("inserted %d observations into %s.%s\n", total, f.Database, mongo.CollectionName)
	return nil
}
