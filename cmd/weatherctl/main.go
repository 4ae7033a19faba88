// Command weatherctl is a client for the weather service: it queries the
// gRPC API and seeds synthetic observations directly into MongoDB.
//
// Usage:
//
//	weatherctl current --city London
//	weatherctl series --city London --start 2025-11-17T10:00:00Z --end 2025-11-17T12:00:00Z
//	weatherctl watch --city London --interval 2m
//	weatherctl seed --cities Cluj,Bucharest --days 3 --interval 5
//	weatherctl ramp --city London --points 24 --step 5m
package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// Globals are the flags shared by every command.
type Globals struct {
	Address string `help:"gRPC server host:port." env:"GRPC_ADDRESS" default:"localhost:50051"`
	APIKey  string `help:"Shared API key sent as x-api-key." env:"GRPC_API_KEY" name:"api-key"`
}

type cli struct {
	Globals `embed:""`

	Current currentCmd `cmd:"" help:"Fetch and store the current weather for a city."`
	Series  seriesCmd  `cmd:"" help:"Print a bucketed temperature series."`
	Watch   watchCmd   `cmd:"" help:"Fetch the current weather on a fixed interval until interrupted."`
	Seed    seedCmd    `cmd:"" help:"Insert synthetic observations into MongoDB."`
	Ramp    rampCmd    `cmd:"" help:"Insert a linear synthetic temperature ramp into MongoDB."`
}

func main() {
	// A missing .env file is fine; flags and the environment still apply.
	_ = godotenv.Load()

	var c cli
	ctx := kong.Parse(&c,
		kong.Name("weatherctl"),
		kong.Description("Weather observation service client."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&c.Globals))
}
