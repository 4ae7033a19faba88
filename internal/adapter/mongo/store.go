// Package mongo stores observations in a MongoDB collection and computes
// series with aggregation pipelines.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/domain"
	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CollectionName is the collection holding observations.
const CollectionName = "weather_observations"

// Store implements the observation store on MongoDB.
type Store struct {
	client     *mongodriver.Client
	collection *mongodriver.Collection
	timeout    time.Duration
	clock      clockwork.Clock
	logger     *slog.Logger
}

// Connect dials MongoDB and returns a Store on database. The client is
// shared by all calls; timeout bounds each one.
func Connect(ctx context.Context, uri, database string, timeout time.Duration, clock clockwork.Clock, logger *slog.Logger) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongodriver.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return New(client, database, timeout, clock, logger), nil
}

// New wraps an existing client.
func New(client *mongodriver.Client, database string, timeout time.Duration, clock clockwork.Clock, logger *slog.Logger) *Store {
	return &Store{
		client:     client,
		collection: client.Database(database).Collection(CollectionName),
		timeout:    timeout,
		clock:      clock,
		logger:     logger,
	}
}

// EnsureIndexes creates the {city, observation_time} index used by every query.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	name, err := s.collection.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "city", Value: 1}, {Key: "observation_time", Value: 1}},
		Options: options.Index().SetName("city_observation_time"),
	})
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	s.logger.Info("mongo index ensured", "collection", CollectionName, "index", name)
	return nil
}

// CheckReadiness pings the primary.
func (s *Store) CheckReadiness(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Insert stores obs and returns the new document ID.
func (s *Store) Insert(ctx context.Context, obs domain.Observation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.collection.InsertOne(ctx, toDoc(obs.WithDefaults(s.clock.Now())))
	if err != nil {
		return "", fmt.Errorf("insert observation: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// InsertMany stores a batch without stopping at the first failed document.
// It returns how many documents were written.
func (s *Store) InsertMany(ctx context.Context, batch []domain.Observation) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := s.clock.Now()
	docs := make([]any, len(batch))
	for i, obs := range batch {
		docs[i] = toDoc(obs.WithDefaults(now))
	}

	res, err := s.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	inserted := insertedCount(res, err)
	if err != nil {
		return inserted, fmt.Errorf("insert observations: %w", err)
	}
	return inserted, nil
}

// insertedCount reports how many documents actually landed. The driver lists
// an id for every document it sent, failed writes included.
func insertedCount(res *mongodriver.InsertManyResult, err error) int {
	if res == nil {
		return 0
	}
	n := len(res.InsertedIDs)
	var bwe mongodriver.BulkWriteException
	if errors.As(err, &bwe) {
		n -= len(bwe.WriteErrors)
	}
	return max(n, 0)
}

// QueryRange returns the city's observations in [start, end], ascending.
func (s *Store) QueryRange(ctx context.Context, city string, start, end time.Time) ([]domain.Observation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cur, err := s.collection.Find(ctx, rangeFilter(city, start, end),
		options.Find().SetSort(bson.D{{Key: "observation_time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find observations: %w", err)
	}

	var docs []observationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode observations: %w", err)
	}
	result := make([]domain.Observation, 0, len(docs))
	for _, doc := range docs {
		result = append(result, fromDoc(doc))
	}
	return result, nil
}

// BucketedSeries aggregates [start, end] into buckets of bucketMinutes.
func (s *Store) BucketedSeries(ctx context.Context, city string, start, end time.Time, bucketMinutes int) ([]domain.SeriesPoint, error) {
	if bucketMinutes < 1 {
		return nil, domain.NewError(domain.ErrInvalidArgument, "bucket_minutes must be positive", nil)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var rows []seriesRow
	if err := s.aggregate(ctx, bucketPipeline(city, start, end, bucketMinutes), &rows); err != nil {
		return nil, fmt.Errorf("bucketed series: %w", err)
	}
	points := make([]domain.SeriesPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, r.point())
	}
	return points, nil
}

// DailySeries aggregates the last days UTC calendar days, today included.
func (s *Store) DailySeries(ctx context.Context, city string, days int) ([]domain.DailyPoint, error) {
	if days < 1 {
		return []domain.DailyPoint{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := s.clock.Now().UTC()
	var rows []dailyRow
	if err := s.aggregate(ctx, dailyPipeline(city, domain.DailyWindowStart(now, days), now), &rows); err != nil {
		return nil, fmt.Errorf("daily series: %w", err)
	}
	points := make([]domain.DailyPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, r.point())
	}
	return points, nil
}

// LatestObservation returns the city's most recent observation, or nil.
func (s *Store) LatestObservation(ctx context.Context, city string) (*domain.Observation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var doc observationDoc
	err := s.collection.FindOne(ctx, bson.M{"city": city},
		options.FindOne().SetSort(bson.D{{Key: "observation_time", Value: -1}})).Decode(&doc)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find latest observation: %w", err)
	}
	obs := fromDoc(doc)
	return &obs, nil
}

func (s *Store) aggregate(ctx context.Context, pipeline mongodriver.Pipeline, out any) error {
	cur, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}
