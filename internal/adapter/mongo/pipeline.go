package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

func rangeFilter(city string, start, end time.Time) bson.M {
	return bson.M{
		"city":             city,
		"observation_time": bson.M{"$gte": start.UTC(), "$lte": end.UTC()},
	}
}

// firstIcon reads raw.weather[0].icon, or null when weather is not an array.
var firstIcon = bson.M{
	"$cond": bson.A{
		bson.M{"$isArray": "$raw.weather"},
		bson.M{"$let": bson.M{
			"vars": bson.M{"w": bson.M{"$arrayElemAt": bson.A{"$raw.weather", 0}}},
			"in":   "$$w.icon",
		}},
		nil,
	},
}

// bucketPipeline groups by (year, month, day, hour, floor(minute/bucket))
// and rebuilds the bucket start with $dateFromParts.
func bucketPipeline(city string, start, end time.Time, bucketMinutes int) mongodriver.Pipeline {
	return mongodriver.Pipeline{
		{{Key: "$match", Value: rangeFilter(city, start, end)}},
		{{Key: "$sort", Value: bson.D{{Key: "observation_time", Value: 1}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$observation_time"},
				"month": bson.M{"$month": "$observation_time"},
				"day":   bson.M{"$dayOfMonth": "$observation_time"},
				"hour":  bson.M{"$hour": "$observation_time"},
				"slice": bson.M{"$floor": bson.M{"$divide": bson.A{bson.M{"$minute": "$observation_time"}, bucketMinutes}}},
			},
			"avg_temp": bson.M{"$avg": "$temp_c"},
			"icon":     bson.M{"$first": firstIcon},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id": 0,
			"ts": bson.M{"$dateFromParts": bson.M{
				"year":   "$_id.year",
				"month":  "$_id.month",
				"day":    "$_id.day",
				"hour":   "$_id.hour",
				"minute": bson.M{"$multiply": bson.A{"$_id.slice", bucketMinutes}},
			}},
			"avg_temp": 1,
			"icon":     1,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "ts", Value: 1}}}},
	}
}

// dailyPipeline groups [start, end] by UTC calendar day.
func dailyPipeline(city string, start, end time.Time) mongodriver.Pipeline {
	return mongodriver.Pipeline{
		{{Key: "$match", Value: rangeFilter(city, start, end)}},
		{{Key: "$sort", Value: bson.D{{Key: "observation_time", Value: 1}}}},
		{{Key: "$group", Value: bson.M{
			"_id":      bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$observation_time"}},
			"avg_temp": bson.M{"$avg": "$temp_c"},
			"icon":     bson.M{"$first": firstIcon},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}
