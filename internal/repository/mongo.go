package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
)

// MongoMoodRepository persists the mood snapshot in a MongoDB collection,
// one document per city under upsert semantics.
type MongoMoodRepository struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoMoodRepository(client *mongo.Client, database, collection string) *MongoMoodRepository {
	return &MongoMoodRepository{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}
}

// EnsureIndexes creates the indexes the query paths rely on.
func (r *MongoMoodRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "city_name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "source", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create mood indexes: %w", err)
	}
	return nil
}

func (r *MongoMoodRepository) Upsert(ctx context.Context, point model.MoodPoint) error {
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"city_name": point.CityName},
		point,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert mood point for %s: %w", point.CityName, err)
	}
	return nil
}

func (r *MongoMoodRepository) Query(ctx context.Context, opts QueryOptions) ([]model.MoodPoint, error) {
	filter := bson.M{}
	if opts.Source != "" {
		filter["source"] = opts.Source
	}
	if opts.MinScore != nil || opts.MaxScore != nil {
		score := bson.M{}
		if opts.MinScore != nil {
			score["$gte"] = *opts.MinScore
		}
		if opts.MaxScore != nil {
			score["$lte"] = *opts.MaxScore
		}
		filter["score"] = score
	}
	if opts.OnlyCity {
		filter["city_name"] = bson.M{"$nin": bson.A{"", nil}}
	}

	// Dedup and limit happen after the sorted read so both backends agree.
	findOpts := options.Find().SetSort(bson.D{
		{Key: "timestamp", Value: -1},
		{Key: "city_name", Value: 1},
	})

	cursor, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("query mood points: %w", err)
	}

	var points []model.MoodPoint
	if err := cursor.All(ctx, &points); err != nil {
		return nil, fmt.Errorf("decode mood points: %w", err)
	}

	return postFilter(points, opts), nil
}

func (r *MongoMoodRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}
