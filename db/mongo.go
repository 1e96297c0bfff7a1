package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var Mongo *mongo.Client

const (
	DatabaseName   = "earthpulse"
	CollectionName = "moods"
)

func ConnectMongo(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return err
	}

	Mongo = client
	return nil
}

func CloseMongo() {
	if Mongo != nil {
		Mongo.Disconnect(context.Background())
	}
}
