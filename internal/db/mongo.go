package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoClient connects to uri and pings the primary. monitor may be nil.
func NewMongoClient(ctx context.Context, uri string, monitor *event.PoolMonitor) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(uri)
	if monitor != nil {
		opts.SetPoolMonitor(monitor)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// ProductIndexes are the secondary indexes the catalog queries rely on.
// slug is not unique: lookups return the first match.
var ProductIndexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetName("slug_1")},
	{Keys: bson.D{{Key: "category", Value: 1}}, Options: options.Index().SetName("category_1")},
	{Keys: bson.D{{Key: "tasks._id", Value: 1}}, Options: options.Index().SetName("tasks_id_1")},
}

// IndexCreator is satisfied by mongo.IndexView.
type IndexCreator interface {
	CreateMany(ctx context.Context, models []mongo.IndexModel, opts ...*options.CreateIndexesOptions) ([]string, error)
}

// EnsureIndexes creates the product indexes. Existing indexes with the same
// definition are left alone by the server.
func EnsureIndexes(ctx context.Context, indexes IndexCreator) ([]string, error) {
	names, err := indexes.CreateMany(ctx, ProductIndexes)
	if err != nil {
		return nil, fmt.Errorf("create product indexes: %w", err)
	}
	return names, nil
}
