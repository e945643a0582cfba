package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DefaultMongoDatabase is used when neither DATABASE_NAME nor the URI names a database.
const DefaultMongoDatabase = "portfolio"

// NewMongoConnection connects to uri and returns the named database handle.
// An empty name falls back to the database in the URI path, then DefaultMongoDatabase.
func NewMongoConnection(ctx context.Context, uri, name string) (*mongo.Database, error) {
	opts := options.Client().ApplyURI(uri).SetAppName("portfolio-backend")

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	if name == "" {
		name = databaseFromURI(uri)
	}
	return client.Database(name), nil
}

// databaseFromURI returns the database named in the URI path, if any.
func databaseFromURI(uri string) string {
	cs, err := connstring.Parse(uri)
	if err != nil || cs.Database == "" {
		return DefaultMongoDatabase
	}
	return cs.Database
}
