package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBClient wraps the driver client with connect/disconnect helpers.
type MongoDBClient struct {
	Client *mongo.Client
}

// NewMongoDBClient establishes a MongoDB connection and pings the server.
func NewMongoDBClient(uri string) (*MongoDBClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoDBClient{Client: client}, nil
}

// Disconnect closes the connection.
func (c *MongoDBClient) Disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = c.Client.Disconnect(ctx)
}

// Ping checks the connection, used by the health endpoint.
func (c *MongoDBClient) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx, nil)
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// slug index is what turns a duplicate slug insert into a conflict.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	blogIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "published", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}
	if _, err := db.Collection("blogs").Indexes().CreateMany(ctx, blogIndexes); err != nil {
		return fmt.Errorf("failed to create blog indexes: %w", err)
	}

	mediaIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "file_name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("media").Indexes().CreateOne(ctx, mediaIndex); err != nil {
		return fmt.Errorf("failed to create media index: %w", err)
	}

	return nil
}
