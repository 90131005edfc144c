package database

import (
	"context"
	"fmt"
	"time"

	"remarket/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo wraps the driver client and the application database.
// It is created once in main and injected into the repositories,
// never held as package-level state.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// InitDB connects to MongoDB and verifies the connection with a ping
func InitDB(config utils.DatabaseConfig) (*Mongo, error) {
	timeout := time.Duration(config.ConnectTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(config.Name),
	}, nil
}

// Collection returns a handle to the named collection
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// EnsureIndexes creates the indexes the service relies on. The unique
// index on users.email is what turns a concurrent duplicate
// registration into a duplicate-key error instead of a second record.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create unique email index: %w", err)
	}

	return nil
}

// Ping checks the connection
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (m *Mongo) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_ = m.client.Disconnect(ctx)
}
