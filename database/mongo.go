package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	OrdersCollection          = "orders"
	CustomerDetailsCollection = "customerDetails"

	defaultDatabase = "DefaultDatabase"
)

// Mongo owns the client for the lifetime of the process; repositories only
// borrow collections from it.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri must not be empty")
	}

	if dbName == "" {
		dbName = databaseFromURI(uri)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, ClientOptions().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Info().Str("database", dbName).Msg("connected to MongoDB")

	return &Mongo{Client: client, DB: client.Database(dbName)}, nil
}

// ClientOptions carries the settings every client of this service needs,
// namely the decimal codec.
func ClientOptions() *options.ClientOptions {
	return options.Client().SetRegistry(Registry())
}

func (m *Mongo) Orders() *mongo.Collection {
	return m.DB.Collection(OrdersCollection)
}

func (m *Mongo) CustomerDetails() *mongo.Collection {
	return m.DB.Collection(CustomerDetailsCollection)
}

func (m *Mongo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// EnsureIndexes indexes the owner field every query filters on.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, coll := range []*mongo.Collection{m.Orders(), m.CustomerDetails()} {
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "userId", Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("create userId index on %s: %w", coll.Name(), err)
		}
	}
	return nil
}

func databaseFromURI(uri string) string {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil || cs.Database == "" {
		return defaultDatabase
	}
	return cs.Database
}
