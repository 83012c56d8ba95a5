package mongo

import (
	"context"
	"fmt"

	"github.com/fiatjaf/bookstore"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

func (b *MongoDBBackend) Init() error {
	b.ctx = context.Background()
	if b.DatabaseURL == "" {
		b.DatabaseURL = bookstore.DefaultAddress
	}
	if b.DatabaseName == "" {
		b.DatabaseName = bookstore.DefaultDatabase
	}
	if b.CollectionName == "" {
		b.CollectionName = bookstore.DefaultCollection
	}

	client, err := mongo.Connect(options.Client().ApplyURI(b.DatabaseURL))
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", b.DatabaseURL, err)
	}

	// connecting is lazy, make sure the server is actually there
	if err := client.Ping(b.ctx, readpref.Primary()); err != nil {
		client.Disconnect(b.ctx)
		return fmt.Errorf("failed to reach %s: %w", b.DatabaseURL, err)
	}

	b.Client = client
	b.collection = client.Database(b.DatabaseName).Collection(b.CollectionName)
	return nil
}
