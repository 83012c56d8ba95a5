package mongo

import (
	"context"
	"fmt"

	"github.com/fiatjaf/bookstore"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func indexModel(idx bookstore.Index) mongo.IndexModel {
	keys := make(bson.D, len(idx.Keys))
	for i, k := range idx.Keys {
		keys[i] = bson.E{Key: k, Value: 1}
	}
	return mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(idx.Name()),
	}
}

func (b *MongoDBBackend) CreateIndex(ctx context.Context, idx bookstore.Index) (string, error) {
	if err := idx.Validate(); err != nil {
		return "", err
	}

	name, err := b.collection.Indexes().CreateOne(ctx, indexModel(idx))
	if err != nil {
		return "", fmt.Errorf("failed to create index %s: %w", idx.Name(), err)
	}
	return name, nil
}
