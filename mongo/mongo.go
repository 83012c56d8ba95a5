package mongo

import (
	"context"

	"github.com/fiatjaf/bookstore"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var _ bookstore.Store = (*MongoDBBackend)(nil)

type MongoDBBackend struct {
	*mongo.Client
	ctx            context.Context
	collection     *mongo.Collection
	DatabaseURL    string
	DatabaseName   string
	CollectionName string
}

func (b *MongoDBBackend) Close() {
	b.Client.Disconnect(b.ctx)
}
