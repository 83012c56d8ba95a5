package mongo

import (
	"context"

	"github.com/fiatjaf/bookstore"
)

func (b *MongoDBBackend) SaveBook(ctx context.Context, book *bookstore.Book) error {
	_, err := b.collection.InsertOne(ctx, book)
	return err
}
