package mongo

import (
	"context"
	"fmt"

	"github.com/fiatjaf/bookstore"
)

func (b *MongoDBBackend) DeleteBook(ctx context.Context, title string) (bookstore.DeleteResult, error) {
	res, err := b.collection.DeleteOne(ctx, byTitle(title))
	if err != nil {
		return bookstore.DeleteResult{}, fmt.Errorf("failed to delete %q: %w", title, err)
	}
	return bookstore.DeleteResult{Deleted: res.DeletedCount}, nil
}
