package mongo

import (
	"context"
	"fmt"

	"github.com/fiatjaf/bookstore"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UpdatePrice reports the server's modified count, which is zero when the price was already set.
func (b *MongoDBBackend) UpdatePrice(ctx context.Context, title string, price float64) (bookstore.UpdateResult, error) {
	res, err := b.collection.UpdateOne(ctx, byTitle(title), priceUpdate(price))
	if err != nil {
		return bookstore.UpdateResult{}, fmt.Errorf("failed to update price of %q: %w", title, err)
	}
	return bookstore.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func byTitle(title string) bson.D {
	return bson.D{{Key: bookstore.FieldTitle, Value: title}}
}

func priceUpdate(price float64) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: bookstore.FieldPrice, Value: price}}}}
}
