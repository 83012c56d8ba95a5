package mongo

import (
	"context"
	"fmt"

	"github.com/fiatjaf/bookstore"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (b *MongoDBBackend) FindBooks(ctx context.Context, filter bookstore.Filter, opts bookstore.FindOptions) ([]bookstore.Book, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cursor, err := b.collection.Find(ctx, filterDocument(filter), findOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", filter, err)
	}

	books := make([]bookstore.Book, 0, 20)
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	return books, nil
}

func filterDocument(filter bookstore.Filter) bson.D {
	doc := bson.D{}
	if filter.Title != "" {
		doc = append(doc, bson.E{Key: bookstore.FieldTitle, Value: filter.Title})
	}
	if filter.Genre != "" {
		doc = append(doc, bson.E{Key: bookstore.FieldGenre, Value: filter.Genre})
	}
	if filter.Author != "" {
		doc = append(doc, bson.E{Key: bookstore.FieldAuthor, Value: filter.Author})
	}
	if filter.InStock != nil {
		doc = append(doc, bson.E{Key: bookstore.FieldInStock, Value: *filter.InStock})
	}
	if filter.PublishedAfter != nil {
		doc = append(doc, bson.E{Key: bookstore.FieldPublishedYear, Value: bson.D{{Key: "$gt", Value: *filter.PublishedAfter}}})
	}
	return doc
}

func findOptions(opts bookstore.FindOptions) *options.FindOptionsBuilder {
	fo := options.Find()
	if len(opts.Fields) > 0 {
		projection := make(bson.D, 0, len(opts.Fields)+1)
		for _, f := range opts.Fields {
			projection = append(projection, bson.E{Key: f, Value: 1})
		}
		projection = append(projection, bson.E{Key: "_id", Value: 0})
		fo.SetProjection(projection)
	}
	if opts.Sort != nil {
		direction := 1
		if opts.Sort.Descending {
			direction = -1
		}
		fo.SetSort(bson.D{{Key: opts.Sort.Field, Value: direction}})
	}
	if opts.Skip > 0 {
		fo.SetSkip(int64(opts.Skip))
	}
	if opts.Limit > 0 {
		fo.SetLimit(int64(opts.Limit))
	}
	return fo
}
