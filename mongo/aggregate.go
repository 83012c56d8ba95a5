package mongo

import (
	"context"
	"fmt"

	"github.com/fiatjaf/bookstore"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var averagePriceByGenre = mongo.Pipeline{
	{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$genre"},
		{Key: "avgPrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
	}}},
	{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
}

var countByDecade = mongo.Pipeline{
	{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: bson.D{{Key: "$multiply", Value: bson.A{
			bson.D{{Key: "$floor", Value: bson.D{{Key: "$divide", Value: bson.A{"$published_year", 10}}}}},
			10,
		}}}},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}},
	{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
}

func topAuthors(n int) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$author"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	if n > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: n}})
	}
	return pipeline
}

func (b *MongoDBBackend) AveragePriceByGenre(ctx context.Context) ([]bookstore.GenreAverage, error) {
	results := make([]bookstore.GenreAverage, 0, 10)
	if err := b.aggregate(ctx, averagePriceByGenre, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (b *MongoDBBackend) TopAuthors(ctx context.Context, n int) ([]bookstore.AuthorCount, error) {
	results := make([]bookstore.AuthorCount, 0, max(n, 1))
	if err := b.aggregate(ctx, topAuthors(n), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (b *MongoDBBackend) CountByDecade(ctx context.Context) ([]bookstore.DecadeCount, error) {
	results := make([]bookstore.DecadeCount, 0, 10)
	if err := b.aggregate(ctx, countByDecade, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (b *MongoDBBackend) aggregate(ctx context.Context, pipeline mongo.Pipeline, results any) error {
	cursor, err := b.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("failed to run aggregation: %w", err)
	}
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("failed to decode aggregation results: %w", err)
	}
	return nil
}
