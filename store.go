package bookstore

import (
	"context"
)

// Store is a persistence layer for book records living in one collection.
type Store interface {
	// Init is called before anything else, allowing a storage to connect and
	// initialize its internal resources.
	Init() error

	// Close must be called after you're done using the store, to free up resources and so on.
	Close()

	// SaveBook inserts a new record, no uniqueness checks are performed.
	SaveBook(context.Context, *Book) error

	// FindBooks returns the records matching filter, shaped by opts.
	FindBooks(context.Context, Filter, FindOptions) ([]Book, error)

	// UpdatePrice sets the price of the first record with the given title.
	UpdatePrice(ctx context.Context, title string, price float64) (UpdateResult, error)
	// DeleteBook removes the first record with the given title.
	DeleteBook(ctx context.Context, title string) (DeleteResult, error)

	// AveragePriceByGenre groups all records by genre and computes the mean price of each group.
	AveragePriceByGenre(context.Context) ([]GenreAverage, error)
	// TopAuthors returns the n authors with the most records, most prolific first.
	TopAuthors(ctx context.Context, n int) ([]AuthorCount, error)
	// CountByDecade groups records by publication decade, oldest decade first.
	CountByDecade(context.Context) ([]DecadeCount, error)

	// CreateIndex creates an ascending index over the given keys and returns its name.
	// Creating an index that already exists is not an error.
	CreateIndex(context.Context, Index) (string, error)
	// Explain reports how the store would execute a find with the given filter.
	Explain(context.Context, Filter) (QueryPlan, error)
}
