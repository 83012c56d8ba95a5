package runner

import (
	"context"

	"github.com/fiatjaf/bookstore"
)

// Literals of the demo sequence.
const (
	FictionGenre      = "Fiction"
	PublishedAfter    = 1950
	Author            = "George Orwell"
	UpdatedTitle      = "Nineteen Eighty-Four"
	UpdatedPrice      = 14.99
	DeletedTitle      = "The Great Gatsby"
	RecentAfter       = 2010
	ExplainTitle      = "The Alchemist"
	ExplainAuthor     = "Paulo Coelho"
	ExplainAfter      = 2000
	DefaultPageNumber = 1
)

var (
	ProjectedFields = []string{bookstore.FieldTitle, bookstore.FieldAuthor, bookstore.FieldPrice}
	TitleIndex      = bookstore.Index{Keys: []string{bookstore.FieldTitle}}
	AuthorYearIndex = bookstore.Index{Keys: []string{bookstore.FieldAuthor, bookstore.FieldPublishedYear}}
)

// Step is one independent operation against the store.
type Step struct {
	Label string
	Run   func(ctx context.Context, store bookstore.Store) (any, error)
}

func find(filter bookstore.Filter, opts bookstore.FindOptions) func(context.Context, bookstore.Store) (any, error) {
	return func(ctx context.Context, store bookstore.Store) (any, error) {
		return store.FindBooks(ctx, filter, opts)
	}
}

func explain(filter bookstore.Filter) func(context.Context, bookstore.Store) (any, error) {
	return func(ctx context.Context, store bookstore.Store) (any, error) {
		return store.Explain(ctx, filter)
	}
}

func createIndex(idx bookstore.Index) func(context.Context, bookstore.Store) (any, error) {
	return func(ctx context.Context, store bookstore.Store) (any, error) {
		return store.CreateIndex(ctx, idx)
	}
}

// Steps returns the fixed sequence, in order.
func (r Runner) Steps() []Step {
	pageNumber := r.PageNumber
	if pageNumber == 0 {
		pageNumber = DefaultPageNumber
	}
	pageSize := r.PageSize
	if pageSize == 0 {
		pageSize = bookstore.DefaultPageSize
	}

	return []Step{
		{"Fiction books", find(bookstore.Filter{Genre: FictionGenre}, bookstore.FindOptions{})},
		{"Books published after 1950", find(bookstore.Filter{PublishedAfter: bookstore.IntPtr(PublishedAfter)}, bookstore.FindOptions{})},
		{"George Orwell books", find(bookstore.Filter{Author: Author}, bookstore.FindOptions{})},
		{"Updated price of " + UpdatedTitle, func(ctx context.Context, store bookstore.Store) (any, error) {
			return store.UpdatePrice(ctx, UpdatedTitle, UpdatedPrice)
		}},
		{"Deleted " + DeletedTitle, func(ctx context.Context, store bookstore.Store) (any, error) {
			return store.DeleteBook(ctx, DeletedTitle)
		}},
		{"Books in stock and published after 2010", find(bookstore.Filter{
			InStock:        bookstore.BoolPtr(true),
			PublishedAfter: bookstore.IntPtr(RecentAfter),
		}, bookstore.FindOptions{})},
		{"Books with projection", func(ctx context.Context, store bookstore.Store) (any, error) {
			books, err := store.FindBooks(ctx, bookstore.Filter{}, bookstore.FindOptions{Fields: ProjectedFields})
			if err != nil {
				return nil, err
			}
			projected := make([]map[string]any, len(books))
			for i, b := range books {
				projected[i] = b.Fields(ProjectedFields...)
			}
			return projected, nil
		}},
		{"Books sorted by price (ascending)", find(bookstore.Filter{}, bookstore.FindOptions{
			Sort: &bookstore.Sort{Field: bookstore.FieldPrice},
		})},
		{"Books sorted by price (descending)", find(bookstore.Filter{}, bookstore.FindOptions{
			Sort: &bookstore.Sort{Field: bookstore.FieldPrice, Descending: true},
		})},
		{"Books with pagination", func(ctx context.Context, store bookstore.Store) (any, error) {
			opts, err := bookstore.PageOptions(pageNumber, pageSize)
			if err != nil {
				return nil, err
			}
			return store.FindBooks(ctx, bookstore.Filter{}, opts)
		}},
		{"Average price of books by genre", func(ctx context.Context, store bookstore.Store) (any, error) {
			return store.AveragePriceByGenre(ctx)
		}},
		{"Author with the most books", func(ctx context.Context, store bookstore.Store) (any, error) {
			return store.TopAuthors(ctx, 1)
		}},
		{"Books grouped by publication decade", func(ctx context.Context, store bookstore.Store) (any, error) {
			return store.CountByDecade(ctx)
		}},
		{"Index created on title field", createIndex(TitleIndex)},
		{"Compound index created on author and published_year", createIndex(AuthorYearIndex)},
		{"Explain plan for title query", explain(bookstore.Filter{Title: ExplainTitle})},
		{"Explain plan for compound query", explain(bookstore.Filter{
			Author:         ExplainAuthor,
			PublishedAfter: bookstore.IntPtr(ExplainAfter),
		})},
	}
}
