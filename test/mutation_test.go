package test

import (
	"testing"

	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/mongo"
	"github.com/stretchr/testify/require"
)

func runMutationTestOn(t *testing.T, db bookstore.Store) {
	byTitle := func(title string) []bookstore.Book {
		results, err := db.FindBooks(ctx, bookstore.Filter{Title: title}, bookstore.FindOptions{})
		require.NoError(t, err)
		return results
	}

	{
		res, err := db.UpdatePrice(ctx, "Nineteen Eighty-Four", 14.99)
		require.NoError(t, err)
		require.Equal(t, bookstore.UpdateResult{Matched: 1, Modified: 1}, res)
		require.Equal(t, 14.99, byTitle("Nineteen Eighty-Four")[0].Price)

		again, err := db.UpdatePrice(ctx, "Nineteen Eighty-Four", 14.99)
		require.NoError(t, err)
		require.Equal(t, int64(1), again.Matched)
		if _, ok := db.(*mongo.MongoDBBackend); ok {
			// the server only counts documents that actually changed
			require.Equal(t, int64(0), again.Modified)
		}
		require.Equal(t, 14.99, byTitle("Nineteen Eighty-Four")[0].Price)
	}

	{
		res, err := db.UpdatePrice(ctx, "The Silmarillion", 20)
		require.NoError(t, err)
		require.Equal(t, bookstore.UpdateResult{}, res)
	}

	{
		res, err := db.DeleteBook(ctx, "The Great Gatsby")
		require.NoError(t, err)
		require.Equal(t, int64(1), res.Deleted)
		require.Empty(t, byTitle("The Great Gatsby"))

		res, err = db.DeleteBook(ctx, "The Great Gatsby")
		require.NoError(t, err)
		require.Equal(t, int64(0), res.Deleted)
	}

	{
		// only the first of two books with the same title goes away
		dup := bookstore.Book{Title: "Duplicate", Author: "Nobody", Genre: "Test", PublishedYear: 2000, Price: 1}
		require.NoError(t, db.SaveBook(ctx, &dup))
		require.NoError(t, db.SaveBook(ctx, &dup))
		require.Len(t, byTitle("Duplicate"), 2)

		upd, err := db.UpdatePrice(ctx, "Duplicate", 2)
		require.NoError(t, err)
		require.Equal(t, int64(1), upd.Matched)
		require.ElementsMatch(t, []float64{1, 2}, prices(byTitle("Duplicate")))

		res, err := db.DeleteBook(ctx, "Duplicate")
		require.NoError(t, err)
		require.Equal(t, int64(1), res.Deleted)
		require.Len(t, byTitle("Duplicate"), 1)

		res, err = db.DeleteBook(ctx, "Duplicate")
		require.NoError(t, err)
		require.Equal(t, int64(1), res.Deleted)
		require.Empty(t, byTitle("Duplicate"))
	}
}
