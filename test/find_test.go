package test

import (
	"slices"
	"testing"

	"github.com/fiatjaf/bookstore"
	"github.com/stretchr/testify/require"
)

func runFindTestOn(t *testing.T, db bookstore.Store, allBooks []bookstore.Book) {
	{
		results, err := db.FindBooks(ctx, bookstore.Filter{}, bookstore.FindOptions{})
		require.NoError(t, err)
		require.ElementsMatch(t, titles(allBooks), titles(results), "open-ended query results error")
	}

	for _, filter := range []bookstore.Filter{
		{Genre: "Fiction"},
		{PublishedAfter: bookstore.IntPtr(1950)},
		{Author: "George Orwell"},
		{InStock: bookstore.BoolPtr(true), PublishedAfter: bookstore.IntPtr(2010)},
		{Title: "The Alchemist"},
		{Author: "Paulo Coelho", PublishedAfter: bookstore.IntPtr(2000)},
		{Genre: "Cookbook"},
	} {
		results, err := db.FindBooks(ctx, filter, bookstore.FindOptions{})
		require.NoError(t, err)
		require.ElementsMatch(t, expected(allBooks, filter), titles(results), "filter %s", filter)
		for _, b := range results {
			require.True(t, filter.Matches(b), "%s doesn't match %s", b.Title, filter)
		}
	}

	{
		results, err := db.FindBooks(ctx, bookstore.Filter{Genre: "Fiction"}, bookstore.FindOptions{})
		require.NoError(t, err)
		require.Len(t, results, 5)
	}

	{
		// strictly greater, 1951 itself is left out
		results, err := db.FindBooks(ctx, bookstore.Filter{PublishedAfter: bookstore.IntPtr(1951)}, bookstore.FindOptions{})
		require.NoError(t, err)
		require.NotContains(t, titles(results), "The Catcher in the Rye")
	}

	{
		results, err := db.FindBooks(ctx, bookstore.Filter{}, bookstore.FindOptions{
			Fields: []string{bookstore.FieldTitle, bookstore.FieldAuthor, bookstore.FieldPrice},
		})
		require.NoError(t, err)
		require.Len(t, results, len(allBooks))
		for _, b := range results {
			require.NotEmpty(t, b.Title)
			require.NotEmpty(t, b.Author)
			require.NotZero(t, b.Price)
			require.Empty(t, b.Genre)
			require.Zero(t, b.PublishedYear)
		}
	}

	{
		asc, err := db.FindBooks(ctx, bookstore.Filter{}, bookstore.FindOptions{
			Sort: &bookstore.Sort{Field: bookstore.FieldPrice},
		})
		require.NoError(t, err)
		require.Len(t, asc, len(allBooks))
		require.True(t, slices.IsSorted(prices(asc)), "ascending sort error")

		desc, err := db.FindBooks(ctx, bookstore.Filter{}, bookstore.FindOptions{
			Sort: &bookstore.Sort{Field: bookstore.FieldPrice, Descending: true},
		})
		require.NoError(t, err)
		require.True(t, isSortedDesc(prices(desc)), "descending sort error")
		require.Equal(t, 19.99, desc[0].Price)
	}

	{
		seen := make([]string, 0, len(allBooks))
		for page := 1; page <= 4; page++ {
			opts, err := bookstore.PageOptions(page, 5)
			require.NoError(t, err)
			opts.Sort = &bookstore.Sort{Field: bookstore.FieldTitle}

			results, err := db.FindBooks(ctx, bookstore.Filter{}, opts)
			require.NoError(t, err)
			require.LessOrEqual(t, len(results), 5)
			if page <= 3 {
				require.Len(t, results, 5, "page %d", page)
			} else {
				require.Empty(t, results)
			}
			for _, title := range titles(results) {
				require.NotContains(t, seen, title, "page %d repeats %s", page, title)
				seen = append(seen, title)
			}
		}
		require.ElementsMatch(t, titles(allBooks), seen)
	}

	{
		_, err := db.FindBooks(ctx, bookstore.Filter{}, bookstore.FindOptions{
			Sort: &bookstore.Sort{Field: "isbn"},
		})
		require.ErrorIs(t, err, bookstore.ErrUnknownField)
	}
}
