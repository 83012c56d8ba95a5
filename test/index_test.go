package test

import (
	"testing"

	"github.com/fiatjaf/bookstore"
	"github.com/stretchr/testify/require"
)

func runIndexTestOn(t *testing.T, db bookstore.Store) {
	byTitle := bookstore.Filter{Title: "The Alchemist"}
	byAuthorYear := bookstore.Filter{Author: "Paulo Coelho", PublishedAfter: bookstore.IntPtr(2000)}

	{
		plan, err := db.Explain(ctx, byTitle)
		require.NoError(t, err)
		require.Equal(t, bookstore.StageCollectionScan, plan.Stage)
		require.False(t, plan.UsesIndex())
	}

	{
		name, err := db.CreateIndex(ctx, bookstore.Index{Keys: []string{bookstore.FieldTitle}})
		require.NoError(t, err)
		require.Contains(t, name, "title_1")

		// creating it again is a no-op
		again, err := db.CreateIndex(ctx, bookstore.Index{Keys: []string{bookstore.FieldTitle}})
		require.NoError(t, err)
		require.Equal(t, name, again)
	}

	{
		name, err := db.CreateIndex(ctx, bookstore.Index{Keys: []string{bookstore.FieldAuthor, bookstore.FieldPublishedYear}})
		require.NoError(t, err)
		require.Contains(t, name, "author_1_published_year_1")
	}

	{
		_, err := db.CreateIndex(ctx, bookstore.Index{Keys: []string{"isbn"}})
		require.ErrorIs(t, err, bookstore.ErrUnknownField)
	}

	if !plansWithIndexes(db) {
		return
	}

	{
		plan, err := db.Explain(ctx, byTitle)
		require.NoError(t, err)
		require.Equal(t, bookstore.StageIndexScan, plan.Stage, "title lookup details: %v", plan.Details)
		require.Contains(t, plan.Index, "title_1")
	}

	{
		plan, err := db.Explain(ctx, byAuthorYear)
		require.NoError(t, err)
		require.Equal(t, bookstore.StageIndexScan, plan.Stage, "compound lookup details: %v", plan.Details)
		require.Contains(t, plan.Index, "author_1_published_year_1")
	}

	{
		// written after the index exists, so it must be found through it
		extra := bookstore.Book{Title: "The Alchemist", Author: "Paulo Coelho", Genre: "Fiction", PublishedYear: 2015, Price: 5}
		require.NoError(t, db.SaveBook(ctx, &extra))

		results, err := db.FindBooks(ctx, byTitle, bookstore.FindOptions{})
		require.NoError(t, err)
		require.Len(t, results, 2)
		results, err = db.FindBooks(ctx, byAuthorYear, bookstore.FindOptions{})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"Hippie", "The Alchemist"}, titles(results))

		plan, err := db.Explain(ctx, byTitle)
		require.NoError(t, err)
		require.EqualValues(t, 2, plan.Returned)
		if readsOwnIndexes(db) {
			// only the two entries under the title are visited
			require.EqualValues(t, 2, plan.KeysExamined)
			require.EqualValues(t, 2, plan.DocsExamined)

			plan, err = db.Explain(ctx, byAuthorYear)
			require.NoError(t, err)
			require.EqualValues(t, 2, plan.KeysExamined)
			require.EqualValues(t, 2, plan.Returned)
		}

		res, err := db.DeleteBook(ctx, "The Alchemist")
		require.NoError(t, err)
		require.EqualValues(t, 1, res.Deleted)

		results, err = db.FindBooks(ctx, byTitle, bookstore.FindOptions{})
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, 2015, results[0].PublishedYear)

		plan, err = db.Explain(ctx, byTitle)
		require.NoError(t, err)
		require.EqualValues(t, 1, plan.Returned)
		if readsOwnIndexes(db) {
			require.EqualValues(t, 1, plan.KeysExamined)
		}
	}
}
