package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/internal"
	"github.com/fiatjaf/bookstore/slicestore"
	"github.com/fiatjaf/bookstore/wrappers/readonly"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *slicestore.SliceStore {
	ss := &slicestore.SliceStore{}
	require.NoError(t, ss.Init())
	for _, b := range internal.SampleBooks() {
		require.NoError(t, ss.SaveBook(context.Background(), &b))
	}
	return ss
}

func titles(v any) []string {
	books := v.([]bookstore.Book)
	res := make([]string, len(books))
	for i, b := range books {
		res[i] = b.Title
	}
	return res
}

func TestRunWholeSequence(t *testing.T) {
	out := &bytes.Buffer{}
	r := Runner{Store: seeded(t), Out: out, Logger: zerolog.Nop()}

	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 17)
	for i, res := range results {
		require.Equal(t, i+1, res.Step)
		require.NoError(t, res.Err)
	}

	require.ElementsMatch(t, []string{
		"To Kill a Mockingbird", "The Great Gatsby", "The Catcher in the Rye", "The Alchemist", "Hippie",
	}, titles(results[0].Value))
	require.ElementsMatch(t, []string{
		"To Kill a Mockingbird", "The Catcher in the Rye", "The Lord of the Rings", "The Alchemist", "The Martian", "Hippie",
	}, titles(results[1].Value))
	require.ElementsMatch(t, []string{"Nineteen Eighty-Four", "Animal Farm", "Homage to Catalonia"}, titles(results[2].Value))
	require.Equal(t, bookstore.UpdateResult{Matched: 1, Modified: 1}, results[3].Value)
	require.Equal(t, bookstore.DeleteResult{Deleted: 1}, results[4].Value)
	require.ElementsMatch(t, []string{"The Martian", "Hippie"}, titles(results[5].Value))

	projected := results[6].Value.([]map[string]any)
	require.Len(t, projected, 14)
	require.Len(t, projected[0], 3)
	require.Contains(t, projected[0], "price")

	asc := results[7].Value.([]bookstore.Book)
	desc := results[8].Value.([]bookstore.Book)
	require.Equal(t, "Pride and Prejudice", asc[0].Title)
	require.Equal(t, "The Lord of the Rings", desc[0].Title)

	require.Len(t, results[9].Value, 5)
	require.Equal(t, []bookstore.AuthorCount{{Author: "George Orwell", Count: 3}}, results[11].Value)
	require.Equal(t, "title_1", results[13].Value)
	require.Equal(t, "author_1_published_year_1", results[14].Value)

	titlePlan := results[15].Value.(bookstore.QueryPlan)
	require.True(t, titlePlan.UsesIndex())
	require.Equal(t, "title_1", titlePlan.Index)
	compoundPlan := results[16].Value.(bookstore.QueryPlan)
	require.Equal(t, "author_1_published_year_1", compoundPlan.Index)

	printed := out.String()
	require.True(t, strings.HasPrefix(printed, "1. Fiction books:\n"))
	require.Contains(t, printed, "4. Updated price of Nineteen Eighty-Four:\n{")
	require.Contains(t, printed, `"modified": 1`)
	require.Contains(t, printed, "17. Explain plan for compound query:")

	// the update went through
	books, err := r.Store.FindBooks(context.Background(), bookstore.Filter{Title: UpdatedTitle}, bookstore.FindOptions{})
	require.NoError(t, err)
	require.Equal(t, UpdatedPrice, books[0].Price)
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	r := Runner{Store: readonly.Wrapper{Store: seeded(t)}, Out: &bytes.Buffer{}, Logger: zerolog.Nop()}

	results, err := r.Run(context.Background())
	require.ErrorIs(t, err, bookstore.ErrReadOnly)
	require.Contains(t, err.Error(), "step 4")
	require.Len(t, results, 4)
	require.Error(t, results[3].Err)
}

func TestRunContinueOnError(t *testing.T) {
	out := &bytes.Buffer{}
	r := Runner{
		Store:           readonly.Wrapper{Store: seeded(t)},
		Out:             out,
		Logger:          zerolog.Nop(),
		ContinueOnError: true,
	}

	results, err := r.Run(context.Background())
	require.ErrorIs(t, err, bookstore.ErrReadOnly)
	require.Len(t, results, 17)

	failed := make([]int, 0, 4)
	for _, res := range results {
		if res.Err != nil {
			failed = append(failed, res.Step)
		}
	}
	require.Equal(t, []int{4, 5, 14, 15}, failed)
	require.NotContains(t, out.String(), "4. Updated price")
	require.Contains(t, out.String(), "16. Explain plan for title query:")

	// no index was created so nothing could be used
	require.False(t, results[15].Value.(bookstore.QueryPlan).UsesIndex())
}

func TestPagesDoNotOverlap(t *testing.T) {
	page := func(n int) []string {
		r := Runner{Store: seeded(t), Out: &bytes.Buffer{}, Logger: zerolog.Nop(), PageNumber: n}
		results, err := r.Run(context.Background())
		require.NoError(t, err)
		return titles(results[9].Value)
	}

	first := page(1)
	second := page(2)
	require.Len(t, first, 5)
	require.Len(t, second, 5)
	for _, title := range first {
		require.NotContains(t, second, title)
	}

	r := Runner{Store: seeded(t), Out: &bytes.Buffer{}, Logger: zerolog.Nop(), PageNumber: -1}
	_, err := r.Run(context.Background())
	require.ErrorIs(t, err, bookstore.ErrInvalidPage)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := Runner{Store: seeded(t), Out: &bytes.Buffer{}, Logger: zerolog.Nop()}
	results, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, results)
}

func TestPrettyPrinter(t *testing.T) {
	out := &bytes.Buffer{}
	err := PrettyPrinter{}.Print(out, 2, "Deleted", bookstore.DeleteResult{Deleted: 1})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out.String(), "2. Deleted:\n"))
	require.Contains(t, out.String(), "DeleteResult")

	out.Reset()
	err = JSONPrinter{Compact: true}.Print(out, 3, "Top", []bookstore.AuthorCount{{Author: "George Orwell", Count: 3}})
	require.NoError(t, err)
	require.Equal(t, "3. Top: [{\"author\":\"George Orwell\",\"count\":3}]\n", out.String())
}
