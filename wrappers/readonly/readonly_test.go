package readonly

import (
	"context"
	"testing"

	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/slicestore"
	"github.com/stretchr/testify/require"
)

func TestReadOnly(t *testing.T) {
	ctx := context.Background()
	ss := &slicestore.SliceStore{}
	require.NoError(t, ss.Init())
	require.NoError(t, ss.SaveBook(ctx, &bookstore.Book{Title: "Moby Dick", Price: 12.50}))

	w := Wrapper{Store: ss}

	require.ErrorIs(t, w.SaveBook(ctx, &bookstore.Book{Title: "Emma"}), bookstore.ErrReadOnly)
	_, err := w.UpdatePrice(ctx, "Moby Dick", 1)
	require.ErrorIs(t, err, bookstore.ErrReadOnly)
	_, err = w.DeleteBook(ctx, "Moby Dick")
	require.ErrorIs(t, err, bookstore.ErrReadOnly)
	_, err = w.CreateIndex(ctx, bookstore.Index{Keys: []string{"title"}})
	require.ErrorIs(t, err, bookstore.ErrReadOnly)

	books, err := w.FindBooks(ctx, bookstore.Filter{}, bookstore.FindOptions{})
	require.NoError(t, err)
	require.Equal(t, []bookstore.Book{{Title: "Moby Dick", Price: 12.50}}, books)
}
