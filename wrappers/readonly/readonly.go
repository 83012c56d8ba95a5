package readonly

import (
	"context"

	"github.com/fiatjaf/bookstore"
)

// Wrapper rejects every operation that would change the collection or its indexes.
type Wrapper struct {
	bookstore.Store
}

var _ bookstore.Store = (*Wrapper)(nil)

func (w Wrapper) SaveBook(ctx context.Context, book *bookstore.Book) error {
	return bookstore.ErrReadOnly
}

func (w Wrapper) UpdatePrice(ctx context.Context, title string, price float64) (bookstore.UpdateResult, error) {
	return bookstore.UpdateResult{}, bookstore.ErrReadOnly
}

func (w Wrapper) DeleteBook(ctx context.Context, title string) (bookstore.DeleteResult, error) {
	return bookstore.DeleteResult{}, bookstore.ErrReadOnly
}

func (w Wrapper) CreateIndex(ctx context.Context, idx bookstore.Index) (string, error) {
	return "", bookstore.ErrReadOnly
}
