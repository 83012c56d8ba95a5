package sqlbooks

import (
	"context"
	"fmt"

	"github.com/fiatjaf/bookstore"
)

func (b Backend) SaveBook(ctx context.Context, book *bookstore.Book) error {
	_, err := b.DB.NamedExecContext(ctx, "INSERT INTO "+b.Table+
		" (title, author, genre, published_year, price, in_stock)"+
		" VALUES (:title, :author, :genre, :published_year, :price, :in_stock)", book)
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", book.Title, err)
	}
	return nil
}

// firstByTitle narrows a write to the oldest row with the given title.
func (b Backend) firstByTitle() string {
	if b.Dialect.LimitedWrites {
		return " WHERE title = ? ORDER BY id LIMIT 1"
	}
	return " WHERE id = (SELECT id FROM " + b.Table + " WHERE title = ? ORDER BY id LIMIT 1)"
}

func (b Backend) UpdatePrice(ctx context.Context, title string, price float64) (bookstore.UpdateResult, error) {
	query := "UPDATE " + b.Table + " SET price = ?" + b.firstByTitle()
	res, err := b.DB.ExecContext(ctx, b.DB.Rebind(query), price, title)
	if err != nil {
		return bookstore.UpdateResult{}, fmt.Errorf("failed to update price of %q: %w", title, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return bookstore.UpdateResult{}, err
	}
	return bookstore.UpdateResult{Matched: n, Modified: n}, nil
}

func (b Backend) DeleteBook(ctx context.Context, title string) (bookstore.DeleteResult, error) {
	query := "DELETE FROM " + b.Table + b.firstByTitle()
	res, err := b.DB.ExecContext(ctx, b.DB.Rebind(query), title)
	if err != nil {
		return bookstore.DeleteResult{}, fmt.Errorf("failed to delete %q: %w", title, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return bookstore.DeleteResult{}, err
	}
	return bookstore.DeleteResult{Deleted: n}, nil
}
