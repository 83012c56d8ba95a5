package sqlbooks

import (
	"context"
	"fmt"

	"github.com/fiatjaf/bookstore"
)

func (b Backend) AveragePriceByGenre(ctx context.Context) ([]bookstore.GenreAverage, error) {
	query := "SELECT genre, AVG(price) AS avg_price FROM " + b.Table + " GROUP BY genre ORDER BY genre"
	results := make([]bookstore.GenreAverage, 0, 10)
	if err := b.DB.SelectContext(ctx, &results, query); err != nil {
		return nil, fmt.Errorf("failed to average prices using query %q: %w", query, err)
	}
	return results, nil
}

func (b Backend) TopAuthors(ctx context.Context, n int) ([]bookstore.AuthorCount, error) {
	query := "SELECT author, COUNT(*) AS count FROM " + b.Table + " GROUP BY author ORDER BY 2 DESC, 1"
	if n > 0 {
		query += fmt.Sprintf(" LIMIT %d", n)
	}
	results := make([]bookstore.AuthorCount, 0, max(n, 1))
	if err := b.DB.SelectContext(ctx, &results, query); err != nil {
		return nil, fmt.Errorf("failed to count authors using query %q: %w", query, err)
	}
	return results, nil
}

func (b Backend) CountByDecade(ctx context.Context) ([]bookstore.DecadeCount, error) {
	query := "SELECT " + b.Dialect.DecadeExpr + " AS decade, COUNT(*) AS count FROM " + b.Table + " GROUP BY 1 ORDER BY 1"
	results := make([]bookstore.DecadeCount, 0, 10)
	if err := b.DB.SelectContext(ctx, &results, query); err != nil {
		return nil, fmt.Errorf("failed to count decades using query %q: %w", query, err)
	}
	return results, nil
}
