package sqlbooks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fiatjaf/bookstore"
)

// Where renders the filter as a WHERE clause with ? placeholders.
func Where(filter bookstore.Filter) (string, []any) {
	conditions := make([]string, 0, 5)
	params := make([]any, 0, 5)

	if filter.Title != "" {
		conditions = append(conditions, "title = ?")
		params = append(params, filter.Title)
	}
	if filter.Genre != "" {
		conditions = append(conditions, "genre = ?")
		params = append(params, filter.Genre)
	}
	if filter.Author != "" {
		conditions = append(conditions, "author = ?")
		params = append(params, filter.Author)
	}
	if filter.InStock != nil {
		conditions = append(conditions, "in_stock = ?")
		params = append(params, *filter.InStock)
	}
	if filter.PublishedAfter != nil {
		conditions = append(conditions, "published_year > ?")
		params = append(params, *filter.PublishedAfter)
	}

	if len(conditions) == 0 {
		return "", params
	}
	return " WHERE " + strings.Join(conditions, " AND "), params
}

// FilterQuery is the bare SELECT for filter with no ordering, which is what gets explained:
// an ORDER BY id would let planners pick the primary key just for the ordering.
func (b Backend) FilterQuery(filter bookstore.Filter, columns ...string) (string, []any) {
	if len(columns) == 0 {
		columns = bookstore.AllFields
	}
	where, params := Where(filter)
	return "SELECT " + strings.Join(columns, ", ") + " FROM " + b.Table + where, params
}

// SelectQuery renders a find, still with ? placeholders.
func (b Backend) SelectQuery(filter bookstore.Filter, opts bookstore.FindOptions) (string, []any) {
	query, params := b.FilterQuery(filter, opts.Fields...)

	// id keeps insertion order for ties and unsorted queries
	if opts.Sort != nil {
		direction := "ASC"
		if opts.Sort.Descending {
			direction = "DESC"
		}
		query += " ORDER BY " + opts.Sort.Field + " " + direction + ", id"
	} else {
		query += " ORDER BY id"
	}

	switch {
	case opts.Limit > 0:
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	case opts.Skip > 0:
		query += " LIMIT " + b.Dialect.NoLimit
	}
	if opts.Skip > 0 {
		query += fmt.Sprintf(" OFFSET %d", opts.Skip)
	}

	return query, params
}

func (b Backend) FindBooks(ctx context.Context, filter bookstore.Filter, opts bookstore.FindOptions) ([]bookstore.Book, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	query, params := b.SelectQuery(filter, opts)
	books := make([]bookstore.Book, 0, 20)
	if err := b.DB.SelectContext(ctx, &books, b.DB.Rebind(query), params...); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to fetch books using query %q: %w", query, err)
	}
	return books, nil
}

// CountBooks tells how many rows match filter.
func (b Backend) CountBooks(ctx context.Context, filter bookstore.Filter) (int64, error) {
	where, params := Where(filter)
	query := "SELECT COUNT(*) FROM " + b.Table + where

	var count int64
	if err := b.DB.QueryRowContext(ctx, b.DB.Rebind(query), params...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books using query %q: %w", query, err)
	}
	return count, nil
}
