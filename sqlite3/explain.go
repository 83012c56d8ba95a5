package sqlite3

import (
	"context"
	"fmt"
	"strings"

	"github.com/fiatjaf/bookstore"
)

func (b *SQLite3Backend) Explain(ctx context.Context, filter bookstore.Filter) (bookstore.QueryPlan, error) {
	query, params := b.FilterQuery(filter)
	rows, err := b.DB.QueryContext(ctx, "EXPLAIN QUERY PLAN "+query, params...)
	if err != nil {
		return bookstore.QueryPlan{}, fmt.Errorf("failed to explain %q: %w", query, err)
	}
	defer rows.Close()

	details := make([]string, 0, 2)
	for rows.Next() {
		var id, parent, notused int
		var detail string
		if err := rows.Scan(&id, &parent, &notused, &detail); err != nil {
			return bookstore.QueryPlan{}, err
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return bookstore.QueryPlan{}, err
	}

	plan := planFromDetails(details)
	if plan.Returned, err = b.CountBooks(ctx, filter); err != nil {
		return bookstore.QueryPlan{}, err
	}
	return plan, nil
}

// planFromDetails reads lines like "SEARCH books USING INDEX books_title_1 (title=?)"
// or "SCAN books".
func planFromDetails(details []string) bookstore.QueryPlan {
	plan := bookstore.QueryPlan{Stage: bookstore.StageCollectionScan, Details: details}
	for _, detail := range details {
		for _, marker := range []string{"USING COVERING INDEX ", "USING INDEX "} {
			if _, after, found := strings.Cut(detail, marker); found {
				plan.Stage = bookstore.StageIndexScan
				plan.Index, _, _ = strings.Cut(after, " ")
				return plan
			}
		}
	}
	return plan
}
