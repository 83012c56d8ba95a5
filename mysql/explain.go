package mysql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fiatjaf/bookstore"
)

func (b *MySQLBackend) Explain(ctx context.Context, filter bookstore.Filter) (bookstore.QueryPlan, error) {
	query, params := b.FilterQuery(filter)
	rows, err := b.DB.QueryxContext(ctx, "EXPLAIN "+query, params...)
	if err != nil {
		return bookstore.QueryPlan{}, fmt.Errorf("failed to explain %q: %w", query, err)
	}
	defer rows.Close()

	plan := bookstore.QueryPlan{Stage: bookstore.StageCollectionScan}
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return bookstore.QueryPlan{}, err
		}
		planRow(&plan, row)
	}
	if err := rows.Err(); err != nil {
		return bookstore.QueryPlan{}, err
	}

	if plan.Returned, err = b.CountBooks(ctx, filter); err != nil {
		return bookstore.QueryPlan{}, err
	}
	return plan, nil
}

// planRow folds one row of the traditional EXPLAIN output into plan.
func planRow(plan *bookstore.QueryPlan, row map[string]any) {
	access := text(row["type"])
	key := text(row["key"])
	plan.Details = append(plan.Details, fmt.Sprintf("type=%s key=%s rows=%s", access, key, text(row["rows"])))

	if key != "" && plan.Index == "" {
		plan.Stage = bookstore.StageIndexScan
		plan.Index = key
		plan.KeysExamined, _ = strconv.ParseInt(text(row["rows"]), 10, 64)
	} else if access == "ALL" {
		plan.DocsExamined, _ = strconv.ParseInt(text(row["rows"]), 10, 64)
	}
}

func text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
