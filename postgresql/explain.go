package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/fiatjaf/bookstore"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type planNode struct {
	NodeType   string     `json:"Node Type"`
	IndexName  string     `json:"Index Name"`
	ActualRows float64    `json:"Actual Rows"`
	Plans      []planNode `json:"Plans"`
}

// Explain runs the query with sequential scans disabled, otherwise postgres never
// bothers with an index on a table this small.
func (b *PostgresBackend) Explain(ctx context.Context, filter bookstore.Filter) (bookstore.QueryPlan, error) {
	query, params := b.FilterQuery(filter)

	txn, err := b.DB.BeginTxx(ctx, nil)
	if err != nil {
		return bookstore.QueryPlan{}, err
	}
	defer txn.Rollback()

	if _, err := txn.ExecContext(ctx, "SET LOCAL enable_seqscan = off"); err != nil {
		return bookstore.QueryPlan{}, err
	}

	var raw string
	if err := txn.QueryRowContext(ctx, "EXPLAIN (ANALYZE, FORMAT JSON) "+txn.Rebind(query), params...).Scan(&raw); err != nil {
		return bookstore.QueryPlan{}, fmt.Errorf("failed to explain %q: %w", query, err)
	}

	return planFromJSON([]byte(raw))
}

func planFromJSON(raw []byte) (bookstore.QueryPlan, error) {
	var explained []struct {
		Plan planNode `json:"Plan"`
	}
	if err := json.Unmarshal(raw, &explained); err != nil {
		return bookstore.QueryPlan{}, fmt.Errorf("failed to parse plan: %w", err)
	}
	if len(explained) == 0 {
		return bookstore.QueryPlan{}, fmt.Errorf("empty plan")
	}

	root := explained[0].Plan
	plan := bookstore.QueryPlan{
		Stage:    bookstore.StageCollectionScan,
		Returned: int64(root.ActualRows),
	}

	var walk func(node planNode)
	walk = func(node planNode) {
		detail := node.NodeType
		if node.IndexName != "" {
			detail += " using " + node.IndexName
		}
		plan.Details = append(plan.Details, detail)

		// the primary key only ever serves ordering here, never the filter
		if strings.Contains(node.NodeType, "Index") && plan.Index == "" && !strings.HasSuffix(node.IndexName, "_pkey") {
			plan.Stage = bookstore.StageIndexScan
			plan.Index = node.IndexName
			plan.KeysExamined = int64(node.ActualRows)
		}
		for _, child := range node.Plans {
			walk(child)
		}
	}
	walk(root)

	return plan, nil
}
