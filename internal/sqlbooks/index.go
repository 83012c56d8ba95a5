package sqlbooks

import (
	"context"
	"fmt"
	"strings"

	"github.com/fiatjaf/bookstore"
)

// IndexName is scoped to the table since SQL index names are not per table everywhere.
func (b Backend) IndexName(idx bookstore.Index) string {
	return b.Table + "_" + idx.Name()
}

func (b Backend) CreateIndex(ctx context.Context, idx bookstore.Index) (string, error) {
	if err := idx.Validate(); err != nil {
		return "", err
	}

	name := b.IndexName(idx)
	ifNotExists := "IF NOT EXISTS "
	if b.Dialect.IndexExists != nil {
		ifNotExists = ""
	}
	query := "CREATE INDEX " + ifNotExists + name + " ON " + b.Table + " (" + strings.Join(idx.Keys, ", ") + ")"

	if _, err := b.DB.ExecContext(ctx, query); err != nil {
		if b.Dialect.IndexExists != nil && b.Dialect.IndexExists(err) {
			return name, nil
		}
		return "", fmt.Errorf("failed to create index %s: %w", name, err)
	}
	return name, nil
}
