package bookstore

import (
	"fmt"
	"strings"
)

// Index is an ascending index over one or more fields, in precedence order.
type Index struct {
	Keys []string `json:"keys"`
}

// Name follows the usual document store convention: "author_1_published_year_1".
func (idx Index) Name() string {
	parts := make([]string, len(idx.Keys))
	for i, k := range idx.Keys {
		parts[i] = k + "_1"
	}
	return strings.Join(parts, "_")
}

func (idx Index) Validate() error {
	if len(idx.Keys) == 0 {
		return fmt.Errorf("index needs at least one key")
	}
	for _, k := range idx.Keys {
		if !IsField(k) {
			return fmt.Errorf("%w: index on %q", ErrUnknownField, k)
		}
	}
	return nil
}

// Plan stages, normalized across backends.
const (
	StageIndexScan      = "IXSCAN"
	StageCollectionScan = "COLLSCAN"
)

// QueryPlan is what a store reports about the execution of a find.
// Counters a backend cannot observe are left at zero.
type QueryPlan struct {
	Stage        string   `json:"stage"`
	Index        string   `json:"index,omitempty"`
	KeysExamined int64    `json:"keys_examined"`
	DocsExamined int64    `json:"docs_examined"`
	Returned     int64    `json:"returned"`
	Details      []string `json:"details,omitempty"`
}

func (p QueryPlan) UsesIndex() bool {
	return p.Stage == StageIndexScan
}
