package sqlite3

import (
	"testing"

	"github.com/fiatjaf/bookstore"
	"github.com/stretchr/testify/require"
)

func TestPlanFromDetails(t *testing.T) {
	plan := planFromDetails([]string{"SCAN books"})
	require.Equal(t, bookstore.StageCollectionScan, plan.Stage)
	require.Empty(t, plan.Index)

	plan = planFromDetails([]string{"SEARCH books USING INDEX books_title_1 (title=?)"})
	require.True(t, plan.UsesIndex())
	require.Equal(t, "books_title_1", plan.Index)

	plan = planFromDetails([]string{
		"SEARCH books USING COVERING INDEX books_author_1_published_year_1 (author=? AND published_year>?)",
		"USE TEMP B-TREE FOR ORDER BY",
	})
	require.Equal(t, "books_author_1_published_year_1", plan.Index)
	require.Len(t, plan.Details, 2)
}
