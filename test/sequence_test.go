package test

import (
	"bytes"
	"testing"

	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/runner"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func runSequenceTestOn(t *testing.T, db bookstore.Store) {
	out := &bytes.Buffer{}
	r := runner.Runner{
		Store:   db,
		Out:     out,
		Printer: runner.JSONPrinter{Compact: true},
		Logger:  zerolog.Nop(),
	}

	results, err := r.Run(ctx)
	require.NoError(t, err)
	require.Len(t, results, 17)
	for i, res := range results {
		require.Equal(t, i+1, res.Step)
		require.NoError(t, res.Err, "step %d: %s", res.Step, res.Label)
	}

	require.Contains(t, out.String(), "1. Fiction books: [")
	require.Contains(t, out.String(), "17. Explain plan for compound query: {")
}
