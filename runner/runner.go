// Package runner executes the fixed demo sequence of queries against a store,
// printing each result before moving to the next.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fiatjaf/bookstore"
	"github.com/rs/zerolog"
)

type Runner struct {
	Store   bookstore.Store
	Out     io.Writer
	Printer Printer
	Logger  zerolog.Logger

	PageSize   int
	PageNumber int

	// ContinueOnError makes a failed step be reported and skipped instead of
	// aborting the rest of the sequence.
	ContinueOnError bool
}

// Result is the outcome of one step, numbered from 1.
type Result struct {
	Step  int
	Label string
	Value any
	Err   error
}

// Run executes every step in order. Without ContinueOnError it stops at the first
// failure and returns it; otherwise all failures are joined in the returned error.
func (r Runner) Run(ctx context.Context) ([]Result, error) {
	printer := r.Printer
	if printer == nil {
		printer = JSONPrinter{}
	}
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	steps := r.Steps()
	results := make([]Result, 0, len(steps))
	var errs []error

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		n := i + 1
		start := time.Now()
		value, err := step.Run(ctx, r.Store)
		if err == nil {
			err = printer.Print(out, n, step.Label, value)
		}
		results = append(results, Result{Step: n, Label: step.Label, Value: value, Err: err})

		if err != nil {
			err = fmt.Errorf("step %d (%s): %w", n, step.Label, err)
			r.Logger.Error().Err(err).Int("step", n).Msg("step failed")
			if !r.ContinueOnError {
				return results, err
			}
			errs = append(errs, err)
			continue
		}

		r.Logger.Debug().Int("step", n).Str("label", step.Label).Dur("took", time.Since(start)).Msg("step done")
	}

	return results, errors.Join(errs...)
}
