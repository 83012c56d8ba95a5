package main

import (
	"context"
	"fmt"

	"github.com/fiatjaf/bookstore/runner"
	"github.com/urfave/cli/v3"
)

var run = &cli.Command{
	Name:        "run",
	Usage:       "runs the whole demo sequence of queries",
	Description: "finds, updates, deletes, aggregates, creates the indexes and explains, printing each result in order.\nthe update and the delete change the collection, the index creation changes its metadata.",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "page",
			Usage: "page number shown by the pagination step",
			Value: runner.DefaultPageNumber,
		},
		&cli.BoolFlag{
			Name:  "continue-on-error",
			Usage: "keep going after a step fails",
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		r := runner.Runner{
			Store:           db,
			Out:             stdout,
			Printer:         printer,
			Logger:          logger,
			PageSize:        cfg.PageSize,
			PageNumber:      c.Int("page"),
			ContinueOnError: c.Bool("continue-on-error"),
		}

		if _, err := r.Run(ctx); err != nil {
			return fmt.Errorf("%w: %w", errSomeFailed, err)
		}
		return nil
	},
}
