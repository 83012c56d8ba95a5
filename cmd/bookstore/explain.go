package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

var explain = &cli.Command{
	Name:  "explain",
	Usage: "shows how the store executes a find with the given filters",
	Flags: filterFlags(),
	Action: func(ctx context.Context, c *cli.Command) error {
		filter, err := filterFromFlags(c)
		if err != nil {
			return err
		}

		plan, err := db.Explain(ctx, filter)
		if err != nil {
			return err
		}
		return printer.Print(stdout, 1, "Explain plan for "+filter.String(), plan)
	},
}
