package main

import (
	"context"
	"fmt"

	"github.com/fiatjaf/bookstore"
	"github.com/urfave/cli/v3"
)

var index = &cli.Command{
	Name:        "index",
	ArgsUsage:   "<field> [<field>...]",
	Usage:       "creates an ascending index",
	Description: "more than one field makes a compound index, in the given order.",
	Action: func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() == 0 {
			return fmt.Errorf("missing fields to index")
		}

		idx := bookstore.Index{Keys: c.Args().Slice()}
		name, err := db.CreateIndex(ctx, idx)
		if err != nil {
			return err
		}
		return printer.Print(stdout, 1, "Index created", name)
	},
}
