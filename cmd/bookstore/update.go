package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"
)

var updatePrice = &cli.Command{
	Name:      "update-price",
	ArgsUsage: "<title> <price>",
	Usage:     "sets the price of the first book with the given title",
	Action: func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() != 2 {
			return fmt.Errorf("expected a title and a price, got %d arguments", c.Args().Len())
		}
		title := c.Args().Get(0)
		price, err := strconv.ParseFloat(c.Args().Get(1), 64)
		if err != nil {
			return fmt.Errorf("invalid price '%s': %w", c.Args().Get(1), err)
		}

		res, err := db.UpdatePrice(ctx, title, price)
		if err != nil {
			return err
		}
		return printer.Print(stdout, 1, "Updated "+title, res)
	},
}
