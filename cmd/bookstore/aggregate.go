package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

var aggregate = &cli.Command{
	Name:      "aggregate",
	ArgsUsage: "<avg-price|top-author|decades>",
	Usage:     "runs one of the aggregations over the whole collection",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "top",
			Usage: "how many authors top-author returns",
			Value: 1,
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		var (
			label  string
			result any
			err    error
		)
		switch which := c.Args().First(); which {
		case "avg-price":
			label = "Average price of books by genre"
			result, err = db.AveragePriceByGenre(ctx)
		case "top-author", "top-authors":
			label = "Authors with the most books"
			result, err = db.TopAuthors(ctx, c.Int("top"))
		case "decades":
			label = "Books grouped by publication decade"
			result, err = db.CountByDecade(ctx)
		case "":
			return fmt.Errorf("missing aggregation name")
		default:
			return fmt.Errorf("unknown aggregation '%s'", which)
		}
		if err != nil {
			return err
		}
		return printer.Print(stdout, 1, label, result)
	},
}
