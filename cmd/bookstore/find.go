package main

import (
	"context"
	"fmt"

	"github.com/fiatjaf/bookstore"
	"github.com/urfave/cli/v3"
)

var find = &cli.Command{
	Name:        "find",
	Usage:       "finds books",
	Description: "all filters are combined, with no filters every book is returned.",
	Flags: append([]cli.Flag{
		&cli.StringSliceFlag{
			Name:  "fields",
			Usage: "only return these fields",
		},
		&cli.StringFlag{
			Name:  "sort",
			Usage: "field to sort by",
		},
		&cli.BoolFlag{
			Name:  "desc",
			Usage: "sort in descending order",
		},
		&cli.IntFlag{
			Name:  "page",
			Usage: "return only this page, of --page-size books",
		},
	}, filterFlags()...),
	Action: func(ctx context.Context, c *cli.Command) error {
		filter, err := filterFromFlags(c)
		if err != nil {
			return err
		}

		var opts bookstore.FindOptions
		if c.IsSet("page") {
			if opts, err = bookstore.PageOptions(c.Int("page"), cfg.PageSize); err != nil {
				return err
			}
		}
		opts.Fields = c.StringSlice("fields")
		if field := c.String("sort"); field != "" {
			opts.Sort = &bookstore.Sort{Field: field, Descending: c.Bool("desc")}
		}

		books, err := db.FindBooks(ctx, filter, opts)
		if err != nil {
			return fmt.Errorf("error querying: %w", err)
		}

		var result any = books
		if len(opts.Fields) > 0 {
			projected := make([]map[string]any, len(books))
			for i, b := range books {
				projected[i] = b.Fields(opts.Fields...)
			}
			result = projected
		}
		return printer.Print(stdout, 1, "Books matching "+filter.String(), result)
	},
}
