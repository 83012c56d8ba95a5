package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var delete_ = &cli.Command{
	Name:        "delete",
	ArgsUsage:   "[<title>]",
	Usage:       "deletes the first book with the given title",
	Description: "takes a title either as an argument or reads a stream of titles from stdin and deletes one book for each of them.",
	Action: func(ctx context.Context, c *cli.Command) error {
		hasError := false
		n := 0
		for title := range getStdinLinesOrFirstArgument(c) {
			n++
			res, err := db.DeleteBook(ctx, title)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error deleting %s: %s\n", title, err)
				hasError = true
				continue
			}
			if err := printer.Print(stdout, n, "Deleted "+title, res); err != nil {
				return err
			}
		}

		if hasError {
			return errSomeFailed
		}
		return nil
	},
}
