package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/internal"
	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var seed = &cli.Command{
	Name:        "seed",
	ArgsUsage:   "[<file>]",
	Usage:       "inserts books",
	Description: "takes a file with a JSON array of books, or reads one JSON book per line from stdin, and inserts them in the currently opened store.\n--sample inserts the catalog the run command expects.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "sample",
			Usage: "insert the built-in sample catalog",
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		var books []bookstore.Book
		skipped := false
		switch {
		case c.Bool("sample"):
			books = internal.SampleBooks()
		case c.Args().First() != "":
			raw, err := os.ReadFile(c.Args().First())
			if err != nil {
				return err
			}
			if books, err = readBooks(raw); err != nil {
				return err
			}
		default:
			lines := make(chan string)
			writeStdinLinesOrNothing(lines)
			for line := range lines {
				var book bookstore.Book
				if err := json.Unmarshal([]byte(line), &book); err != nil {
					fmt.Fprintf(os.Stderr, "invalid book '%s': %s\n", line, err)
					skipped = true
					continue
				}
				books = append(books, book)
			}
		}

		if err := saveAll(ctx, books); err != nil {
			return err
		}
		if skipped {
			return errSomeFailed
		}
		return nil
	},
}

// readBooks accepts either a JSON array or one JSON object per line.
func readBooks(raw []byte) ([]bookstore.Book, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var books []bookstore.Book
		if err := json.Unmarshal(raw, &books); err != nil {
			return nil, fmt.Errorf("invalid books file: %w", err)
		}
		return books, nil
	}

	books := make([]bookstore.Book, 0, 20)
	dec := json.NewDecoder(bytes.NewReader(raw))
	for {
		var book bookstore.Book
		if err := dec.Decode(&book); err == io.EOF {
			return books, nil
		} else if err != nil {
			return nil, fmt.Errorf("invalid book after %d: %w", len(books), err)
		}
		books = append(books, book)
	}
}

func saveAll(ctx context.Context, books []bookstore.Book) error {
	hasError := false
	for _, book := range books {
		if err := db.SaveBook(ctx, &book); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save '%s': %s\n", book.Title, err)
			hasError = true
			continue
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", book.Title)
	}

	if hasError {
		return errSomeFailed
	}
	return nil
}
