package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/fiatjaf/bookstore"
	"github.com/urfave/cli/v3"
)

// boltMagic sits right after the page header of a bolt meta page.
const boltMagic = 0xED0CDAED

func detect(path string) (string, error) {
	f, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !f.IsDir() {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()

		buf := make([]byte, 32)
		f.Read(buf)
		if string(buf[0:15]) == "SQLite format 3" {
			return "sqlite", nil
		}
		if binary.LittleEndian.Uint32(buf[16:20]) == boltMagic {
			return "bolt", nil
		}

		return "", fmt.Errorf("unknown db format")
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".vlog") || entry.Name() == "MANIFEST" {
			return "badger", nil
		}
	}

	return "", fmt.Errorf("undetected")
}

func isPiped() bool {
	stat, _ := os.Stdin.Stat()
	return stat.Mode()&os.ModeCharDevice == 0
}

func getStdinLinesOrFirstArgument(c *cli.Command) chan string {
	// try the first argument
	target := c.Args().First()
	if target != "" {
		single := make(chan string, 1)
		single <- target
		close(single)
		return single
	}

	// try the stdin
	multi := make(chan string)
	writeStdinLinesOrNothing(multi)
	return multi
}

func writeStdinLinesOrNothing(ch chan string) (hasStdinLines bool) {
	if isPiped() {
		// piped
		go func() {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if line := strings.TrimSpace(scanner.Text()); line != "" {
					ch <- line
				}
			}
			close(ch)
		}()
		return true
	} else {
		// not piped
		close(ch)
		return false
	}
}

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "title",
			Usage: "exact title",
		},
		&cli.StringFlag{
			Name:  "genre",
			Usage: "exact genre",
		},
		&cli.StringFlag{
			Name:  "author",
			Usage: "exact author",
		},
		&cli.IntFlag{
			Name:  "after",
			Usage: "only books published strictly after this year",
		},
		&cli.StringFlag{
			Name:  "in-stock",
			Usage: "'true' or 'false'",
		},
	}
}

func filterFromFlags(c *cli.Command) (bookstore.Filter, error) {
	filter := bookstore.Filter{
		Title:  c.String("title"),
		Genre:  c.String("genre"),
		Author: c.String("author"),
	}
	if c.IsSet("after") {
		filter.PublishedAfter = bookstore.IntPtr(c.Int("after"))
	}
	if v := c.String("in-stock"); v != "" {
		inStock, err := parseBool(v)
		if err != nil {
			return filter, err
		}
		filter.InStock = &inStock
	}
	return filter, nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("'%s' is not a boolean", v)
}
