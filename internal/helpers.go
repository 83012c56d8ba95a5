package internal

import (
	"cmp"
	"strings"

	"github.com/fiatjaf/bookstore"
	"golang.org/x/exp/slices"
)

// Find applies filter and opts to books the way a document store would.
// The input slice is not modified.
func Find(books []bookstore.Book, filter bookstore.Filter, opts bookstore.FindOptions) ([]bookstore.Book, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	results := make([]bookstore.Book, 0, len(books))
	for _, b := range books {
		if filter.Matches(b) {
			results = append(results, b)
		}
	}

	if opts.Sort != nil {
		field := opts.Sort.Field
		desc := opts.Sort.Descending
		slices.SortStableFunc(results, func(a, b bookstore.Book) int {
			c := CompareField(a, b, field)
			if desc {
				return -c
			}
			return c
		})
	}

	if opts.Skip > 0 {
		if opts.Skip >= len(results) {
			results = results[:0]
		} else {
			results = results[opts.Skip:]
		}
	}
	if opts.Limit > 0 && opts.Limit < len(results) {
		results = results[:opts.Limit]
	}

	if len(opts.Fields) > 0 {
		for i, b := range results {
			results[i] = b.Project(opts.Fields...)
		}
	}

	return results, nil
}

// CompareField orders two books by one of their fields, false before true for in_stock.
func CompareField(a, b bookstore.Book, field string) int {
	switch field {
	case bookstore.FieldTitle:
		return strings.Compare(a.Title, b.Title)
	case bookstore.FieldAuthor:
		return strings.Compare(a.Author, b.Author)
	case bookstore.FieldGenre:
		return strings.Compare(a.Genre, b.Genre)
	case bookstore.FieldPublishedYear:
		return cmp.Compare(a.PublishedYear, b.PublishedYear)
	case bookstore.FieldPrice:
		return cmp.Compare(a.Price, b.Price)
	case bookstore.FieldInStock:
		switch {
		case a.InStock == b.InStock:
			return 0
		case b.InStock:
			return -1
		default:
			return 1
		}
	}
	return 0
}

// AverageByGenre returns one entry per genre, sorted by genre.
func AverageByGenre(books []bookstore.Book) []bookstore.GenreAverage {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, b := range books {
		sums[b.Genre] += b.Price
		counts[b.Genre]++
	}

	results := make([]bookstore.GenreAverage, 0, len(sums))
	for genre, sum := range sums {
		results = append(results, bookstore.GenreAverage{
			Genre:    genre,
			AvgPrice: sum / float64(counts[genre]),
		})
	}
	slices.SortFunc(results, func(a, b bookstore.GenreAverage) int {
		return strings.Compare(a.Genre, b.Genre)
	})
	return results
}

// TopAuthors returns the n authors with the most books, ties broken by name.
// n <= 0 returns all of them.
func TopAuthors(books []bookstore.Book, n int) []bookstore.AuthorCount {
	counts := make(map[string]int64)
	for _, b := range books {
		counts[b.Author]++
	}

	results := make([]bookstore.AuthorCount, 0, len(counts))
	for author, count := range counts {
		results = append(results, bookstore.AuthorCount{Author: author, Count: count})
	}
	slices.SortFunc(results, func(a, b bookstore.AuthorCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Author, b.Author)
	})

	if n > 0 && n < len(results) {
		results = results[:n]
	}
	return results
}

// Decades counts books per publication decade, oldest first.
func Decades(books []bookstore.Book) []bookstore.DecadeCount {
	counts := make(map[int]int64)
	for _, b := range books {
		counts[bookstore.Decade(b.PublishedYear)]++
	}

	results := make([]bookstore.DecadeCount, 0, len(counts))
	for decade, count := range counts {
		results = append(results, bookstore.DecadeCount{Decade: decade, Count: count})
	}
	slices.SortFunc(results, func(a, b bookstore.DecadeCount) int {
		return cmp.Compare(a.Decade, b.Decade)
	})
	return results
}

// ChooseIndex picks the index whose leading keys are covered by the filter the longest,
// returning how many keys are usable. An equality can be followed by more keys, a range
// ends the usable prefix.
func ChooseIndex(filter bookstore.Filter, indexes []bookstore.Index) (best bookstore.Index, usable int) {
	equalities := filter.Equalities()
	for _, idx := range indexes {
		n := 0
		for _, key := range idx.Keys {
			if slices.Contains(equalities, key) {
				n++
				continue
			}
			if key == bookstore.FieldPublishedYear && filter.PublishedAfter != nil {
				n++
			}
			break
		}
		if n > usable {
			best = idx
			usable = n
		}
	}
	return best, usable
}

// AddIndex appends idx to indexes unless an index with the same name exists.
func AddIndex(indexes []bookstore.Index, idx bookstore.Index) []bookstore.Index {
	for _, existing := range indexes {
		if existing.Name() == idx.Name() {
			return indexes
		}
	}
	return append(indexes, idx)
}
