package bookstore

import (
	"fmt"
	"strconv"
	"strings"
)

// Filter selects records. Zero-valued fields do not constrain the result, the ones
// that are set are combined with AND.
type Filter struct {
	Title          string `json:"title,omitempty"`
	Genre          string `json:"genre,omitempty"`
	Author         string `json:"author,omitempty"`
	PublishedAfter *int   `json:"published_after,omitempty"` // strictly greater than
	InStock        *bool  `json:"in_stock,omitempty"`
}

func (f Filter) Matches(b Book) bool {
	if f.Title != "" && b.Title != f.Title {
		return false
	}
	if f.Genre != "" && b.Genre != f.Genre {
		return false
	}
	if f.Author != "" && b.Author != f.Author {
		return false
	}
	if f.PublishedAfter != nil && b.PublishedYear <= *f.PublishedAfter {
		return false
	}
	if f.InStock != nil && b.InStock != *f.InStock {
		return false
	}
	return true
}

// IsEmpty tells whether the filter matches everything.
func (f Filter) IsEmpty() bool {
	return f.Title == "" && f.Genre == "" && f.Author == "" && f.PublishedAfter == nil && f.InStock == nil
}

// Equalities returns the fields constrained by equality, in a stable order.
func (f Filter) Equalities() []string {
	fields := make([]string, 0, 4)
	if f.Title != "" {
		fields = append(fields, FieldTitle)
	}
	if f.Author != "" {
		fields = append(fields, FieldAuthor)
	}
	if f.Genre != "" {
		fields = append(fields, FieldGenre)
	}
	if f.InStock != nil {
		fields = append(fields, FieldInStock)
	}
	return fields
}

func (f Filter) String() string {
	parts := make([]string, 0, 5)
	if f.Title != "" {
		parts = append(parts, "title="+strconv.Quote(f.Title))
	}
	if f.Genre != "" {
		parts = append(parts, "genre="+strconv.Quote(f.Genre))
	}
	if f.Author != "" {
		parts = append(parts, "author="+strconv.Quote(f.Author))
	}
	if f.PublishedAfter != nil {
		parts = append(parts, "published_year>"+strconv.Itoa(*f.PublishedAfter))
	}
	if f.InStock != nil {
		parts = append(parts, "in_stock="+strconv.FormatBool(*f.InStock))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

type Sort struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending,omitempty"`
}

// FindOptions shapes the result of a find. Limit 0 means no limit.
type FindOptions struct {
	Fields []string `json:"fields,omitempty"`
	Sort   *Sort    `json:"sort,omitempty"`
	Skip   int      `json:"skip,omitempty"`
	Limit  int      `json:"limit,omitempty"`
}

// Validate checks that every field named by the options exists.
func (o FindOptions) Validate() error {
	for _, f := range o.Fields {
		if !IsField(f) {
			return fmt.Errorf("%w: projection on %q", ErrUnknownField, f)
		}
	}
	if o.Sort != nil && !IsField(o.Sort.Field) {
		return fmt.Errorf("%w: sort on %q", ErrUnknownField, o.Sort.Field)
	}
	if o.Skip < 0 || o.Limit < 0 {
		return fmt.Errorf("negative skip or limit (%d, %d)", o.Skip, o.Limit)
	}
	return nil
}

// PageOptions returns the options selecting page number (starting at 1) of the given size.
func PageOptions(number, size int) (FindOptions, error) {
	if number < 1 || size < 1 {
		return FindOptions{}, ErrInvalidPage
	}
	return FindOptions{Skip: (number - 1) * size, Limit: size}, nil
}

// IntPtr and BoolPtr help building filters inline.
func IntPtr(v int) *int { return &v }

func BoolPtr(v bool) *bool { return &v }
