package slicestore

import (
	"bytes"
	"cmp"
	"context"
	"sync"

	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/internal"
	"golang.org/x/exp/slices"
)

var _ bookstore.Store = (*SliceStore)(nil)

// SliceStore keeps the collection in memory, in insertion order. Every book gets a
// serial, and each created index keeps its entries sorted by key.
type SliceStore struct {
	sync.Mutex
	internal []bookstore.Book
	serials  []uint64
	next     uint64

	indexes []bookstore.Index
	entries map[string][]entry
}

type entry struct {
	key    []byte
	serial uint64
}

func compareEntries(a, b entry) int {
	if c := bytes.Compare(a.key, b.key); c != 0 {
		return c
	}
	return cmp.Compare(a.serial, b.serial)
}

func (b *SliceStore) Init() error {
	b.internal = make([]bookstore.Book, 0, 500)
	b.serials = make([]uint64, 0, 500)
	b.entries = make(map[string][]entry)
	return nil
}

func (b *SliceStore) Close() {}

func (b *SliceStore) SaveBook(ctx context.Context, book *bookstore.Book) error {
	b.Lock()
	defer b.Unlock()

	b.next++
	b.internal = append(b.internal, *book)
	b.serials = append(b.serials, b.next)
	for _, idx := range b.indexes {
		b.insertEntry(idx, *book, b.next)
	}
	return nil
}

func (b *SliceStore) insertEntry(idx bookstore.Index, book bookstore.Book, serial uint64) {
	if b.entries == nil {
		b.entries = make(map[string][]entry)
	}
	name := idx.Name()
	e := entry{internal.IndexKey(idx, book), serial}
	pos, _ := slices.BinarySearchFunc(b.entries[name], e, compareEntries)
	b.entries[name] = slices.Insert(b.entries[name], pos, e)
}

func (b *SliceStore) removeEntry(idx bookstore.Index, book bookstore.Book, serial uint64) {
	name := idx.Name()
	e := entry{internal.IndexKey(idx, book), serial}
	if pos, found := slices.BinarySearchFunc(b.entries[name], e, compareEntries); found {
		b.entries[name] = slices.Delete(b.entries[name], pos, pos+1)
	}
}

// candidates returns the books a find for filter has to look at, in insertion order,
// going through the best index when one can be used, and the plan describing that.
func (b *SliceStore) candidates(filter bookstore.Filter) ([]bookstore.Book, bookstore.QueryPlan) {
	idx, usable := internal.ChooseIndex(filter, b.indexes)
	if usable == 0 {
		return b.internal, internal.CollectionScanPlan(len(b.internal))
	}

	prefix, start := internal.IndexBounds(filter, idx, usable)
	entries := b.entries[idx.Name()]
	pos, _ := slices.BinarySearchFunc(entries, start, func(e entry, start []byte) int {
		return bytes.Compare(e.key, start)
	})

	found := make([]uint64, 0, 16)
	for _, e := range entries[pos:] {
		if !bytes.HasPrefix(e.key, prefix) {
			break
		}
		found = append(found, e.serial)
	}
	slices.Sort(found)

	books := make([]bookstore.Book, 0, len(found))
	for _, serial := range found {
		if i, ok := slices.BinarySearch(b.serials, serial); ok {
			books = append(books, b.internal[i])
		}
	}
	return books, internal.IndexScanPlan(idx, len(found), len(books))
}

func (b *SliceStore) FindBooks(ctx context.Context, filter bookstore.Filter, opts bookstore.FindOptions) ([]bookstore.Book, error) {
	b.Lock()
	defer b.Unlock()

	books, _ := b.candidates(filter)
	return internal.Find(books, filter, opts)
}

func (b *SliceStore) UpdatePrice(ctx context.Context, title string, price float64) (bookstore.UpdateResult, error) {
	b.Lock()
	defer b.Unlock()

	idx := slices.IndexFunc(b.internal, func(book bookstore.Book) bool { return book.Title == title })
	if idx == -1 {
		return bookstore.UpdateResult{}, nil
	}

	for _, index := range b.indexes {
		b.removeEntry(index, b.internal[idx], b.serials[idx])
	}
	b.internal[idx].Price = price
	for _, index := range b.indexes {
		b.insertEntry(index, b.internal[idx], b.serials[idx])
	}
	return bookstore.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (b *SliceStore) DeleteBook(ctx context.Context, title string) (bookstore.DeleteResult, error) {
	b.Lock()
	defer b.Unlock()

	idx := slices.IndexFunc(b.internal, func(book bookstore.Book) bool { return book.Title == title })
	if idx == -1 {
		// we don't have this book
		return bookstore.DeleteResult{}, nil
	}

	for _, index := range b.indexes {
		b.removeEntry(index, b.internal[idx], b.serials[idx])
	}
	b.internal = slices.Delete(b.internal, idx, idx+1)
	b.serials = slices.Delete(b.serials, idx, idx+1)
	return bookstore.DeleteResult{Deleted: 1}, nil
}

func (b *SliceStore) AveragePriceByGenre(ctx context.Context) ([]bookstore.GenreAverage, error) {
	b.Lock()
	defer b.Unlock()

	return internal.AverageByGenre(b.internal), nil
}

func (b *SliceStore) TopAuthors(ctx context.Context, n int) ([]bookstore.AuthorCount, error) {
	b.Lock()
	defer b.Unlock()

	return internal.TopAuthors(b.internal, n), nil
}

func (b *SliceStore) CountByDecade(ctx context.Context) ([]bookstore.DecadeCount, error) {
	b.Lock()
	defer b.Unlock()

	return internal.Decades(b.internal), nil
}

func (b *SliceStore) CreateIndex(ctx context.Context, idx bookstore.Index) (string, error) {
	if err := idx.Validate(); err != nil {
		return "", err
	}

	b.Lock()
	defer b.Unlock()

	before := len(b.indexes)
	b.indexes = internal.AddIndex(b.indexes, idx)
	if len(b.indexes) == before {
		return idx.Name(), nil
	}

	for i, book := range b.internal {
		b.insertEntry(idx, book, b.serials[i])
	}
	return idx.Name(), nil
}

// Explain goes through the same path FindBooks takes.
func (b *SliceStore) Explain(ctx context.Context, filter bookstore.Filter) (bookstore.QueryPlan, error) {
	b.Lock()
	defer b.Unlock()

	books, plan := b.candidates(filter)
	plan.Returned = internal.Count(books, filter)
	return plan, nil
}
