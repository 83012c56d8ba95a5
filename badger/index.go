package badger

import (
	"bytes"

	"github.com/dgraph-io/badger/v4"
	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/internal"
	"golang.org/x/exp/slices"
)

func entryPrefix(idx bookstore.Index) []byte {
	prefix := make([]byte, 0, 1+len(idx.Name())+1)
	prefix = append(prefix, entryKeyPrefix)
	prefix = append(prefix, idx.Name()...)
	return append(prefix, 0)
}

// entryKey is the index key followed by the book's own key, entries have no value.
func entryKey(idx bookstore.Index, key []byte, book bookstore.Book) []byte {
	return append(append(entryPrefix(idx), internal.IndexKey(idx, book)...), key...)
}

func putEntries(txn *badger.Txn, indexes []bookstore.Index, key []byte, book bookstore.Book) error {
	for _, idx := range indexes {
		if err := txn.Set(entryKey(idx, key, book), nil); err != nil {
			return err
		}
	}
	return nil
}

func deleteEntries(txn *badger.Txn, indexes []bookstore.Index, key []byte, book bookstore.Book) error {
	for _, idx := range indexes {
		if err := txn.Delete(entryKey(idx, key, book)); err != nil {
			return err
		}
	}
	return nil
}

// candidates reads the books a find for filter has to look at, in insertion order,
// through the best index when one can be used, and describes what it read.
func candidates(txn *badger.Txn, filter bookstore.Filter) ([]bookstore.Book, bookstore.QueryPlan, error) {
	indexes, err := loadIndexes(txn)
	if err != nil {
		return nil, bookstore.QueryPlan{}, err
	}

	idx, usable := internal.ChooseIndex(filter, indexes)
	if usable == 0 {
		books, err := loadBooks(txn)
		return books, internal.CollectionScanPlan(len(books)), err
	}

	prefix, start := internal.IndexBounds(filter, idx, usable)
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = append(entryPrefix(idx), prefix...)
	it := txn.NewIterator(opts)
	refs := make([][]byte, 0, 16)
	for it.Seek(append(entryPrefix(idx), start...)); it.ValidForPrefix(opts.Prefix); it.Next() {
		k := it.Item().Key()
		refs = append(refs, bytes.Clone(k[len(k)-9:]))
	}
	it.Close()
	slices.SortFunc(refs, bytes.Compare)

	books := make([]bookstore.Book, 0, len(refs))
	for _, ref := range refs {
		item, err := txn.Get(ref)
		if err == badger.ErrKeyNotFound {
			continue
		} else if err != nil {
			return nil, bookstore.QueryPlan{}, err
		}
		var book bookstore.Book
		if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &book) }); err != nil {
			return nil, bookstore.QueryPlan{}, err
		}
		books = append(books, book)
	}
	return books, internal.IndexScanPlan(idx, len(refs), len(books)), nil
}
