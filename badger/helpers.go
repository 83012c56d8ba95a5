package badger

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/fiatjaf/bookstore"
)

// iterate calls fn with each key and value under prefix, in key order, stopping at the
// first error or when fn returns stop.
func iterate(txn *badger.Txn, prefix byte, fn func(key, val []byte) (stop bool, err error)) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte{prefix}
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
		item := it.Item()
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		stop, err := fn(item.KeyCopy(nil), val)
		if err != nil || stop {
			return err
		}
	}
	return nil
}

func loadBooks(txn *badger.Txn) ([]bookstore.Book, error) {
	books := make([]bookstore.Book, 0, 64)
	err := iterate(txn, bookPrefix, func(_, val []byte) (bool, error) {
		var book bookstore.Book
		if err := json.Unmarshal(val, &book); err != nil {
			return true, err
		}
		books = append(books, book)
		return false, nil
	})
	return books, err
}

func loadIndexes(txn *badger.Txn) ([]bookstore.Index, error) {
	indexes := make([]bookstore.Index, 0, 2)
	err := iterate(txn, indexPrefix, func(_, val []byte) (bool, error) {
		var idx bookstore.Index
		if err := json.Unmarshal(val, &idx); err != nil {
			return true, err
		}
		indexes = append(indexes, idx)
		return false, nil
	})
	return indexes, err
}

func firstByTitle(txn *badger.Txn, title string) (key []byte, found *bookstore.Book, err error) {
	err = iterate(txn, bookPrefix, func(k, val []byte) (bool, error) {
		var book bookstore.Book
		if err := json.Unmarshal(val, &book); err != nil {
			return true, err
		}
		if book.Title == title {
			key = k
			found = &book
			return true, nil
		}
		return false, nil
	})
	return key, found, err
}
