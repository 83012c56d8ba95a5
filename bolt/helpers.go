package bolt

import (
	"bytes"
	"encoding/binary"

	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/internal"
	bolt "go.etcd.io/bbolt"
	"golang.org/x/exp/slices"
)

func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

func loadBooks(txn *bolt.Tx) ([]bookstore.Book, error) {
	bucket := txn.Bucket(bucketBooks)
	books := make([]bookstore.Book, 0, 64)
	err := bucket.ForEach(func(k, v []byte) error {
		var book bookstore.Book
		if err := json.Unmarshal(v, &book); err != nil {
			return err
		}
		books = append(books, book)
		return nil
	})
	return books, err
}

func loadIndexes(txn *bolt.Tx) ([]bookstore.Index, error) {
	indexes := make([]bookstore.Index, 0, 2)
	err := txn.Bucket(bucketIndexes).ForEach(func(k, v []byte) error {
		var idx bookstore.Index
		if err := json.Unmarshal(v, &idx); err != nil {
			return err
		}
		indexes = append(indexes, idx)
		return nil
	})
	return indexes, err
}

// firstByTitle returns the key and the decoded book of the oldest record with title.
func firstByTitle(txn *bolt.Tx, title string) ([]byte, *bookstore.Book, error) {
	c := txn.Bucket(bucketBooks).Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		var book bookstore.Book
		if err := json.Unmarshal(v, &book); err != nil {
			return nil, nil, err
		}
		if book.Title == title {
			return bytes.Clone(k), &book, nil
		}
	}
	return nil, nil, nil
}

func indexBucket(idx bookstore.Index) []byte {
	return []byte("index:" + idx.Name())
}

// entries are the index key followed by the book's own key, with no value.
func putEntries(txn *bolt.Tx, indexes []bookstore.Index, key []byte, book bookstore.Book) error {
	for _, idx := range indexes {
		entry := append(internal.IndexKey(idx, book), key...)
		if err := txn.Bucket(indexBucket(idx)).Put(entry, []byte{}); err != nil {
			return err
		}
	}
	return nil
}

func deleteEntries(txn *bolt.Tx, indexes []bookstore.Index, key []byte, book bookstore.Book) error {
	for _, idx := range indexes {
		entry := append(internal.IndexKey(idx, book), key...)
		if err := txn.Bucket(indexBucket(idx)).Delete(entry); err != nil {
			return err
		}
	}
	return nil
}

// candidates reads the books a find for filter has to look at, in insertion order,
// through the best index when one can be used, and describes what it read.
func candidates(txn *bolt.Tx, filter bookstore.Filter) ([]bookstore.Book, bookstore.QueryPlan, error) {
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
	refs := make([][]byte, 0, 16)
	c := txn.Bucket(indexBucket(idx)).Cursor()
	for k, _ := c.Seek(start); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		refs = append(refs, bytes.Clone(k[len(k)-8:]))
	}
	slices.SortFunc(refs, bytes.Compare)

	bucket := txn.Bucket(bucketBooks)
	books := make([]bookstore.Book, 0, len(refs))
	for _, ref := range refs {
		raw := bucket.Get(ref)
		if raw == nil {
			continue
		}
		var book bookstore.Book
		if err := json.Unmarshal(raw, &book); err != nil {
			return nil, bookstore.QueryPlan{}, err
		}
		books = append(books, book)
	}
	return books, internal.IndexScanPlan(idx, len(refs), len(books)), nil
}
