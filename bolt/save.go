package bolt

import (
	"context"

	"github.com/fiatjaf/bookstore"
	bolt "go.etcd.io/bbolt"
)

func (b *BoltBackend) SaveBook(ctx context.Context, book *bookstore.Book) error {
	return b.db.Update(func(txn *bolt.Tx) error {
		bucket := txn.Bucket(bucketBooks)
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		raw, err := json.Marshal(book)
		if err != nil {
			return err
		}
		key := seqKey(seq)
		if err := bucket.Put(key, raw); err != nil {
			return err
		}

		indexes, err := loadIndexes(txn)
		if err != nil {
			return err
		}
		return putEntries(txn, indexes, key, *book)
	})
}

func (b *BoltBackend) UpdatePrice(ctx context.Context, title string, price float64) (res bookstore.UpdateResult, err error) {
	err = b.db.Update(func(txn *bolt.Tx) error {
		key, book, err := firstByTitle(txn, title)
		if err != nil || book == nil {
			return err
		}
		indexes, err := loadIndexes(txn)
		if err != nil {
			return err
		}
		if err := deleteEntries(txn, indexes, key, *book); err != nil {
			return err
		}

		book.Price = price
		raw, err := json.Marshal(book)
		if err != nil {
			return err
		}
		if err := txn.Bucket(bucketBooks).Put(key, raw); err != nil {
			return err
		}
		if err := putEntries(txn, indexes, key, *book); err != nil {
			return err
		}
		res = bookstore.UpdateResult{Matched: 1, Modified: 1}
		return nil
	})
	return res, err
}

func (b *BoltBackend) DeleteBook(ctx context.Context, title string) (res bookstore.DeleteResult, err error) {
	err = b.db.Update(func(txn *bolt.Tx) error {
		key, book, err := firstByTitle(txn, title)
		if err != nil || book == nil {
			return err
		}
		indexes, err := loadIndexes(txn)
		if err != nil {
			return err
		}
		if err := deleteEntries(txn, indexes, key, *book); err != nil {
			return err
		}

		if err := txn.Bucket(bucketBooks).Delete(key); err != nil {
			return err
		}
		res.Deleted = 1
		return nil
	})
	return res, err
}
