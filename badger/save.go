package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/fiatjaf/bookstore"
)

func (b *BadgerBackend) SaveBook(ctx context.Context, book *bookstore.Book) error {
	raw, err := json.Marshal(book)
	if err != nil {
		return err
	}
	key, err := b.Serial()
	if err != nil {
		return err
	}

	return b.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, raw); err != nil {
			return err
		}
		indexes, err := loadIndexes(txn)
		if err != nil {
			return err
		}
		return putEntries(txn, indexes, key, *book)
	})
}

func (b *BadgerBackend) UpdatePrice(ctx context.Context, title string, price float64) (res bookstore.UpdateResult, err error) {
	err = b.Update(func(txn *badger.Txn) error {
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
		if err := txn.Set(key, raw); err != nil {
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

func (b *BadgerBackend) DeleteBook(ctx context.Context, title string) (res bookstore.DeleteResult, err error) {
	err = b.Update(func(txn *badger.Txn) error {
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

		if err := txn.Delete(key); err != nil {
			return err
		}
		res.Deleted = 1
		return nil
	})
	return res, err
}
