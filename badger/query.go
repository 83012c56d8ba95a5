package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/internal"
)

func (b *BadgerBackend) FindBooks(ctx context.Context, filter bookstore.Filter, opts bookstore.FindOptions) (results []bookstore.Book, err error) {
	err = b.View(func(txn *badger.Txn) error {
		books, _, err := candidates(txn, filter)
		if err != nil {
			return err
		}
		results, err = internal.Find(books, filter, opts)
		return err
	})
	return results, err
}

func (b *BadgerBackend) AveragePriceByGenre(ctx context.Context) (results []bookstore.GenreAverage, err error) {
	err = b.View(func(txn *badger.Txn) error {
		books, err := loadBooks(txn)
		results = internal.AverageByGenre(books)
		return err
	})
	return results, err
}

func (b *BadgerBackend) TopAuthors(ctx context.Context, n int) (results []bookstore.AuthorCount, err error) {
	err = b.View(func(txn *badger.Txn) error {
		books, err := loadBooks(txn)
		results = internal.TopAuthors(books, n)
		return err
	})
	return results, err
}

func (b *BadgerBackend) CountByDecade(ctx context.Context) (results []bookstore.DecadeCount, err error) {
	err = b.View(func(txn *badger.Txn) error {
		books, err := loadBooks(txn)
		results = internal.Decades(books)
		return err
	})
	return results, err
}

func (b *BadgerBackend) CreateIndex(ctx context.Context, idx bookstore.Index) (string, error) {
	if err := idx.Validate(); err != nil {
		return "", err
	}

	raw, err := json.Marshal(idx)
	if err != nil {
		return "", err
	}
	key := append([]byte{indexPrefix}, idx.Name()...)

	err = b.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return nil
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		if err := txn.Set(key, raw); err != nil {
			return err
		}

		return iterate(txn, bookPrefix, func(k, val []byte) (bool, error) {
			var book bookstore.Book
			if err := json.Unmarshal(val, &book); err != nil {
				return true, err
			}
			return false, txn.Set(entryKey(idx, k, book), nil)
		})
	})
	return idx.Name(), err
}

// Explain goes through the same path FindBooks takes.
func (b *BadgerBackend) Explain(ctx context.Context, filter bookstore.Filter) (plan bookstore.QueryPlan, err error) {
	err = b.View(func(txn *badger.Txn) error {
		books, p, err := candidates(txn, filter)
		if err != nil {
			return err
		}
		plan = p
		plan.Returned = internal.Count(books, filter)
		return nil
	})
	return plan, err
}
