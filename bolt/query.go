package bolt

import (
	"context"

	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/internal"
	bolt "go.etcd.io/bbolt"
)

// finds go through an index when they can, aggregations always scan the whole bucket.

func (b *BoltBackend) FindBooks(ctx context.Context, filter bookstore.Filter, opts bookstore.FindOptions) (results []bookstore.Book, err error) {
	err = b.db.View(func(txn *bolt.Tx) error {
		books, _, err := candidates(txn, filter)
		if err != nil {
			return err
		}
		results, err = internal.Find(books, filter, opts)
		return err
	})
	return results, err
}

func (b *BoltBackend) AveragePriceByGenre(ctx context.Context) (results []bookstore.GenreAverage, err error) {
	err = b.db.View(func(txn *bolt.Tx) error {
		books, err := loadBooks(txn)
		results = internal.AverageByGenre(books)
		return err
	})
	return results, err
}

func (b *BoltBackend) TopAuthors(ctx context.Context, n int) (results []bookstore.AuthorCount, err error) {
	err = b.db.View(func(txn *bolt.Tx) error {
		books, err := loadBooks(txn)
		results = internal.TopAuthors(books, n)
		return err
	})
	return results, err
}

func (b *BoltBackend) CountByDecade(ctx context.Context) (results []bookstore.DecadeCount, err error) {
	err = b.db.View(func(txn *bolt.Tx) error {
		books, err := loadBooks(txn)
		results = internal.Decades(books)
		return err
	})
	return results, err
}

func (b *BoltBackend) CreateIndex(ctx context.Context, idx bookstore.Index) (string, error) {
	if err := idx.Validate(); err != nil {
		return "", err
	}

	err := b.db.Update(func(txn *bolt.Tx) error {
		meta := txn.Bucket(bucketIndexes)
		if meta.Get([]byte(idx.Name())) != nil {
			return nil
		}
		raw, err := json.Marshal(idx)
		if err != nil {
			return err
		}
		if err := meta.Put([]byte(idx.Name()), raw); err != nil {
			return err
		}

		entries, err := txn.CreateBucketIfNotExists(indexBucket(idx))
		if err != nil {
			return err
		}
		return txn.Bucket(bucketBooks).ForEach(func(k, v []byte) error {
			var book bookstore.Book
			if err := json.Unmarshal(v, &book); err != nil {
				return err
			}
			return entries.Put(append(internal.IndexKey(idx, book), k...), []byte{})
		})
	})
	return idx.Name(), err
}

// Explain goes through the same path FindBooks takes.
func (b *BoltBackend) Explain(ctx context.Context, filter bookstore.Filter) (plan bookstore.QueryPlan, err error) {
	err = b.db.View(func(txn *bolt.Tx) error {
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
