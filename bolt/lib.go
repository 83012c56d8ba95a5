package bolt

import (
	"github.com/fiatjaf/bookstore"
	jsoniter "github.com/json-iterator/go"
	bolt "go.etcd.io/bbolt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	bucketBooks   = []byte("books")
	bucketIndexes = []byte("indexes")
)

var _ bookstore.Store = (*BoltBackend)(nil)

// BoltBackend keeps each book as a JSON document keyed by insertion sequence.
type BoltBackend struct {
	Path string

	db *bolt.DB
}

func (b *BoltBackend) Init() error {
	db, err := bolt.Open(b.Path, 0644, nil)
	if err != nil {
		return err
	}
	b.db = db

	return b.db.Update(func(txn *bolt.Tx) error {
		if _, err := txn.CreateBucketIfNotExists(bucketBooks); err != nil {
			return err
		}
		if _, err := txn.CreateBucketIfNotExists(bucketIndexes); err != nil {
			return err
		}
		return nil
	})
}

func (b *BoltBackend) Close() {
	b.db.Close()
}
