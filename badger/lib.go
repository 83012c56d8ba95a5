package badger

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"
	"github.com/fiatjaf/bookstore"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	bookPrefix     byte = 0
	indexPrefix    byte = 1
	entryKeyPrefix byte = 2
)

var _ bookstore.Store = (*BadgerBackend)(nil)

// BadgerBackend keeps each book as a JSON document under a sequential key.
type BadgerBackend struct {
	Path string
	// InMemory runs badger without touching the disk, Path is ignored.
	InMemory bool

	*badger.DB
	seq *badger.Sequence
}

func (b *BadgerBackend) Init() error {
	opts := badger.DefaultOptions(b.Path)
	if b.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return err
	}
	b.DB = db
	b.seq, err = db.GetSequence([]byte("books"), 1000)
	if err != nil {
		db.Close()
		b.DB = nil
		return err
	}

	return nil
}

func (b *BadgerBackend) Close() {
	if b.seq != nil {
		b.seq.Release()
	}
	if b.DB != nil {
		b.DB.Close()
	}
}

func (b *BadgerBackend) Serial() ([]byte, error) {
	v, err := b.seq.Next()
	if err != nil {
		return nil, err
	}
	vb := make([]byte, 9)
	vb[0] = bookPrefix
	binary.BigEndian.PutUint64(vb[1:], v)
	return vb, nil
}
