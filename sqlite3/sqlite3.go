package sqlite3

import (
	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/internal/sqlbooks"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var _ bookstore.Store = (*SQLite3Backend)(nil)

type SQLite3Backend struct {
	sqlbooks.Backend
	DatabaseURL string
	TableName   string
}

func (b *SQLite3Backend) Init() error {
	if b.TableName == "" {
		b.TableName = bookstore.DefaultCollection
	}

	db, err := sqlx.Connect("sqlite3", b.DatabaseURL)
	if err != nil {
		return err
	}
	// sqlite doesn't like concurrent writers
	db.SetMaxOpenConns(1)

	b.Backend, err = sqlbooks.Open(db, b.TableName, sqlbooks.SQLite)
	if err != nil {
		db.Close()
		return err
	}
	return nil
}
