package postgresql

import (
	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/internal/sqlbooks"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var _ bookstore.Store = (*PostgresBackend)(nil)

type PostgresBackend struct {
	sqlbooks.Backend
	DatabaseURL string
	TableName   string
}

func (b *PostgresBackend) Init() error {
	if b.TableName == "" {
		b.TableName = bookstore.DefaultCollection
	}

	db, err := sqlx.Connect("postgres", b.DatabaseURL)
	if err != nil {
		return err
	}

	b.Backend, err = sqlbooks.Open(db, b.TableName, sqlbooks.Postgres)
	if err != nil {
		db.Close()
		return err
	}
	return nil
}
