package mysql

import (
	"errors"

	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/internal/sqlbooks"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

var _ bookstore.Store = (*MySQLBackend)(nil)

// errDupKeyName is what CREATE INDEX fails with when the index is already there.
const errDupKeyName = 1061

var dialect = func() sqlbooks.Dialect {
	d := sqlbooks.MySQL
	d.IndexExists = func(err error) bool {
		var me *mysqldriver.MySQLError
		return errors.As(err, &me) && me.Number == errDupKeyName
	}
	return d
}()

type MySQLBackend struct {
	sqlbooks.Backend
	DatabaseURL string
	TableName   string
}

func (b *MySQLBackend) Init() error {
	if b.TableName == "" {
		b.TableName = bookstore.DefaultCollection
	}

	cfg, err := mysqldriver.ParseDSN(b.DatabaseURL)
	if err != nil {
		return err
	}
	// report matched rows instead of changed rows, an update that sets the
	// same price again still counts
	cfg.ClientFoundRows = true

	db, err := sqlx.Connect("mysql", cfg.FormatDSN())
	if err != nil {
		return err
	}

	b.Backend, err = sqlbooks.Open(db, b.TableName, dialect)
	if err != nil {
		db.Close()
		return err
	}
	return nil
}
