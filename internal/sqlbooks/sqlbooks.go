// Package sqlbooks keeps a book collection in a single SQL table. It is shared by the
// sqlite3, postgresql and mysql backends, which only differ in their Dialect and in
// how they explain queries.
package sqlbooks

import (
	"fmt"
	"regexp"

	"github.com/jmoiron/sqlx"
)

// Dialect holds the bits of SQL that are not portable.
type Dialect struct {
	// CreateTable is a format string taking the table name.
	CreateTable string
	// DecadeExpr floors published_year to its decade.
	DecadeExpr string
	// NoLimit is what goes after LIMIT when only an OFFSET is wanted.
	NoLimit string
	// LimitedWrites means UPDATE and DELETE accept ORDER BY ... LIMIT 1 directly,
	// otherwise the first row is selected with a subquery.
	LimitedWrites bool
	// IndexExists tells whether a CREATE INDEX failure means the index is already there,
	// for engines without CREATE INDEX IF NOT EXISTS.
	IndexExists func(error) bool
}

var SQLite = Dialect{
	CreateTable: `CREATE TABLE IF NOT EXISTS %s (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  author TEXT NOT NULL,
  genre TEXT NOT NULL,
  published_year INTEGER NOT NULL,
  price REAL NOT NULL,
  in_stock BOOLEAN NOT NULL
)`,
	DecadeExpr: "(published_year / 10) * 10",
	NoLimit:    "-1",
}

var Postgres = Dialect{
	CreateTable: `CREATE TABLE IF NOT EXISTS %s (
  id SERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  author TEXT NOT NULL,
  genre TEXT NOT NULL,
  published_year INTEGER NOT NULL,
  price DOUBLE PRECISION NOT NULL,
  in_stock BOOLEAN NOT NULL
)`,
	DecadeExpr: "(published_year / 10) * 10",
	NoLimit:    "ALL",
}

var MySQL = Dialect{
	CreateTable: `CREATE TABLE IF NOT EXISTS %s (
  id INT AUTO_INCREMENT PRIMARY KEY,
  title VARCHAR(255) NOT NULL,
  author VARCHAR(255) NOT NULL,
  genre VARCHAR(255) NOT NULL,
  published_year INT NOT NULL,
  price DOUBLE NOT NULL,
  in_stock BOOLEAN NOT NULL
)`,
	DecadeExpr:    "(published_year DIV 10) * 10",
	NoLimit:       "18446744073709551615",
	LimitedWrites: true,
}

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Backend implements everything a store needs except Init and Explain.
type Backend struct {
	*sqlx.DB
	Table   string
	Dialect Dialect
}

// Open wraps an already connected database and makes sure the table exists.
func Open(db *sqlx.DB, table string, dialect Dialect) (Backend, error) {
	if !tableName.MatchString(table) {
		return Backend{}, fmt.Errorf("invalid table name %q", table)
	}

	b := Backend{DB: db, Table: table, Dialect: dialect}
	if _, err := db.Exec(fmt.Sprintf(dialect.CreateTable, table)); err != nil {
		return Backend{}, fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return b, nil
}

func (b Backend) Close() {
	b.DB.Close()
}
