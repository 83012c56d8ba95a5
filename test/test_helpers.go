package test

import (
	"slices"

	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/badger"
	"github.com/fiatjaf/bookstore/bolt"
	"github.com/fiatjaf/bookstore/mysql"
	"github.com/fiatjaf/bookstore/slicestore"
)

func titles(books []bookstore.Book) []string {
	list := make([]string, len(books))
	for i, b := range books {
		list[i] = b.Title
	}
	return list
}

func expected(books []bookstore.Book, filter bookstore.Filter) []string {
	list := make([]string, 0, len(books))
	for _, b := range books {
		if filter.Matches(b) {
			list = append(list, b.Title)
		}
	}
	return list
}

func prices(books []bookstore.Book) []float64 {
	list := make([]float64, len(books))
	for i, b := range books {
		list[i] = b.Price
	}
	return list
}

func isSortedDesc(list []float64) bool {
	return slices.IsSortedFunc(list, func(a, b float64) int {
		if a > b {
			return -1
		} else if a < b {
			return 1
		}
		return 0
	})
}

// mysql is free to pick a full scan on a table this small
func plansWithIndexes(db bookstore.Store) bool {
	_, isMySQL := db.(*mysql.MySQLBackend)
	return !isMySQL
}

// the embedded stores report exactly which index entries and books a find read
func readsOwnIndexes(db bookstore.Store) bool {
	switch db.(type) {
	case *slicestore.SliceStore, *bolt.BoltBackend, *badger.BadgerBackend:
		return true
	}
	return false
}
