package bookstore

import "errors"

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidPage  = errors.New("page number and page size must be positive")
	ErrReadOnly     = errors.New("store is read-only")
)
