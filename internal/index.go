package internal

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/fiatjaf/bookstore"
)

// IndexKey encodes the values of the indexed fields of book so that comparing keys
// byte by byte orders them like the values, key after key.
func IndexKey(idx bookstore.Index, book bookstore.Book) []byte {
	key := make([]byte, 0, 64)
	for _, field := range idx.Keys {
		key = appendValue(key, book.Get(field))
	}
	return key
}

func appendValue(key []byte, value any) []byte {
	switch v := value.(type) {
	case string:
		// 0x00 is escaped so the terminator sorts before any content
		for _, c := range []byte(v) {
			if c == 0 {
				key = append(key, 0, 0xff)
			} else {
				key = append(key, c)
			}
		}
		return append(key, 0, 1)
	case int:
		return binary.BigEndian.AppendUint64(key, uint64(v)^(1<<63))
	case float64:
		bits := math.Float64bits(v)
		if bits&(1<<63) != 0 {
			bits = ^bits
		} else {
			bits |= 1 << 63
		}
		return binary.BigEndian.AppendUint64(key, bits)
	case bool:
		if v {
			return append(key, 1)
		}
		return append(key, 0)
	}
	return key
}

// IndexBounds tells where a scan over the first usable keys of idx starts and the
// prefix all the entries it has to visit share. The scan is over once a key doesn't
// have the prefix anymore.
func IndexBounds(filter bookstore.Filter, idx bookstore.Index, usable int) (prefix, start []byte) {
	prefix = make([]byte, 0, 64)
	for _, field := range idx.Keys[:usable] {
		switch field {
		case bookstore.FieldTitle:
			prefix = appendValue(prefix, filter.Title)
		case bookstore.FieldAuthor:
			prefix = appendValue(prefix, filter.Author)
		case bookstore.FieldGenre:
			prefix = appendValue(prefix, filter.Genre)
		case bookstore.FieldInStock:
			prefix = appendValue(prefix, *filter.InStock)
		case bookstore.FieldPublishedYear:
			// a range always ends the usable keys
			start = appendValue(bytes.Clone(prefix), *filter.PublishedAfter+1)
			return prefix, start
		}
	}
	return prefix, prefix
}

// CollectionScanPlan describes a find that read every one of the docs stored.
func CollectionScanPlan(docs int) bookstore.QueryPlan {
	return bookstore.QueryPlan{
		Stage:        bookstore.StageCollectionScan,
		DocsExamined: int64(docs),
		Details:      []string{bookstore.StageCollectionScan},
	}
}

// IndexScanPlan describes a find that visited keys entries of idx and fetched docs books.
func IndexScanPlan(idx bookstore.Index, keys, docs int) bookstore.QueryPlan {
	return bookstore.QueryPlan{
		Stage:        bookstore.StageIndexScan,
		Index:        idx.Name(),
		KeysExamined: int64(keys),
		DocsExamined: int64(docs),
		Details:      []string{"FETCH", bookstore.StageIndexScan + " " + idx.Name()},
	}
}

// Count tells how many of the candidates actually match filter.
func Count(candidates []bookstore.Book, filter bookstore.Filter) int64 {
	var n int64
	for _, b := range candidates {
		if filter.Matches(b) {
			n++
		}
	}
	return n
}
