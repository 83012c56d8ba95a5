package bookstore

// Book is a single record of the collection.
type Book struct {
	Title         string  `json:"title" bson:"title" db:"title"`
	Author        string  `json:"author" bson:"author" db:"author"`
	Genre         string  `json:"genre" bson:"genre" db:"genre"`
	PublishedYear int     `json:"published_year" bson:"published_year" db:"published_year"`
	Price         float64 `json:"price" bson:"price" db:"price"`
	InStock       bool    `json:"in_stock" bson:"in_stock" db:"in_stock"`
}

// Field names as they are stored.
const (
	FieldTitle         = "title"
	FieldAuthor        = "author"
	FieldGenre         = "genre"
	FieldPublishedYear = "published_year"
	FieldPrice         = "price"
	FieldInStock       = "in_stock"
)

// AllFields lists every field of a Book in declaration order.
var AllFields = []string{
	FieldTitle,
	FieldAuthor,
	FieldGenre,
	FieldPublishedYear,
	FieldPrice,
	FieldInStock,
}

// IsField tells whether name is one of the stored fields.
func IsField(name string) bool {
	for _, f := range AllFields {
		if f == name {
			return true
		}
	}
	return false
}

// Get returns the value of the named field, or nil if there is no such field.
func (b Book) Get(name string) any {
	switch name {
	case FieldTitle:
		return b.Title
	case FieldAuthor:
		return b.Author
	case FieldGenre:
		return b.Genre
	case FieldPublishedYear:
		return b.PublishedYear
	case FieldPrice:
		return b.Price
	case FieldInStock:
		return b.InStock
	}
	return nil
}

// Fields renders the book restricted to the given fields, which is what a
// projection returns. Unknown names are ignored, no names means all fields.
func (b Book) Fields(names ...string) map[string]any {
	if len(names) == 0 {
		names = AllFields
	}
	m := make(map[string]any, len(names))
	for _, name := range names {
		if v := b.Get(name); v != nil {
			m[name] = v
		}
	}
	return m
}

// Project copies only the given fields of b into a new Book, leaving the others zeroed.
func (b Book) Project(names ...string) Book {
	if len(names) == 0 {
		return b
	}
	var p Book
	for _, name := range names {
		switch name {
		case FieldTitle:
			p.Title = b.Title
		case FieldAuthor:
			p.Author = b.Author
		case FieldGenre:
			p.Genre = b.Genre
		case FieldPublishedYear:
			p.PublishedYear = b.PublishedYear
		case FieldPrice:
			p.Price = b.Price
		case FieldInStock:
			p.InStock = b.InStock
		}
	}
	return p
}
