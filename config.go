package bookstore

const (
	DefaultAddress    = "mongodb://localhost:27017"
	DefaultDatabase   = "plp_bookstore"
	DefaultCollection = "books"
	DefaultPageSize   = 5
)

// Config says where the collection lives and how big a page is.
type Config struct {
	Address    string
	Database   string
	Collection string
	PageSize   int
}

func DefaultConfig() Config {
	return Config{
		Address:    DefaultAddress,
		Database:   DefaultDatabase,
		Collection: DefaultCollection,
		PageSize:   DefaultPageSize,
	}
}

// WithDefaults fills in every empty field.
func (c Config) WithDefaults() Config {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if c.Collection == "" {
		c.Collection = DefaultCollection
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	return c
}
