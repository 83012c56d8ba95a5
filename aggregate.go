package bookstore

// UpdateResult reports how many records an update found and how many it wrote.
type UpdateResult struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}

type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}

type GenreAverage struct {
	Genre    string  `json:"genre" bson:"_id" db:"genre"`
	AvgPrice float64 `json:"avg_price" bson:"avgPrice" db:"avg_price"`
}

type AuthorCount struct {
	Author string `json:"author" bson:"_id" db:"author"`
	Count  int64  `json:"count" bson:"count" db:"count"`
}

type DecadeCount struct {
	Decade int   `json:"decade" bson:"_id" db:"decade"`
	Count  int64 `json:"count" bson:"count" db:"count"`
}

// Decade floors a year to its decade, so 1984 becomes 1980 and -5 becomes -10.
func Decade(year int) int {
	d := year / 10
	if year%10 < 0 {
		d--
	}
	return d * 10
}
