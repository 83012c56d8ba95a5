package internal

import "github.com/fiatjaf/bookstore"

// SampleBooks is the catalog the demo sequence expects to find.
func SampleBooks() []bookstore.Book {
	return []bookstore.Book{
		{Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Fiction", PublishedYear: 1960, Price: 12.99, InStock: true},
		{Title: "Nineteen Eighty-Four", Author: "George Orwell", Genre: "Dystopian", PublishedYear: 1949, Price: 10.99, InStock: true},
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Fiction", PublishedYear: 1925, Price: 9.99, InStock: true},
		{Title: "Brave New World", Author: "Aldous Huxley", Genre: "Dystopian", PublishedYear: 1932, Price: 11.50, InStock: false},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", PublishedYear: 1937, Price: 14.99, InStock: true},
		{Title: "The Catcher in the Rye", Author: "J.D. Salinger", Genre: "Fiction", PublishedYear: 1951, Price: 8.99, InStock: true},
		{Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "Romance", PublishedYear: 1813, Price: 7.99, InStock: true},
		{Title: "The Lord of the Rings", Author: "J.R.R. Tolkien", Genre: "Fantasy", PublishedYear: 1954, Price: 19.99, InStock: true},
		{Title: "Animal Farm", Author: "George Orwell", Genre: "Political Satire", PublishedYear: 1945, Price: 8.50, InStock: false},
		{Title: "The Alchemist", Author: "Paulo Coelho", Genre: "Fiction", PublishedYear: 1988, Price: 10.99, InStock: true},
		{Title: "Moby Dick", Author: "Herman Melville", Genre: "Adventure", PublishedYear: 1851, Price: 12.50, InStock: false},
		{Title: "Wuthering Heights", Author: "Emily Brontë", Genre: "Gothic Fiction", PublishedYear: 1847, Price: 9.99, InStock: true},
		{Title: "Homage to Catalonia", Author: "George Orwell", Genre: "Memoir", PublishedYear: 1938, Price: 11.25, InStock: false},
		{Title: "The Martian", Author: "Andy Weir", Genre: "Science Fiction", PublishedYear: 2011, Price: 15.99, InStock: true},
		{Title: "Hippie", Author: "Paulo Coelho", Genre: "Fiction", PublishedYear: 2018, Price: 16.00, InStock: true},
	}
}
