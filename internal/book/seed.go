package book

import "github.com/google/uuid"

// SeedData returns the four books the collection starts with.
func SeedData() []Book {
	description := "Description of book_1"
	return []Book{
		{ID: uuid.New(), Title: "Title of book_1", Author: "Author of book_1", Description: &description, Rating: 55},
		{ID: uuid.New(), Title: "Title of book_2", Author: "Author of book_2", Rating: 85},
		{ID: uuid.New(), Title: "Title of book_3", Author: "Author of book_3", Rating: 95},
		{ID: uuid.New(), Title: "Title of book_4", Author: "Author of book_4", Rating: 49},
	}
}
