package constants

type Book struct {
	Slug      string
	Name      string
	MaxNumber int
}

func GetBooks() []Book {
	var books []Book
	books = append(books, Book{Slug: "sahih-bukhari", Name: "Sahih Bukhari", MaxNumber: 7563})
	books = append(books, Book{Slug: "sahih-muslim", Name: "Sahih Muslim", MaxNumber: 7500})
	books = append(books, Book{Slug: "al-tirmidhi", Name: "Al-Tirmidhi", MaxNumber: 3950})

	return books
}
