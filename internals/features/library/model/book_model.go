package model

type BookModel struct {
	BookID          int64   `json:"book_id" gorm:"column:book_id;primaryKey;autoIncrement"`
	Title           string  `json:"title" gorm:"column:title;type:varchar(255);not null"`
	ISBN            string  `json:"isbn" gorm:"column:isbn;type:varchar(32);not null;index:idx_books_isbn"`
	PublicationYear *int    `json:"publication_year" gorm:"column:publication_year"`
	Description     *string `json:"description" gorm:"column:description;type:text"`
}

func (BookModel) TableName() string { return "books" }

// Tabel relasi many-to-many; tanpa atribut tambahan di join-nya.

type BookAuthorModel struct {
	BookID   int64 `json:"book_id" gorm:"column:book_id;primaryKey"`
	AuthorID int64 `json:"author_id" gorm:"column:author_id;primaryKey"`
}

func (BookAuthorModel) TableName() string { return "book_authors" }

type BookGenreModel struct {
	BookID  int64 `json:"book_id" gorm:"column:book_id;primaryKey"`
	GenreID int64 `json:"genre_id" gorm:"column:genre_id;primaryKey"`
}

func (BookGenreModel) TableName() string { return "book_genres" }
