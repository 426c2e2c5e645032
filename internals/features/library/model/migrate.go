package model

// AllModels mengurutkan model untuk AutoMigrate: tabel induk dulu,
// baru tabel relasi dan transaksi.
func AllModels() []any {
	return []any{
		&AuthorModel{},
		&GenreModel{},
		&BookModel{},
		&BookAuthorModel{},
		&BookGenreModel{},
		&MemberModel{},
		&CopyModel{},
		&TransactionModel{},
	}
}
