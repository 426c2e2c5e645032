// file: internals/features/library/service/book_service.go
package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	dto "perpustakaan_backend/internals/features/library/dto"
	model "perpustakaan_backend/internals/features/library/model"
	store "perpustakaan_backend/internals/features/library/store"
)

// BookService memegang dua tanggung jawab yang harus satu transaksi:
// field skalar buku dan himpunan relasi book_authors/book_genres.
// Replace relasi = hapus semua baris lama lalu insert himpunan baru,
// bukan diff/merge; buku tidak boleh terlihat setengah ter-update.
type BookService struct {
	db    *gorm.DB
	books *store.Store[model.BookModel]
}

func NewBookService(db *gorm.DB) *BookService {
	return &BookService{
		db:    db,
		books: store.New[model.BookModel](db, "book_id"),
	}
}

// BookListFilter: filter opsional untuk listing; nol berarti tanpa filter.
type BookListFilter struct {
	Q      string
	ISBN   string
	Year   *int
	Offset int
	Limit  int
}

/* =========================
   QUERY (catalog read-model)
   ========================= */

func (s *BookService) List(ctx context.Context, f BookListFilter) ([]dto.BookWithDetails, error) {
	q := s.db.WithContext(ctx).Model(&model.BookModel{}).Order("book_id ASC")
	if v := strings.TrimSpace(f.Q); v != "" {
		like := "%" + v + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if v := strings.TrimSpace(f.ISBN); v != "" {
		q = q.Where("isbn = ?", v)
	}
	if f.Year != nil {
		q = q.Where("publication_year = ?", *f.Year)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var books []model.BookModel
	if err := q.Find(&books).Error; err != nil {
		return nil, err
	}

	out := make([]dto.BookWithDetails, 0, len(books))
	for _, b := range books {
		detail, err := s.composeDetails(s.db.WithContext(ctx), b)
		if err != nil {
			return nil, err
		}
		out = append(out, detail)
	}
	return out, nil
}

// GetByID mengembalikan (nil, nil) saat buku tidak ada; relasi tidak di-lookup.
func (s *BookService) GetByID(ctx context.Context, id int64) (*dto.BookWithDetails, error) {
	b, err := s.books.FindByID(ctx, id)
	if err != nil || b == nil {
		return nil, err
	}
	detail, err := s.composeDetails(s.db.WithContext(ctx), *b)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

/* =========================
   MUTASI (atomik)
   ========================= */

func (s *BookService) Create(ctx context.Context, req *dto.BookCreateRequest) (*dto.BookWithDetails, error) {
	var detail dto.BookWithDetails
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := req.ToModel()
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if len(req.AuthorIDs) > 0 {
			if err := s.setBookAuthors(tx, m.BookID, req.AuthorIDs); err != nil {
				return err
			}
		}
		if len(req.GenreIDs) > 0 {
			if err := s.setBookGenres(tx, m.BookID, req.GenreIDs); err != nil {
				return err
			}
		}
		d, err := s.composeDetails(tx, *m)
		if err != nil {
			return err
		}
		detail = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update menerapkan patch skalar + replace relasi yang dikirim dalam satu
// transaksi. (nil, nil) saat id tidak ada.
func (s *BookService) Update(ctx context.Context, id int64, req *dto.BookUpdateRequest) (*dto.BookWithDetails, error) {
	var detail *dto.BookWithDetails
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		books := s.books.WithTx(tx)

		cur, err := books.UpdateByID(ctx, id, req.ToPatch())
		if err != nil {
			return err
		}
		if cur == nil {
			return nil // absent; bukan error
		}

		if req.AuthorIDs.Set {
			if err := s.setBookAuthors(tx, id, req.AuthorIDs.Val); err != nil {
				return err
			}
		}
		if req.GenreIDs.Set {
			if err := s.setBookGenres(tx, id, req.GenreIDs.Val); err != nil {
				return err
			}
		}

		d, err := s.composeDetails(tx, *cur)
		if err != nil {
			return err
		}
		detail = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// Delete membersihkan kedua tabel relasi dulu, baru baris buku — satu
// transaksi. true kalau bukunya memang ada.
func (s *BookService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&model.BookAuthorModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", id).Delete(&model.BookGenreModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("book_id = ?", id).Delete(&model.BookModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

/* =========================
   RELASI (association sets)
   ========================= */

func (s *BookService) setBookAuthors(tx *gorm.DB, bookID int64, authorIDs []int64) error {
	if err := tx.Where("book_id = ?", bookID).Delete(&model.BookAuthorModel{}).Error; err != nil {
		return err
	}
	ids := dedupIDs(authorIDs)
	if len(ids) == 0 {
		return nil
	}
	var cnt int64
	if err := tx.Model(&model.AuthorModel{}).Where("author_id IN ?", ids).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt != int64(len(ids)) {
		return &MissingRefError{Field: "author_ids"}
	}
	rows := make([]model.BookAuthorModel, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, model.BookAuthorModel{BookID: bookID, AuthorID: id})
	}
	return tx.Create(&rows).Error
}

func (s *BookService) setBookGenres(tx *gorm.DB, bookID int64, genreIDs []int64) error {
	if err := tx.Where("book_id = ?", bookID).Delete(&model.BookGenreModel{}).Error; err != nil {
		return err
	}
	ids := dedupIDs(genreIDs)
	if len(ids) == 0 {
		return nil
	}
	var cnt int64
	if err := tx.Model(&model.GenreModel{}).Where("genre_id IN ?", ids).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt != int64(len(ids)) {
		return &MissingRefError{Field: "genre_ids"}
	}
	rows := make([]model.BookGenreModel, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, model.BookGenreModel{BookID: bookID, GenreID: id})
	}
	return tx.Create(&rows).Error
}

func (s *BookService) getBookAuthors(tx *gorm.DB, bookID int64) ([]model.AuthorModel, error) {
	out := make([]model.AuthorModel, 0)
	err := tx.Model(&model.AuthorModel{}).
		Joins("INNER JOIN book_authors ba ON ba.author_id = authors.author_id").
		Where("ba.book_id = ?", bookID).
		Order("authors.author_id ASC").
		Find(&out).Error
	return out, err
}

func (s *BookService) getBookGenres(tx *gorm.DB, bookID int64) ([]model.GenreModel, error) {
	out := make([]model.GenreModel, 0)
	err := tx.Model(&model.GenreModel{}).
		Joins("INNER JOIN book_genres bg ON bg.genre_id = genres.genre_id").
		Where("bg.book_id = ?", bookID).
		Order("genres.genre_id ASC").
		Find(&out).Error
	return out, err
}

func (s *BookService) composeDetails(tx *gorm.DB, b model.BookModel) (dto.BookWithDetails, error) {
	authors, err := s.getBookAuthors(tx, b.BookID)
	if err != nil {
		return dto.BookWithDetails{}, err
	}
	genres, err := s.getBookGenres(tx, b.BookID)
	if err != nil {
		return dto.BookWithDetails{}, err
	}
	return dto.BookWithDetails{BookModel: b, Authors: authors, Genres: genres}, nil
}

func dedupIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
