// file: internals/features/library/dto/book_dto.go
package dto

import (
	"errors"
	"strings"

	model "perpustakaan_backend/internals/features/library/model"
	helper "perpustakaan_backend/internals/helpers"
)

/* =========================
   REQUEST
   ========================= */

type BookCreateRequest struct {
	Title           string  `json:"title" validate:"required,min=1,max=255"`
	ISBN            string  `json:"isbn" validate:"required,min=1,max=32"`
	PublicationYear *int    `json:"publication_year,omitempty"`
	Description     *string `json:"description,omitempty"`

	AuthorIDs []int64 `json:"author_ids,omitempty" validate:"omitempty,dive,gt=0"`
	GenreIDs  []int64 `json:"genre_ids,omitempty" validate:"omitempty,dive,gt=0"`
}

// Field patch memakai Opt supaya "tidak dikirim", "null", dan "nilai" bisa
// dibedakan: author_ids/genre_ids hanya di-replace kalau dikirim; description
// null berarti mengosongkan kolom.
type BookUpdateRequest struct {
	Title           *string            `json:"title,omitempty"`
	ISBN            *string            `json:"isbn,omitempty"`
	PublicationYear helper.Opt[int]    `json:"publication_year"`
	Description     helper.Opt[string] `json:"description"`

	AuthorIDs helper.Opt[[]int64] `json:"author_ids"`
	GenreIDs  helper.Opt[[]int64] `json:"genre_ids"`
}

/* =========================
   NORMALIZER + VALIDASI PATCH
   ========================= */

func (r *BookCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.ISBN = strings.TrimSpace(r.ISBN)
	r.Description = trimPtr(r.Description)
}

func (r *BookUpdateRequest) Normalize() {
	r.Title = trimPtr(r.Title)
	r.ISBN = trimPtr(r.ISBN)
	if r.Description.Valid {
		r.Description.Val = strings.TrimSpace(r.Description.Val)
	}
}

// Validate memeriksa field patch yang dikirim (validator.v10 tidak mengenal Opt).
func (r *BookUpdateRequest) Validate() error {
	if r.Title != nil && (len(*r.Title) < 1 || len(*r.Title) > 255) {
		return errors.New("title: min=1,max=255")
	}
	if r.ISBN != nil && (len(*r.ISBN) < 1 || len(*r.ISBN) > 32) {
		return errors.New("isbn: min=1,max=32")
	}
	if r.AuthorIDs.Valid {
		for _, id := range r.AuthorIDs.Val {
			if id < 1 {
				return errors.New("author_ids: gt=0")
			}
		}
	}
	if r.GenreIDs.Valid {
		for _, id := range r.GenreIDs.Val {
			if id < 1 {
				return errors.New("genre_ids: gt=0")
			}
		}
	}
	return nil
}

/* =========================
   MAPPER
   ========================= */

func (r *BookCreateRequest) ToModel() *model.BookModel {
	return &model.BookModel{
		Title:           r.Title,
		ISBN:            r.ISBN,
		PublicationYear: r.PublicationYear,
		Description:     r.Description,
	}
}

func (r *BookUpdateRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Title != nil {
		patch["title"] = *r.Title
	}
	if r.ISBN != nil {
		patch["isbn"] = *r.ISBN
	}
	if r.PublicationYear.Set {
		patch["publication_year"] = r.PublicationYear.Ptr()
	}
	if r.Description.Set {
		patch["description"] = r.Description.Ptr()
	}
	return patch
}

/* =========================
   RESPONSE
   ========================= */

// BookWithDetails adalah proyeksi lengkap buku: field dasar + daftar
// author/genre terurut id.
type BookWithDetails struct {
	model.BookModel
	Authors []model.AuthorModel `json:"authors"`
	Genres  []model.GenreModel  `json:"genres"`
}
