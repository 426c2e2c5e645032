// file: internals/features/library/dto/author_dto.go
package dto

import (
	"strings"

	model "perpustakaan_backend/internals/features/library/model"
)

/* =========================
   REQUEST
   ========================= */

type AuthorCreateRequest struct {
	AuthorName string `json:"author_name" validate:"required,min=1,max=255"`
}

type AuthorUpdateRequest struct {
	AuthorName *string `json:"author_name,omitempty" validate:"omitempty,min=1,max=255"`
}

/* =========================
   NORMALIZER
   ========================= */

func (r *AuthorCreateRequest) Normalize() {
	r.AuthorName = strings.TrimSpace(r.AuthorName)
}

func (r *AuthorUpdateRequest) Normalize() {
	r.AuthorName = trimPtr(r.AuthorName)
}

/* =========================
   MAPPER
   ========================= */

func (r *AuthorCreateRequest) ToModel() *model.AuthorModel {
	return &model.AuthorModel{AuthorName: r.AuthorName}
}

// ToPatch menghasilkan peta kolom→nilai; hanya field yang dikirim yang masuk.
func (r *AuthorUpdateRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.AuthorName != nil {
		patch["author_name"] = *r.AuthorName
	}
	return patch
}
