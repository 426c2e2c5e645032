// file: internals/features/library/dto/genre_dto.go
package dto

import (
	"strings"

	model "perpustakaan_backend/internals/features/library/model"
)

type GenreCreateRequest struct {
	GenreName string `json:"genre_name" validate:"required,min=1,max=255"`
}

type GenreUpdateRequest struct {
	GenreName *string `json:"genre_name,omitempty" validate:"omitempty,min=1,max=255"`
}

func (r *GenreCreateRequest) Normalize() {
	r.GenreName = strings.TrimSpace(r.GenreName)
}

func (r *GenreUpdateRequest) Normalize() {
	r.GenreName = trimPtr(r.GenreName)
}

func (r *GenreCreateRequest) ToModel() *model.GenreModel {
	return &model.GenreModel{GenreName: r.GenreName}
}

func (r *GenreUpdateRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.GenreName != nil {
		patch["genre_name"] = *r.GenreName
	}
	return patch
}
