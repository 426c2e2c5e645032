// file: internals/features/library/dto/copy_dto.go
package dto

import (
	"errors"
	"strings"

	model "perpustakaan_backend/internals/features/library/model"
)

type CopyCreateRequest struct {
	CopyIdentifier string `json:"copy_identifier" validate:"required,min=1,max=64"`
	BookID         int64  `json:"book_id" validate:"required,gt=0"`
	Status         string `json:"status" validate:"required,min=1,max=32"`
}

type CopyUpdateRequest struct {
	CopyIdentifier *string `json:"copy_identifier,omitempty"`
	BookID         *int64  `json:"book_id,omitempty"`
	Status         *string `json:"status,omitempty"`
}

func (r *CopyCreateRequest) Normalize() {
	r.CopyIdentifier = strings.TrimSpace(r.CopyIdentifier)
	r.Status = strings.TrimSpace(r.Status)
}

func (r *CopyUpdateRequest) Normalize() {
	r.CopyIdentifier = trimPtr(r.CopyIdentifier)
	r.Status = trimPtr(r.Status)
}

func (r *CopyUpdateRequest) Validate() error {
	if r.CopyIdentifier != nil && len(*r.CopyIdentifier) > 64 {
		return errors.New("copy_identifier: max=64")
	}
	if r.BookID != nil && *r.BookID < 1 {
		return errors.New("book_id: gt=0")
	}
	if r.Status != nil && len(*r.Status) > 32 {
		return errors.New("status: max=32")
	}
	return nil
}

func (r *CopyCreateRequest) ToModel() *model.CopyModel {
	return &model.CopyModel{
		CopyIdentifier: r.CopyIdentifier,
		BookID:         r.BookID,
		Status:         r.Status,
	}
}

func (r *CopyUpdateRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.CopyIdentifier != nil {
		patch["copy_identifier"] = *r.CopyIdentifier
	}
	if r.BookID != nil {
		patch["book_id"] = *r.BookID
	}
	if r.Status != nil {
		patch["status"] = *r.Status
	}
	return patch
}
