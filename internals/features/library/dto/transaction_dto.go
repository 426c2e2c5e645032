// file: internals/features/library/dto/transaction_dto.go
package dto

import (
	"errors"
	"time"

	model "perpustakaan_backend/internals/features/library/model"
	helper "perpustakaan_backend/internals/helpers"
)

/* =========================
   REQUEST (CRUD transaksi)
   ========================= */

type TransactionCreateRequest struct {
	MemberID          int64      `json:"member_id" validate:"required,gt=0"`
	CopyID            int64      `json:"copy_id" validate:"required,gt=0"`
	CheckoutTimestamp time.Time  `json:"checkout_timestamp" validate:"required"`
	DueDate           time.Time  `json:"due_date" validate:"required"`
	ReturnTimestamp   *time.Time `json:"return_timestamp,omitempty"`
}

type TransactionUpdateRequest struct {
	MemberID          *int64                `json:"member_id,omitempty"`
	CopyID            *int64                `json:"copy_id,omitempty"`
	CheckoutTimestamp *time.Time            `json:"checkout_timestamp,omitempty"`
	DueDate           *time.Time            `json:"due_date,omitempty"`
	ReturnTimestamp   helper.Opt[time.Time] `json:"return_timestamp"`
}

func (r *TransactionUpdateRequest) Validate() error {
	if r.MemberID != nil && *r.MemberID < 1 {
		return errors.New("member_id: gt=0")
	}
	if r.CopyID != nil && *r.CopyID < 1 {
		return errors.New("copy_id: gt=0")
	}
	return nil
}

func (r *TransactionCreateRequest) ToModel() *model.TransactionModel {
	return &model.TransactionModel{
		MemberID:          r.MemberID,
		CopyID:            r.CopyID,
		CheckoutTimestamp: r.CheckoutTimestamp,
		DueDate:           r.DueDate,
		ReturnTimestamp:   r.ReturnTimestamp,
	}
}

func (r *TransactionUpdateRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.MemberID != nil {
		patch["member_id"] = *r.MemberID
	}
	if r.CopyID != nil {
		patch["copy_id"] = *r.CopyID
	}
	if r.CheckoutTimestamp != nil {
		patch["checkout_timestamp"] = *r.CheckoutTimestamp
	}
	if r.DueDate != nil {
		patch["due_date"] = *r.DueDate
	}
	if r.ReturnTimestamp.Set {
		patch["return_timestamp"] = r.ReturnTimestamp.Ptr()
	}
	return patch
}

/* =========================
   REQUEST (borrow workflow)
   ========================= */

type BorrowCheckoutRequest struct {
	MemberID          int64      `json:"member_id" validate:"required,gt=0"`
	CopyID            int64      `json:"copy_id" validate:"required,gt=0"`
	CheckoutTimestamp *time.Time `json:"checkout_timestamp,omitempty"`
	DueDate           *time.Time `json:"due_date,omitempty"`
}

type BorrowCheckinRequest struct {
	TransactionID   int64      `json:"transaction_id" validate:"required,gt=0"`
	ReturnTimestamp *time.Time `json:"return_timestamp,omitempty"`
}
