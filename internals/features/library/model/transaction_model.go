package model

import "time"

// TransactionModel adalah catatan peminjaman. return_timestamp NULL berarti
// pinjaman masih aktif; sekali terisi statusnya RETURNED (terminal).
type TransactionModel struct {
	TransactionID     int64      `json:"transaction_id" gorm:"column:transaction_id;primaryKey;autoIncrement"`
	MemberID          int64      `json:"member_id" gorm:"column:member_id;not null;index:idx_transactions_member"`
	CopyID            int64      `json:"copy_id" gorm:"column:copy_id;not null;index:idx_transactions_copy"`
	CheckoutTimestamp time.Time  `json:"checkout_timestamp" gorm:"column:checkout_timestamp;not null"`
	DueDate           time.Time  `json:"due_date" gorm:"column:due_date;not null"`
	ReturnTimestamp   *time.Time `json:"return_timestamp" gorm:"column:return_timestamp"`
}

func (TransactionModel) TableName() string { return "transactions" }

// IsActive: pinjaman dihitung aktif selama belum ada return_timestamp.
func (t *TransactionModel) IsActive() bool { return t.ReturnTimestamp == nil }
