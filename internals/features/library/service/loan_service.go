// file: internals/features/library/service/loan_service.go
package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "perpustakaan_backend/internals/features/library/model"
	store "perpustakaan_backend/internals/features/library/store"
)

// LoanService menjaga aturan peminjaman: maksimum MaxActiveLoans pinjaman
// aktif per anggota. Hitung-lalu-insert dijalankan dalam satu transaksi
// dengan baris anggota terkunci (FOR UPDATE), supaya dua checkout paralel
// untuk anggota yang sama tidak bisa sama-sama lolos hitungan.
//
// Catatan: checkout/checkin sengaja TIDAK mengubah copies.status; status
// aktif sebuah pinjaman hanya dibaca dari return_timestamp.
type LoanService struct {
	db    *gorm.DB
	loans *store.Store[model.TransactionModel]
}

func NewLoanService(db *gorm.DB) *LoanService {
	return &LoanService{
		db:    db,
		loans: store.New[model.TransactionModel](db, "transaction_id"),
	}
}

func (s *LoanService) Store() *store.Store[model.TransactionModel] { return s.loans }

// Checkout menyisipkan transaksi baru kalau anggota masih di bawah batas.
// Gagal dengan *BorrowLimitError (tanpa baris baru) saat pinjaman aktif
// sudah mencapai MaxActiveLoans.
func (s *LoanService) Checkout(ctx context.Context, m *model.TransactionModel) (*model.TransactionModel, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Kunci baris anggota sebagai titik serialisasi per member.
		// SQLite (dipakai di test) tidak mengenal FOR UPDATE; writer
		// lock-nya sudah menserialkan transaksi.
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var member model.MemberModel
		if err := q.First(&member, "member_id = ?", m.MemberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &MissingRefError{Field: "member_id"}
			}
			return err
		}

		var active int64
		if err := tx.Model(&model.TransactionModel{}).
			Where("member_id = ? AND return_timestamp IS NULL", m.MemberID).
			Count(&active).Error; err != nil {
			return err
		}
		if active >= MaxActiveLoans {
			return &BorrowLimitError{Active: int(active)}
		}

		return tx.Create(m).Error
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Checkin mengisi return_timestamp. (nil, nil) saat transaksi tidak ada.
// Checkin pada transaksi yang sudah kembali menimpa timestamp-nya —
// perilaku lama yang dipertahankan, bukan error.
func (s *LoanService) Checkin(ctx context.Context, transactionID int64, returnTime time.Time) (*model.TransactionModel, error) {
	return s.loans.UpdateByID(ctx, transactionID, map[string]any{
		"return_timestamp": returnTime,
	})
}

// CountActive menghitung pinjaman aktif seorang anggota.
func (s *LoanService) CountActive(ctx context.Context, memberID int64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("member_id = ? AND return_timestamp IS NULL", memberID).
		Count(&n).Error
	return n, err
}
