// file: internals/features/library/store/store.go
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Store adalah akses CRUD generik satu entitas. Enam entitas di service ini
// punya kontrak persist yang identik; daripada menulis builder update enam
// kali, cukup satu instansiasi per entitas dengan nama kolom id-nya.
type Store[M any] struct {
	db    *gorm.DB
	idCol string
}

func New[M any](db *gorm.DB, idCol string) *Store[M] {
	return &Store[M]{db: db, idCol: idCol}
}

// WithTx mengembalikan store yang menulis lewat transaksi tx.
func (s *Store[M]) WithTx(tx *gorm.DB) *Store[M] {
	return &Store[M]{db: tx, idCol: s.idCol}
}

// ListAll mengurutkan berdasarkan id naik.
func (s *Store[M]) ListAll(ctx context.Context) ([]M, error) {
	out := make([]M, 0)
	err := s.db.WithContext(ctx).Order(s.idCol + " ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID mengembalikan (nil, nil) saat baris tidak ada — absent bukan error.
func (s *Store[M]) FindByID(ctx context.Context, id int64) (*M, error) {
	var m M
	err := s.db.WithContext(ctx).First(&m, s.idCol+" = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store[M]) Create(ctx context.Context, m *M) error {
	return s.db.WithContext(ctx).Create(m).Error
}

// UpdateByID menerapkan patch parsial (kolom → nilai). Patch kosong adalah
// no-op yang tetap mengembalikan baris sekarang. (nil, nil) saat id tidak ada.
func (s *Store[M]) UpdateByID(ctx context.Context, id int64, patch map[string]any) (*M, error) {
	cur, err := s.FindByID(ctx, id)
	if err != nil || cur == nil {
		return cur, err
	}
	if len(patch) == 0 {
		return cur, nil
	}
	if err := s.db.WithContext(ctx).Model(cur).Where(s.idCol+" = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}

// DeleteByID: true kalau ada baris yang terhapus. "Tidak ada" bukan error.
func (s *Store[M]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	var m M
	res := s.db.WithContext(ctx).Where(s.idCol+" = ?", id).Delete(&m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
