// file: internals/features/library/service/errors.go
package service

import "fmt"

// MaxActiveLoans: batas pinjaman aktif per anggota.
const MaxActiveLoans = 3

// BorrowLimitError dikembalikan saat checkout ditolak karena batas pinjaman.
// Active membawa jumlah pinjaman aktif saat ini supaya controller bisa
// menampilkannya ke pemanggil.
type BorrowLimitError struct {
	Active int
}

func (e *BorrowLimitError) Error() string {
	return fmt.Sprintf("Anggota tidak boleh meminjam lebih dari %d buku. Saat ini ada %d pinjaman aktif.", MaxActiveLoans, e.Active)
}

// MissingRefError: payload menunjuk id yang tidak terdaftar (author_ids,
// genre_ids, member_id). Ini kesalahan input (400), bukan kegagalan store.
type MissingRefError struct {
	Field string
}

func (e *MissingRefError) Error() string {
	return fmt.Sprintf("%s berisi id yang tidak terdaftar", e.Field)
}
