package model

// Status eksemplar. Di storage tetap kolom bebas (varchar), konstanta ini
// hanya nilai yang dikenal aplikasi. Checkout/checkin TIDAK mengubah status —
// status aktif pinjaman dibaca dari transactions.return_timestamp.
const (
	CopyStatusAvailable   = "AVAILABLE"
	CopyStatusCheckedOut  = "CHECKED_OUT"
	CopyStatusLost        = "LOST"
	CopyStatusMaintenance = "MAINTENANCE"
)

type CopyModel struct {
	CopyID         int64  `json:"copy_id" gorm:"column:copy_id;primaryKey;autoIncrement"`
	CopyIdentifier string `json:"copy_identifier" gorm:"column:copy_identifier;type:varchar(64);not null;uniqueIndex:uq_copies_identifier"`
	BookID         int64  `json:"book_id" gorm:"column:book_id;not null;index:idx_copies_book"`
	Status         string `json:"status" gorm:"column:status;type:varchar(32);not null"`
}

func (CopyModel) TableName() string { return "copies" }
