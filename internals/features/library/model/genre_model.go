package model

type GenreModel struct {
	GenreID   int64  `json:"genre_id" gorm:"column:genre_id;primaryKey;autoIncrement"`
	GenreName string `json:"genre_name" gorm:"column:genre_name;type:varchar(255);not null"`
}

func (GenreModel) TableName() string { return "genres" }
