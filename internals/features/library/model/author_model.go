package model

type AuthorModel struct {
	AuthorID   int64  `json:"author_id" gorm:"column:author_id;primaryKey;autoIncrement"`
	AuthorName string `json:"author_name" gorm:"column:author_name;type:varchar(255);not null"`
}

func (AuthorModel) TableName() string { return "authors" }
