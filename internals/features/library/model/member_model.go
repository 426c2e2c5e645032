package model

import "time"

type MemberModel struct {
	MemberID           int64     `json:"member_id" gorm:"column:member_id;primaryKey;autoIncrement"`
	FullName           string    `json:"full_name" gorm:"column:full_name;type:varchar(255);not null"`
	ContactInformation *string   `json:"contact_information" gorm:"column:contact_information;type:varchar(255)"`
	AddressLine1       *string   `json:"address_line_1" gorm:"column:address_line_1;type:varchar(255)"`
	AddressLine2       *string   `json:"address_line_2" gorm:"column:address_line_2;type:varchar(255)"`
	City               string    `json:"city" gorm:"column:city;type:varchar(128);not null"`
	PostCode           string    `json:"post_code" gorm:"column:post_code;type:varchar(16);not null"`
	JoinDate           time.Time `json:"join_date" gorm:"column:join_date;not null"`
	ExpiryDate         time.Time `json:"expiry_date" gorm:"column:expiry_date;not null"`
}

func (MemberModel) TableName() string { return "members" }
