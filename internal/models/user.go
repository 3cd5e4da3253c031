package models

import "time"

type User struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Firstname   string `gorm:"not null" json:"firstname"`
	Lastname    string `gorm:"not null" json:"lastname"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	NocTransfer string `json:"noc_transfer"` // generated virtual card number
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
