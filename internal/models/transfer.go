package models

import "time"

// Transfer is one journal entry affecting two balances: TransferFrom is
// debited and TransferTo credited by TransferAmount.
type Transfer struct {
	ID             uint      `gorm:"primarykey" json:"transfer_id"`
	TransferFrom   uint      `gorm:"index;not null" json:"transfer_from"`
	TransferTo     uint      `gorm:"index;not null" json:"transfer_to"`
	TransferAmount int64     `gorm:"not null" json:"transfer_amount"`
	TransferTime   time.Time `gorm:"not null" json:"transfer_time"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
