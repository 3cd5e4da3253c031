package models

import "time"

// Saldo is the single current balance row for a user. TotalBalance is in
// currency minor units and must never be committed negative; the withdraw
// fields mirror the most recent withdraw applied against it.
type Saldo struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	UserID         uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	TotalBalance   int64      `gorm:"not null;default:0" json:"total_balance"`
	WithdrawAmount *int64     `json:"withdraw_amount"`
	WithdrawTime   *time.Time `json:"withdraw_time"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
