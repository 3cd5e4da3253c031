package models

import "time"

type Withdraw struct {
	ID             uint      `gorm:"primarykey" json:"withdraw_id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	WithdrawAmount int64     `gorm:"not null" json:"withdraw_amount"`
	WithdrawTime   time.Time `gorm:"not null" json:"withdraw_time"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
