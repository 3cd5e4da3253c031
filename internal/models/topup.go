package models

import "time"

type Topup struct {
	ID          uint      `gorm:"primarykey" json:"topup_id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	TopupNo     string    `gorm:"not null" json:"topup_no"`
	TopupAmount int64     `gorm:"not null" json:"topup_amount"`
	TopupMethod string    `gorm:"not null" json:"topup_method"`
	TopupTime   time.Time `gorm:"not null" json:"topup_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
