package model

import "time"

type SellStatus string

const (
	SellStatusSell    SellStatus = "SELL"
	SellStatusSoldOut SellStatus = "SOLD_OUT"
)

type Item struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string     `gorm:"type:varchar(255);not null" json:"name"`
	Price      int64      `gorm:"not null" json:"price"`
	Detail     string     `gorm:"type:text" json:"detail"`
	Stock      int64      `gorm:"not null" json:"stock"`
	SellStatus SellStatus `gorm:"type:varchar(20);not null;index" json:"sell_status"`
	CreatedAt  time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
