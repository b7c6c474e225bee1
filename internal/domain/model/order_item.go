package model

import "time"

// OrderPriceは注文時のItem.Priceスナップショット
type OrderItem struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    int64     `gorm:"not null;index" json:"order_id"`
	ItemID     int64     `gorm:"not null;index" json:"item_id"`
	OrderPrice int64     `gorm:"not null" json:"order_price"`
	Count      int64     `gorm:"not null" json:"count"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
