package model

import "time"

// RepImageは商品ごとに1枚だけ（登録フローで担保する。DB制約は張らない）
type ItemImage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemID    int64     `gorm:"not null;index" json:"item_id"`
	ImageURL  string    `gorm:"type:varchar(255);not null" json:"image_url"`
	RepImage  bool      `gorm:"not null;default:false" json:"rep_image"`
	Ordering  int       `gorm:"not null" json:"ordering"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
