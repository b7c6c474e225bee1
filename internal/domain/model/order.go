package model

import "time"

type OrderStatus string

const (
	OrderStatusOrder  OrderStatus = "ORDER"
	OrderStatusCancel OrderStatus = "CANCEL"
)

// キャンセルしても行は消さない（statusをCANCELにするだけ）
type Order struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID  int64       `gorm:"not null;index" json:"member_id"`
	OrderDate time.Time   `gorm:"not null" json:"order_date"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 合計は注文時点のスナップショット価格から計算する（現在価格は見ない）
func (o Order) TotalAmount() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.OrderPrice * it.Count
	}
	return total
}
