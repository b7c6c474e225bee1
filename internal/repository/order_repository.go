package repository

import (
	"context"

	"mall/internal/domain/model"
)

type OrderRepository interface {
	// OrderItemsも同じトランザクションで一緒に入れる
	Create(ctx context.Context, order *model.Order) (int64, error)
	// OrderItems込みで取得
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	// 購入履歴。emailで名寄せして新しい順。
	ListForMember(ctx context.Context, email string, page int, limit int) ([]model.Order, error)
	CountForMember(ctx context.Context, email string) (int64, error)
}
