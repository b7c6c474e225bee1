package repository

import (
	"context"

	"mall/internal/domain/model"
)

// 一覧検索（名前/詳細のLIKE・販売状態・ページング・並び）
type ItemSearchQuery struct {
	Page       int
	Limit      int
	Q          string
	SellStatus string
	Sort       string
}

// 商品の永続化だけを約束。検索は派生クエリではなく名前付きメソッドにする。
type ItemRepository interface {
	FindByID(ctx context.Context, itemID int64) (model.Item, error)
	Search(ctx context.Context, q ItemSearchQuery) ([]model.Item, int64, error)

	Create(ctx context.Context, item model.Item) (model.Item, error)
	Update(ctx context.Context, item model.Item) error

	// 在庫が足りるときだけ減算（1文のconditional update。在庫をマイナスにしない唯一の砦）
	DecrementStockIfEnough(ctx context.Context, itemID int64, qty int64) (bool, error)
	// 在庫戻し（キャンセル）
	IncrementStock(ctx context.Context, itemID int64, qty int64) error
	UpdateSellStatus(ctx context.Context, itemID int64, status model.SellStatus) error
}
