package repository

import (
	"context"

	"mall/internal/domain/model"
)

type ItemImageRepository interface {
	CreateAll(ctx context.Context, itemID int64, images []model.ItemImage) error
	ListByItemID(ctx context.Context, itemID int64) ([]model.ItemImage, error)
	DeleteByItemID(ctx context.Context, itemID int64) error

	// 代表画像（RepImage=true）を1枚取る。無ければErrNotFound。
	FindRepresentativeByItemID(ctx context.Context, itemID int64) (model.ItemImage, error)
}
