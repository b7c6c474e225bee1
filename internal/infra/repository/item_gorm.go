package repository

import (
	"context"
	"errors"

	"mall/internal/domain/model"
	repo "mall/internal/repository"

	"gorm.io/gorm"
)

type ItemGormRepository struct {
	db *gorm.DB
}

func NewItemGormRepository(db *gorm.DB) *ItemGormRepository {
	return &ItemGormRepository{db: db}
}

func (r *ItemGormRepository) FindByID(ctx context.Context, itemID int64) (model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Item{}, err
	}
	return it, nil
}

func (r *ItemGormRepository) Search(ctx context.Context, sq repo.ItemSearchQuery) ([]model.Item, int64, error) {
	if sq.Page <= 0 {
		sq.Page = 1
	}
	if sq.Limit <= 0 || sq.Limit > 100 {
		sq.Limit = 5
	}

	q := r.db.WithContext(ctx).Model(&model.Item{})

	// 商品名または詳細のLIKE検索
	if sq.Q != "" {
		like := "%" + sq.Q + "%"
		q = q.Where("name LIKE ? OR detail LIKE ?", like, like)
	}

	// 販売状態絞り込み
	if sq.SellStatus != "" {
		q = q.Where("sell_status = ?", sq.SellStatus)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return []model.Item{}, 0, err
	}

	order := "id desc"
	switch sq.Sort {
	case "price_asc":
		order = "price asc"
	case "price_desc":
		order = "price desc"
	}

	var items []model.Item
	offset := (sq.Page - 1) * sq.Limit
	if err := q.Order(order).Limit(sq.Limit).Offset(offset).Find(&items).Error; err != nil {
		return []model.Item{}, 0, err
	}

	return items, total, nil
}

func (r *ItemGormRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.Item{}, err
	}
	return item, nil
}

func (r *ItemGormRepository) Update(ctx context.Context, item model.Item) error {
	res := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":        item.Name,
			"price":       item.Price,
			"detail":      item.Detail,
			"stock":       item.Stock,
			"sell_status": item.SellStatus,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 在庫が足りるときだけ減らす。チェックと減算を1文にして同時注文の取り合いを防ぐ。
func (r *ItemGormRepository) DecrementStockIfEnough(ctx context.Context, itemID int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ? AND stock >= ?", itemID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し（キャンセル）
func (r *ItemGormRepository) IncrementStock(ctx context.Context, itemID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", itemID).
		Update("stock", gorm.Expr("stock + ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ItemGormRepository) UpdateSellStatus(ctx context.Context, itemID int64, status model.SellStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", itemID).
		Update("sell_status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
