package repository

import (
	"context"
	"errors"

	"mall/internal/domain/model"
	repo "mall/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// OrderItemsはgormのassociationで同時にinsertされる
func (r *OrderGormRepository) Create(ctx context.Context, order *model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", orderID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) ListForMember(ctx context.Context, email string, page int, limit int) ([]model.Order, error) {
	if page <= 0 {
		page = 1
	}

	var orders []model.Order
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Preload("Items").
		Joins("JOIN members ON members.id = orders.member_id").
		Where("members.email = ?", email).
		Order("orders.order_date desc, orders.id desc").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}

	return orders, nil
}

func (r *OrderGormRepository) CountForMember(ctx context.Context, email string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Joins("JOIN members ON members.id = orders.member_id").
		Where("members.email = ?", email).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
