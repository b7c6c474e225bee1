package repository

import (
	"context"
	"errors"

	"mall/internal/domain/model"
	repo "mall/internal/repository"

	"gorm.io/gorm"
)

type ItemImageGormRepository struct {
	db *gorm.DB
}

func NewItemImageGormRepository(db *gorm.DB) *ItemImageGormRepository {
	return &ItemImageGormRepository{db: db}
}

func (r *ItemImageGormRepository) CreateAll(ctx context.Context, itemID int64, images []model.ItemImage) error {
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		images[i].ItemID = itemID
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

func (r *ItemImageGormRepository) ListByItemID(ctx context.Context, itemID int64) ([]model.ItemImage, error) {
	var images []model.ItemImage
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("ordering asc").
		Find(&images).Error
	if err != nil {
		return []model.ItemImage{}, err
	}
	return images, nil
}

func (r *ItemImageGormRepository) DeleteByItemID(ctx context.Context, itemID int64) error {
	return r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Delete(&model.ItemImage{}).Error
}

func (r *ItemImageGormRepository) FindRepresentativeByItemID(ctx context.Context, itemID int64) (model.ItemImage, error) {
	var img model.ItemImage
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND rep_image = ?", itemID, true).
		First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ItemImage{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ItemImage{}, err
	}
	return img, nil
}
