package repository

import (
	"context"
	"errors"

	"mall/internal/domain/model"
	repo "mall/internal/repository"

	"gorm.io/gorm"
)

type MemberGormRepository struct {
	db *gorm.DB
}

func NewMemberGormRepository(db *gorm.DB) *MemberGormRepository {
	return &MemberGormRepository{db: db}
}

func (r *MemberGormRepository) Create(ctx context.Context, m *model.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberGormRepository) FindByID(ctx context.Context, memberID int64) (model.Member, error) {
	var m model.Member
	err := r.db.WithContext(ctx).Where("id = ?", memberID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Member{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Member{}, err
	}
	return m, nil
}

func (r *MemberGormRepository) FindByEmail(ctx context.Context, email string) (model.Member, error) {
	var m model.Member
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Member{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Member{}, err
	}
	return m, nil
}
