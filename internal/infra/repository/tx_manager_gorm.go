package repository

import (
	"context"

	repo "mall/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	members    repo.MemberRepository
	items      repo.ItemRepository
	itemImages repo.ItemImageRepository
	orders     repo.OrderRepository
}

func (r *txReposGorm) Members() repo.MemberRepository       { return r.members }
func (r *txReposGorm) Items() repo.ItemRepository           { return r.items }
func (r *txReposGorm) ItemImages() repo.ItemImageRepository { return r.itemImages }
func (r *txReposGorm) Orders() repo.OrderRepository         { return r.orders }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			members:    NewMemberGormRepository(tx),
			items:      NewItemGormRepository(tx),
			itemImages: NewItemImageGormRepository(tx),
			orders:     NewOrderGormRepository(tx),
		}
		return fn(r)
	})
}
