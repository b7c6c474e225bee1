package repository

import (
	"context"
	"errors"

	"mall/internal/domain/model"
)

// 参照先が見つからないを統一
var ErrNotFound = errors.New("not found")

// 会員の保存・取得を約束
type MemberRepository interface {
	Create(ctx context.Context, m *model.Member) error
	FindByID(ctx context.Context, memberID int64) (model.Member, error)
	// emailはunique。ログインと注文の名寄せに使う。
	FindByEmail(ctx context.Context, email string) (model.Member, error)
}
