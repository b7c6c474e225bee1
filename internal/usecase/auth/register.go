package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"mall/internal/domain/model"
	"mall/internal/repository"
)

// 会員登録の入力
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Address  string
}

// 会員登録の出力
type RegisterOutput struct {
	Member model.Member
}

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrNameRequired       = errors.New("name required")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// RegisterUsecaseは会員登録の処理。roleはここでは常にUSER。
type RegisterUsecase struct {
	members repository.MemberRepository
	hasher  PasswordHasher
	clock   Clock
}

func NewRegisterUsecase(
	members repository.MemberRepository,
	hasher PasswordHasher,
	clock Clock,
) *RegisterUsecase {
	return &RegisterUsecase{
		members: members,
		hasher:  hasher,
		clock:   clock,
	}
}

// 会員登録実行
func (u *RegisterUsecase) Execute(ctx context.Context, in RegisterInput) (RegisterOutput, error) {
	var out RegisterOutput

	email := strings.TrimSpace(in.Email)
	if !isValidEmailFormat(email) {
		return out, ErrInvalidEmailFormat
	}
	if len(in.Password) < 8 {
		return out, ErrPasswordTooShort
	}
	if strings.TrimSpace(in.Name) == "" {
		return out, ErrNameRequired
	}

	// email重複チェック
	_, err := u.members.FindByEmail(ctx, email)
	if err == nil {
		return out, ErrEmailAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return out, err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	now := u.clock.Now()
	member := model.Member{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(in.Name),
		Address:      strings.TrimSpace(in.Address),
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.members.Create(ctx, &member); err != nil {
		return out, err
	}

	// ハッシュは外に出さない
	member.PasswordHash = ""
	out.Member = member
	return out, nil
}

func isValidEmailFormat(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}
