package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"mall/internal/domain/model"
	"mall/internal/repository"
)

// handlerからusecaseに渡す入力。ログインはemailで束ねる（usernameではない）。
type LoginInput struct {
	Email    string
	Password string
}

// handlerがcookieに詰めるセッショントークン
type SessionToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type LoginOutput struct {
	Member model.Member `json:"member"`
	Token  SessionToken `json:"token"`
}

// メールまたはパスワードが違う（どちらが違うかは外に出さない）
var ErrInvalidCredentials = errors.New("invalid credentials")

// セッショントークンを発行する約束
type SessionTokenIssuer interface {
	Issue(email string, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type LoginUsecase struct {
	members  repository.MemberRepository
	verifier PasswordVerifier
	issuer   SessionTokenIssuer
	clock    Clock
}

func NewLoginUsecase(
	members repository.MemberRepository,
	verifier PasswordVerifier,
	issuer SessionTokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		members:  members,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	member, err := u.members.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return out, ErrInvalidCredentials
		}
		return out, err
	}

	// パスワード照合（bcrypt）
	if ok := u.verifier.Verify(in.Password, member.PasswordHash); !ok {
		return out, ErrInvalidCredentials
	}

	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(member.Email, member.Role, now)
	if err != nil {
		return out, err
	}

	// ハッシュは返さない
	member.PasswordHash = ""
	out.Member = member
	out.Token = SessionToken{Token: token, ExpiresAt: expiresAt}
	return out, nil
}
