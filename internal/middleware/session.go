package middleware

import (
	"errors"
	"net/http"

	"mall/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	// セッションcookie名
	SessionCookieName = "MALL_SESSION"

	CtxMemberEmailKey = "member_email" // string
	CtxMemberRoleKey  = "member_role"  // string
)

// Sessionはcookieのセッショントークン（JWT）を検証してcontextへ入れる。
// cookieが無い・壊れているときは匿名のまま通す。通すかどうかはAccessPolicyが決める。
func Session(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			// JWTをパースして検証する
			token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return next(c)
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return next(c)
			}

			// sub = member email
			email, ok := claims["sub"].(string)
			if !ok || email == "" {
				return next(c)
			}

			// role（USER/ADMIN）
			role, ok := claims["role"].(string)
			if !ok || role == "" {
				return next(c)
			}

			c.Set(CtxMemberEmailKey, email)
			c.Set(CtxMemberRoleKey, role)

			return next(c)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// ClearSessionCookieはログアウト用の失効cookieを返す
func ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
}
