package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type Access int

const (
	// 匿名でも見られる
	AccessPublic Access = iota
	// ログインしていれば誰でも
	AccessUser
	// ADMINロールだけ
	AccessAdmin
)

// ログインページの入口。未認証はここへ飛ばす（生の401は返さない）。
const LoginPath = "/members/login"

type policyRule struct {
	prefix string
	access Access
}

// パスのprefix → 必要なロールの対応表。アノテーション的なディスパッチは使わず、
// ルーティングの前にこの表だけで判定する。
var defaultPolicy = []policyRule{
	{"/admin", AccessAdmin},
	{"/members", AccessPublic},
	{"/items", AccessPublic},
	{"/item", AccessPublic},
	{"/images", AccessPublic},
	{"/css", AccessPublic},
	{"/js", AccessPublic},
	{"/img", AccessPublic},
}

// requiredAccessは最長一致で表を引く。表に無いパスは要ログイン。
func requiredAccess(path string) Access {
	if path == "/" || path == "" {
		return AccessPublic
	}

	best := -1
	access := AccessUser
	for _, rule := range defaultPolicy {
		// セグメント境界で一致させる（/itemsXYZ は /items に一致させない）
		if path != rule.prefix && !strings.HasPrefix(path, rule.prefix+"/") {
			continue
		}
		if len(rule.prefix) > best {
			best = len(rule.prefix)
			access = rule.access
		}
	}
	return access
}

// AccessPolicyは全リクエストの入口。Sessionの後に並べる。
func AccessPolicy() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			access := requiredAccess(c.Request().URL.Path)

			email, _ := c.Get(CtxMemberEmailKey).(string)
			role, _ := c.Get(CtxMemberRoleKey).(string)

			switch access {
			case AccessPublic:
				return next(c)

			case AccessAdmin:
				// ADMIN以外は匿名も含めてForbidden
				if role != "ADMIN" {
					return c.JSON(http.StatusForbidden, errorJSON("forbidden"))
				}
				return next(c)

			default:
				// 要ログイン。匿名はログイン入口へリダイレクト。
				if email == "" {
					return c.Redirect(http.StatusFound, LoginPath)
				}
				return next(c)
			}
		}
	}
}
