package server

import (
	"mall/internal/config"
	"mall/internal/handler"
	"mall/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Handlers struct {
	Member    *handler.MemberHandler
	Item      *handler.ItemHandler
	AdminItem *handler.AdminItemHandler
	Order     *handler.OrderHandler
}

// Newはechoを組み立てる。Session→AccessPolicyの順は固定
// （先にセッションを読まないとポリシーがロールを見られない）。
func New(cfg config.Config, log *zap.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(requestLogger(log))
	e.Use(middleware.Session(cfg))
	e.Use(middleware.AccessPolicy())

	h.Member.RegisterRoutes(e)
	h.Item.RegisterRoutes(e)
	h.AdminItem.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}

// 1リクエスト1行のアクセスログ
func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
