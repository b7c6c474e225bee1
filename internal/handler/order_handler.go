package handler

import (
	"net/http"
	"strconv"

	"mall/internal/middleware"
	"mall/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type placeOrderRequest struct {
	Lines []usecase.OrderLine `json:"lines"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/order", h.place)
	e.POST("/order/:id/cancel", h.cancel)
	e.GET("/orders", h.history)
}

func (h *OrderHandler) place(c echo.Context) error {
	email, ok := getMemberEmail(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	orderID, err := h.uc.Place(c.Request().Context(), email, req.Lines)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int64{"order_id": orderID})
}

func (h *OrderHandler) cancel(c echo.Context) error {
	email, ok := getMemberEmail(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	// 他人の注文はキャンセルさせない
	owned, err := h.uc.ValidateOwnership(c.Request().Context(), orderID, email)
	if err != nil {
		return writeError(c, err)
	}
	if !owned {
		return writeError(c, usecase.ErrForbidden)
	}

	if err := h.uc.Cancel(c.Request().Context(), orderID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "canceled"})
}

func (h *OrderHandler) history(c echo.Context) error {
	email, ok := getMemberEmail(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}

	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// 履歴ページは1ページ4件
	size := 4
	if v := c.QueryParam("size"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid size"})
		}
		size = s
	}

	out, err := h.uc.ListHistory(c.Request().Context(), email, page, size)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// middleware.Sessionがc.Setしたemailを取り出す
func getMemberEmail(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxMemberEmailKey)
	if v == nil {
		return "", false
	}

	email, ok := v.(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}
