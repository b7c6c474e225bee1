package handler

import (
	"net/http"
	"strconv"

	"mall/internal/usecase"

	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Message string `json:"message"`
}

// /admin配下の商品管理。ADMINかどうかはAccessPolicyが先に見ている。
type AdminItemHandler struct {
	uc *usecase.ItemUsecase
}

func NewAdminItemHandler(uc *usecase.ItemUsecase) *AdminItemHandler {
	return &AdminItemHandler{uc: uc}
}

func (h *AdminItemHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin")

	admin.POST("/item/new", h.register)
	admin.GET("/item/:id", h.detail)
	admin.POST("/item/:id", h.update)
	admin.GET("/items", h.list)
}

func (h *AdminItemHandler) register(c echo.Context) error {
	var req usecase.ItemInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.Register(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int64{"item_id": id})
}

// 修正フォーム用の現在値
func (h *AdminItemHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Detail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminItemHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req usecase.ItemInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Update(c.Request().Context(), id, req); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

// 管理画面の商品一覧（1ページ5件、検索条件付き）
func (h *AdminItemHandler) list(c echo.Context) error {
	in, err := bindSearchInput(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}

	out, err := h.uc.Search(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
