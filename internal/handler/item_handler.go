package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mall/internal/usecase"
	"mall/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// usecaseのsentinelエラーをHTTPへ変換する。ここ以外で変換しない。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, usecase.ErrInsufficientStock):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "insufficient stock"})
	case errors.Is(err, usecase.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	case errors.Is(err, usecase.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	case errors.Is(err, usecase.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "email already exists"})
	case errors.Is(err, auth.ErrInvalidEmailFormat),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrNameRequired):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	// 500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /itemsと/item/:idの公開API。トップページも商品一覧を返す。
type ItemHandler struct {
	uc *usecase.ItemUsecase
}

func NewItemHandler(uc *usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.list)
	e.GET("/items", h.list)
	e.GET("/item/:id", h.detail)
}

func (h *ItemHandler) list(c echo.Context) error {
	in, err := bindSearchInput(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}

	// 公開側は売り出し中だけを20件ずつ
	if in.SellStatus == "" {
		in.SellStatus = "SELL"
	}
	if in.Limit == 0 {
		in.Limit = 20
	}

	out, err := h.uc.Search(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) detail(c echo.Context) error {
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

func bindSearchInput(c echo.Context) (usecase.ItemSearchInput, error) {
	in := usecase.ItemSearchInput{
		Page:       1,
		Q:          c.QueryParam("q"),
		SellStatus: c.QueryParam("status"),
		Sort:       c.QueryParam("sort"),
	}

	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return usecase.ItemSearchInput{}, err
		}
		in.Page = p
	}
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return usecase.ItemSearchInput{}, err
		}
		in.Limit = l
	}

	return in, nil
}
