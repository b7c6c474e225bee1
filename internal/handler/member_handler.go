package handler

import (
	"net/http"

	"mall/internal/middleware"
	"mall/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

// 会員まわり（登録・ログイン・ログアウト）
type MemberHandler struct {
	register *auth.RegisterUsecase
	login    *auth.LoginUsecase
}

func NewMemberHandler(register *auth.RegisterUsecase, login *auth.LoginUsecase) *MemberHandler {
	return &MemberHandler{register: register, login: login}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *MemberHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/members/new", h.registerMember)
	e.GET("/members/login", h.loginEntry)
	e.POST("/members/login", h.loginMember)
	e.POST("/members/logout", h.logout)
}

func (h *MemberHandler) registerMember(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.register.Execute(c.Request().Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Address:  req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out.Member)
}

// 未認証リダイレクトの着地点。画面描画は境界の外なのでJSONで促すだけ。
func (h *MemberHandler) loginEntry(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Message: "login required"})
}

func (h *MemberHandler) loginMember(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.login.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	// セッションはHttpOnly cookieで持つ
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    out.Token.Token,
		Path:     "/",
		Expires:  out.Token.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, out)
}

// ログアウトはcookieを失効させてトップへ戻す
func (h *MemberHandler) logout(c echo.Context) error {
	c.SetCookie(middleware.ClearSessionCookie())
	return c.Redirect(http.StatusFound, "/")
}
