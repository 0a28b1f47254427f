package handler

import (
	"net/http"
	"time"

	auth "app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC   *auth.RegisterUserUsecase // 会員登録usecase
	loginUC      *auth.LoginUsecase        // ログインusecase
	refreshTTL   time.Duration             // refresh cookie の有効期限
	cookieSecure bool
}

// DIコンストラクタ
func NewAuthHandler(
	registerUC *auth.RegisterUserUsecase,
	loginUC *auth.LoginUsecase,
	refreshTTL time.Duration,
	cookieSecure bool,
) *AuthHandler {
	return &AuthHandler{
		registerUC:   registerUC,
		loginUC:      loginUC,
		refreshTTL:   refreshTTL,
		cookieSecure: cookieSecure,
	}
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		switch err {
		case auth.ErrInvalidEmailFormat, auth.ErrPasswordTooShort, auth.ErrWeakPassword:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case auth.ErrEmailAlreadyExists:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	// User-Agentはrefresh tokenの行に紐付ける
	userAgent := c.Request().Header.Get("User-Agent")

	out, side, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: userAgent,
	})
	if err != nil {
		switch err {
		case auth.ErrInvalidCredentials, auth.ErrUserInactive:
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		default:
			return writeError(c, err)
		}
	}

	//refresh tokenはhttpOnlyのCookieで返す（bodyには入れない）
	c.SetCookie(&http.Cookie{
		Name:     "refresh_token",
		Value:    side.PlainRefreshToken,
		Path:     "/api/auth",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	return c.JSON(http.StatusOK, out)
}
