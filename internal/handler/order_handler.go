package handler

import (
	"context"
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type PlaceOrderRequest struct {
	ServiceID  int64   `json:"serviceId"`
	CustomerID int64   `json:"customerId"`
	Message    *string `json:"message"`
}

type ConfirmOrderRequest struct {
	Role string `json:"role"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/api/order")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.TokenVersionGuard(userRepo))

	g.POST("", h.place)
	g.POST("/:orderId/accept", h.accept)
	g.POST("/:orderId/refuse", h.refuse)
	g.POST("/:orderId/confirm", h.confirm)
	g.GET("/author/:authorId", h.listForAuthor)
	g.GET("/customer/:customerId", h.listForCustomer)
	g.GET("/notifications/:userId", h.listForUser)
}

func (h *OrderHandler) place(c echo.Context) error {
	if _, ok := getUserIDFromContext(c); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		ServiceID:  req.ServiceID,
		CustomerID: req.CustomerID,
		Message:    req.Message,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) accept(c echo.Context) error {
	return h.mutate(c, func(orderID int64) (bool, error) {
		return h.uc.AcceptOrder(c.Request().Context(), orderID)
	})
}

func (h *OrderHandler) refuse(c echo.Context) error {
	return h.mutate(c, func(orderID int64) (bool, error) {
		return h.uc.RefuseOrder(c.Request().Context(), orderID)
	})
}

func (h *OrderHandler) confirm(c echo.Context) error {
	var req ConfirmOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return h.mutate(c, func(orderID int64) (bool, error) {
		return h.uc.ConfirmOrder(c.Request().Context(), orderID, req.Role)
	})
}

// accept/refuse/confirm共通：存在しない注文はsuccess=falseで返す（404にしない）
func (h *OrderHandler) mutate(c echo.Context, fn func(orderID int64) (bool, error)) error {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid orderId"})
	}

	ok, err := fn(orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: ok})
}

func (h *OrderHandler) listForAuthor(c echo.Context) error {
	return h.list(c, "authorId", h.uc.GetOrdersForAuthor)
}

func (h *OrderHandler) listForCustomer(c echo.Context) error {
	return h.list(c, "customerId", h.uc.GetOrdersForCustomer)
}

func (h *OrderHandler) listForUser(c echo.Context) error {
	return h.list(c, "userId", h.uc.GetOrdersForUser)
}

func (h *OrderHandler) list(c echo.Context, param string, fn func(ctx context.Context, id int64) ([]usecase.OrderOutput, error)) error {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param})
	}

	out, err := fn(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// AuthJWTミドルウェアが入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	userID, ok := v.(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
