package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// 想定外のエラーはログして500。メッセージ本文はそのまま返す
//（この挙動に依存しているクライアントがいるので変えない）。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// /api/services のHTTP
type ServiceHandler struct {
	uc     *usecase.ServiceUsecase
	voteUC *usecase.ServiceVoteUsecase
}

// DI
func NewServiceHandler(uc *usecase.ServiceUsecase, voteUC *usecase.ServiceVoteUsecase) *ServiceHandler {
	return &ServiceHandler{uc: uc, voteUC: voteUC}
}

type CreateServiceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

type ServiceVoteRequest struct {
	IsUpvote bool `json:"isUpvote"`
}

func (h *ServiceHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	requireAuth := []echo.MiddlewareFunc{
		middleware.AuthJWT(cfg),
		middleware.TokenVersionGuard(userRepo),
	}

	g := e.Group("/api/services")
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create, requireAuth...)
	g.POST("/:id/vote", h.vote, requireAuth...)

	//自分の票の取得だけパスが違う（クライアント互換のため）
	e.GET("/api/ServiceVote", h.getUserVote, requireAuth...)
}

func (h *ServiceHandler) list(c echo.Context) error {
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.List(c.Request().Context(), page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ServiceHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ServiceHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), userID, usecase.CreateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// 投票。資格が無い場合はsuccess=falseで返る（エラーではない）。
func (h *ServiceHandler) vote(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ServiceVoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	ok2, err := h.voteUC.Vote(c.Request().Context(), serviceID, userID, req.IsUpvote)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: ok2})
}

// GET /api/ServiceVote?serviceId=&userId=
// 票が無ければnullを返す。
func (h *ServiceHandler) getUserVote(c echo.Context) error {
	serviceID, err := strconv.ParseInt(c.QueryParam("serviceId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid serviceId"})
	}
	userID, err := strconv.ParseInt(c.QueryParam("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid userId"})
	}

	vote, err := h.voteUC.GetUserVote(c.Request().Context(), serviceID, userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, vote)
}
