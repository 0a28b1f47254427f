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

// /api/BlogPost まわり（記事・投票・コメント・保存）のHTTP
type BlogPostHandler struct {
	uc      *usecase.BlogPostUsecase
	voteUC  *usecase.BlogVoteUsecase
	comment *usecase.CommentUsecase
	saved   *usecase.SavedPostUsecase
}

// DI
func NewBlogPostHandler(
	uc *usecase.BlogPostUsecase,
	voteUC *usecase.BlogVoteUsecase,
	comment *usecase.CommentUsecase,
	saved *usecase.SavedPostUsecase,
) *BlogPostHandler {
	return &BlogPostHandler{uc: uc, voteUC: voteUC, comment: comment, saved: saved}
}

type CreateBlogPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// 投票のuserIdはbodyで来る（既存クライアント互換）
type BlogPostVoteRequest struct {
	UserID   int64 `json:"userId"`
	IsUpvote bool  `json:"isUpvote"`
}

type AddCommentRequest struct {
	Content string `json:"content"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

type ScoreResponse struct {
	Score int64 `json:"score"`
}

func (h *BlogPostHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	requireAuth := []echo.MiddlewareFunc{
		middleware.AuthJWT(cfg),
		middleware.TokenVersionGuard(userRepo),
	}

	g := e.Group("/api/BlogPost")

	//匿名で読めるもの
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.GET("/:id/score", h.score)
	g.GET("/:id/comments", h.listComments)

	//要ログイン
	g.POST("", h.create, requireAuth...)
	g.POST("/:id/vote", h.vote, requireAuth...)
	g.DELETE("/:id/vote", h.removeVote, requireAuth...)
	g.POST("/:id/comments", h.addComment, requireAuth...)
	g.PUT("/comments/:id", h.updateComment, requireAuth...)
	g.DELETE("/comments/:id", h.deleteComment, requireAuth...)
	g.POST("/:id/save", h.save, requireAuth...)
	g.DELETE("/:id/save", h.unsave, requireAuth...)
	g.GET("/saved/:userId", h.listSaved, requireAuth...)
}

func (h *BlogPostHandler) list(c echo.Context) error {
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

func (h *BlogPostHandler) detail(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BlogPostHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CreateBlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), userID, usecase.CreateBlogPostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *BlogPostHandler) vote(c echo.Context) error {
	if _, ok := getUserIDFromContext(c); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req BlogPostVoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	ok, err := h.voteUC.Vote(c.Request().Context(), postID, req.UserID, req.IsUpvote)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: ok})
}

// 票が無くてもエラーにはせずsuccess=false
func (h *BlogPostHandler) removeVote(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	removed, err := h.voteUC.RemoveVote(c.Request().Context(), postID, userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: removed})
}

func (h *BlogPostHandler) score(c echo.Context) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	score, err := h.voteUC.GetScore(c.Request().Context(), postID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ScoreResponse{Score: score})
}

func (h *BlogPostHandler) listComments(c echo.Context) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.comment.ListCommentsForPost(c.Request().Context(), postID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BlogPostHandler) addComment(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.comment.AddComment(c.Request().Context(), postID, userID, req.Content)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *BlogPostHandler) updateComment(c echo.Context) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	ok, err := h.comment.UpdateComment(c.Request().Context(), commentID, req.Content)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: ok})
}

func (h *BlogPostHandler) deleteComment(c echo.Context) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	ok, err := h.comment.DeleteComment(c.Request().Context(), commentID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: ok})
}

func (h *BlogPostHandler) save(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	saved, err := h.saved.Save(c.Request().Context(), userID, postID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: saved})
}

func (h *BlogPostHandler) unsave(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	removed, err := h.saved.Unsave(c.Request().Context(), userID, postID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: removed})
}

func (h *BlogPostHandler) listSaved(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid userId"})
	}

	out, err := h.saved.ListSaved(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
