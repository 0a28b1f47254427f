package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CommentUsecase struct {
	tx repo.TransactionManager
}

func NewCommentUsecase(tx repo.TransactionManager) *CommentUsecase {
	return &CommentUsecase{tx: tx}
}

type CommentOutput struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	UserID    int64     `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddComment はコメントを作る。長さや内容のバリデーションは無し。
func (u *CommentUsecase) AddComment(ctx context.Context, postID int64, userID int64, content string) (CommentOutput, error) {
	if postID <= 0 || userID <= 0 {
		return CommentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out CommentOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		created, err := r.PostComments().Create(ctx, model.PostComment{
			PostID:    postID,
			UserID:    userID,
			Content:   content,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toCommentOutput(created)
		return nil
	})

	if err != nil {
		return CommentOutput{}, err
	}
	return out, nil
}

// UpdateComment は本文を上書きする。無ければ何もせずfalse。
func (u *CommentUsecase) UpdateComment(ctx context.Context, commentID int64, content string) (bool, error) {
	var ok bool

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		c, err := r.PostComments().FindByID(ctx, commentID)
		if err == repo.ErrNotFound {
			return nil
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		c.Content = content
		c.UpdatedAt = time.Now()

		if err := r.PostComments().Update(ctx, c); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		ok = true
		return nil
	})

	if err != nil {
		return false, err
	}
	return ok, nil
}

// DeleteComment は物理削除。無ければ何もせずfalse。
func (u *CommentUsecase) DeleteComment(ctx context.Context, commentID int64) (bool, error) {
	var ok bool

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, err := r.PostComments().FindByID(ctx, commentID)
		if err == repo.ErrNotFound {
			return nil
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.PostComments().Delete(ctx, commentID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		ok = true
		return nil
	})

	if err != nil {
		return false, err
	}
	return ok, nil
}

// ListCommentsForPost はページングなしの全件。並び順は保証しない。
func (u *CommentUsecase) ListCommentsForPost(ctx context.Context, postID int64) ([]CommentOutput, error) {
	var outs []CommentOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		comments, err := r.PostComments().ListByPostID(ctx, postID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]CommentOutput, 0, len(comments))
		for _, c := range comments {
			outs = append(outs, toCommentOutput(c))
		}
		return nil
	})

	if err != nil {
		return []CommentOutput{}, err
	}
	return outs, nil
}

func toCommentOutput(c model.PostComment) CommentOutput {
	return CommentOutput{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
