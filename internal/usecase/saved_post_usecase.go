package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type SavedPostUsecase struct {
	tx repo.TransactionManager
}

func NewSavedPostUsecase(tx repo.TransactionManager) *SavedPostUsecase {
	return &SavedPostUsecase{tx: tx}
}

// Save はブックマーク。既にあれば何もせずtrue（投票と同じread-before-write）。
func (u *SavedPostUsecase) Save(ctx context.Context, userID int64, postID int64) (bool, error) {
	if userID <= 0 || postID <= 0 {
		return false, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var ok bool

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, found, err := r.SavedBlogPosts().Find(ctx, userID, postID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if found {
			ok = true
			return nil
		}

		err = r.SavedBlogPosts().Create(ctx, model.SavedBlogPost{
			UserID:    userID,
			PostID:    postID,
			CreatedAt: time.Now(),
		})
		if err != nil {
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

// Unsave はブックマーク解除。無ければfalse。
func (u *SavedPostUsecase) Unsave(ctx context.Context, userID int64, postID int64) (bool, error) {
	var ok bool

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, found, err := r.SavedBlogPosts().Find(ctx, userID, postID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !found {
			return nil
		}

		if err := r.SavedBlogPosts().Delete(ctx, userID, postID); err != nil {
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

func (u *SavedPostUsecase) ListSaved(ctx context.Context, userID int64) ([]model.SavedBlogPost, error) {
	var items []model.SavedBlogPost

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		saved, err := r.SavedBlogPosts().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		items = saved
		return nil
	})

	if err != nil {
		return []model.SavedBlogPost{}, err
	}
	return items, nil
}
