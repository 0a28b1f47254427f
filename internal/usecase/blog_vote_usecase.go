package usecase

import (
	"context"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type BlogVoteUsecase struct {
	tx repo.TransactionManager
}

func NewBlogVoteUsecase(tx repo.TransactionManager) *BlogVoteUsecase {
	return &BlogVoteUsecase{tx: tx}
}

// Vote は記事への投票。サービス投票と違って利用実績は要らないが、
// 記事そのものは存在しないといけない。
// 同方向の再投票は何もしない（取り消しはRemoveVoteだけ）。この非対称は仕様。
func (u *BlogVoteUsecase) Vote(ctx context.Context, postID int64, userID int64, isUpvote bool) (bool, error) {
	if postID <= 0 || userID <= 0 {
		return false, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var ok bool

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, err := r.BlogPosts().FindByID(ctx, postID)
		if err == repo.ErrNotFound {
			//操作として不正。ここはハンドラで500（メッセージ付き）になる
			return fmt.Errorf("cannot vote: blog post %d does not exist", postID)
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		existing, found, err := r.BlogPostVotes().FindByPostAndUser(ctx, postID, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		switch {
		case !found:
			_, err = r.BlogPostVotes().Create(ctx, model.BlogPostVote{
				PostID:   postID,
				UserID:   userID,
				IsUpvote: isUpvote,
			})
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		case existing.IsUpvote != isUpvote:
			existing.IsUpvote = isUpvote
			if err := r.BlogPostVotes().Update(ctx, existing); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		default:
			//同方向はno-op。行はそのまま残る
		}

		ok = true
		return nil
	})

	if err != nil {
		return false, err
	}
	return ok, nil
}

// RemoveVote は票を消す。無ければfalse（エラーにはしない）。
func (u *BlogVoteUsecase) RemoveVote(ctx context.Context, postID int64, userID int64) (bool, error) {
	var ok bool

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		existing, found, err := r.BlogPostVotes().FindByPostAndUser(ctx, postID, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !found {
			return nil
		}

		if err := r.BlogPostVotes().Delete(ctx, existing.ID); err != nil {
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

// GetScore は up - down を毎回数えて返す。記事側には保存しない。
func (u *BlogVoteUsecase) GetScore(ctx context.Context, postID int64) (int64, error) {
	var score int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		up, down, err := r.BlogPostVotes().CountByPost(ctx, postID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		score = up - down
		return nil
	})

	if err != nil {
		return 0, err
	}
	return score, nil
}
