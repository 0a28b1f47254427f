package repository

import (
	"app/internal/domain/model"
	"context"
)

type BlogPostVoteRepository interface {
	FindByPostAndUser(ctx context.Context, postID int64, userID int64) (model.BlogPostVote, bool, error)
	Create(ctx context.Context, v model.BlogPostVote) (model.BlogPostVote, error)
	Update(ctx context.Context, v model.BlogPostVote) error
	Delete(ctx context.Context, voteID int64) error

	// スコアは保存しないので毎回ここで数える
	CountByPost(ctx context.Context, postID int64) (upvotes int64, downvotes int64, err error)
}
