package repository

import (
	"app/internal/domain/model"
	"context"
)

type PostCommentRepository interface {
	FindByID(ctx context.Context, commentID int64) (model.PostComment, error)
	Create(ctx context.Context, c model.PostComment) (model.PostComment, error)
	Update(ctx context.Context, c model.PostComment) error
	Delete(ctx context.Context, commentID int64) error
	ListByPostID(ctx context.Context, postID int64) ([]model.PostComment, error)
}
