package repository

import (
	"app/internal/domain/model"
	"context"
)

type SavedBlogPostRepository interface {
	Find(ctx context.Context, userID int64, postID int64) (model.SavedBlogPost, bool, error)
	Create(ctx context.Context, s model.SavedBlogPost) error
	Delete(ctx context.Context, userID int64, postID int64) error
	ListByUserID(ctx context.Context, userID int64) ([]model.SavedBlogPost, error)
}
