package repository

import (
	"app/internal/domain/model"
	"context"
)

type BlogPostRepository interface {
	List(ctx context.Context, page int, limit int) ([]model.BlogPost, int64, error)
	FindByID(ctx context.Context, id int64) (model.BlogPost, error)
	Create(ctx context.Context, p model.BlogPost) (model.BlogPost, error)
}
