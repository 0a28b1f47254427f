package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type BlogPostUsecase struct {
	posts repo.BlogPostRepository
}

// DI
func NewBlogPostUsecase(posts repo.BlogPostRepository) *BlogPostUsecase {
	return &BlogPostUsecase{posts: posts}
}

type CreateBlogPostInput struct {
	Title   string
	Content string
}

type BlogPostListOutput struct {
	Items []model.BlogPost `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

func (u *BlogPostUsecase) Create(ctx context.Context, authorID int64, in CreateBlogPostInput) (model.BlogPost, error) {
	if authorID <= 0 {
		return model.BlogPost{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" || len(title) > 255 {
		return model.BlogPost{}, NewHTTPError(http.StatusBadRequest, "invalid title")
	}

	created, err := u.posts.Create(ctx, model.BlogPost{
		AuthorID: authorID,
		Title:    title,
		Content:  in.Content,
	})
	if err != nil {
		return model.BlogPost{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created, nil
}

func (u *BlogPostUsecase) Get(ctx context.Context, id int64) (model.BlogPost, error) {
	if id <= 0 {
		return model.BlogPost{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.posts.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.BlogPost{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.BlogPost{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}

func (u *BlogPostUsecase) List(ctx context.Context, page int, limit int) (BlogPostListOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := u.posts.List(ctx, page, limit)
	if err != nil {
		return BlogPostListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return BlogPostListOutput{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}
