package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type BlogPostGormRepository struct {
	db *gorm.DB
}

func NewBlogPostGormRepository(db *gorm.DB) *BlogPostGormRepository {
	return &BlogPostGormRepository{db: db}
}

func (r *BlogPostGormRepository) List(ctx context.Context, page int, limit int) ([]model.BlogPost, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.BlogPost{}).Count(&total).Error; err != nil {
		return []model.BlogPost{}, 0, err
	}

	var items []model.BlogPost
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return []model.BlogPost{}, 0, err
	}

	return items, total, nil
}

func (r *BlogPostGormRepository) FindByID(ctx context.Context, id int64) (model.BlogPost, error) {
	var p model.BlogPost
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.BlogPost{}, repo.ErrNotFound
	}
	if err != nil {
		return model.BlogPost{}, err
	}
	return p, nil
}

func (r *BlogPostGormRepository) Create(ctx context.Context, p model.BlogPost) (model.BlogPost, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.BlogPost{}, err
	}
	return p, nil
}
