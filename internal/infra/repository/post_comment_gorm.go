package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PostCommentGormRepository struct {
	db *gorm.DB
}

func NewPostCommentGormRepository(db *gorm.DB) *PostCommentGormRepository {
	return &PostCommentGormRepository{db: db}
}

func (r *PostCommentGormRepository) FindByID(ctx context.Context, commentID int64) (model.PostComment, error) {
	var c model.PostComment
	err := r.db.WithContext(ctx).Where("id = ?", commentID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PostComment{}, repo.ErrNotFound
	}
	if err != nil {
		return model.PostComment{}, err
	}
	return c, nil
}

func (r *PostCommentGormRepository) Create(ctx context.Context, c model.PostComment) (model.PostComment, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.PostComment{}, err
	}
	return c, nil
}

func (r *PostCommentGormRepository) Update(ctx context.Context, c model.PostComment) error {
	res := r.db.WithContext(ctx).Save(&c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PostCommentGormRepository) Delete(ctx context.Context, commentID int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", commentID).
		Delete(&model.PostComment{}).Error
}

// 並び順は保証しない（挿入順になるだけ）
func (r *PostCommentGormRepository) ListByPostID(ctx context.Context, postID int64) ([]model.PostComment, error) {
	var items []model.PostComment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Find(&items).Error
	if err != nil {
		return []model.PostComment{}, err
	}
	return items, nil
}
