package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type SavedBlogPostGormRepository struct {
	db *gorm.DB
}

func NewSavedBlogPostGormRepository(db *gorm.DB) *SavedBlogPostGormRepository {
	return &SavedBlogPostGormRepository{db: db}
}

func (r *SavedBlogPostGormRepository) Find(ctx context.Context, userID int64, postID int64) (model.SavedBlogPost, bool, error) {
	var s model.SavedBlogPost
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SavedBlogPost{}, false, nil
	}
	if err != nil {
		return model.SavedBlogPost{}, false, err
	}
	return s, true, nil
}

func (r *SavedBlogPostGormRepository) Create(ctx context.Context, s model.SavedBlogPost) error {
	return r.db.WithContext(ctx).Create(&s).Error
}

func (r *SavedBlogPostGormRepository) Delete(ctx context.Context, userID int64, postID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.SavedBlogPost{}).Error
}

func (r *SavedBlogPostGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.SavedBlogPost, error) {
	var items []model.SavedBlogPost
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return []model.SavedBlogPost{}, err
	}
	return items, nil
}
