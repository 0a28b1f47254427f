package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type BlogPostVoteGormRepository struct {
	db *gorm.DB
}

func NewBlogPostVoteGormRepository(db *gorm.DB) *BlogPostVoteGormRepository {
	return &BlogPostVoteGormRepository{db: db}
}

func (r *BlogPostVoteGormRepository) FindByPostAndUser(ctx context.Context, postID int64, userID int64) (model.BlogPostVote, bool, error) {
	var v model.BlogPostVote
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.BlogPostVote{}, false, nil
	}
	if err != nil {
		return model.BlogPostVote{}, false, err
	}
	return v, true, nil
}

func (r *BlogPostVoteGormRepository) Create(ctx context.Context, v model.BlogPostVote) (model.BlogPostVote, error) {
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		return model.BlogPostVote{}, err
	}
	return v, nil
}

func (r *BlogPostVoteGormRepository) Update(ctx context.Context, v model.BlogPostVote) error {
	res := r.db.WithContext(ctx).Save(&v)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BlogPostVoteGormRepository) Delete(ctx context.Context, voteID int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", voteID).
		Delete(&model.BlogPostVote{}).Error
}

func (r *BlogPostVoteGormRepository) CountByPost(ctx context.Context, postID int64) (int64, int64, error) {
	var up int64
	err := r.db.WithContext(ctx).Model(&model.BlogPostVote{}).
		Where("post_id = ? AND is_upvote = ?", postID, true).
		Count(&up).Error
	if err != nil {
		return 0, 0, err
	}

	var down int64
	err = r.db.WithContext(ctx).Model(&model.BlogPostVote{}).
		Where("post_id = ? AND is_upvote = ?", postID, false).
		Count(&down).Error
	if err != nil {
		return 0, 0, err
	}

	return up, down, nil
}
