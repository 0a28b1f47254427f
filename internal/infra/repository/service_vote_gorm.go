package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ServiceVoteGormRepository struct {
	db *gorm.DB
}

func NewServiceVoteGormRepository(db *gorm.DB) *ServiceVoteGormRepository {
	return &ServiceVoteGormRepository{db: db}
}

// 見つからないのはエラーではないのでboolで返す
func (r *ServiceVoteGormRepository) FindByServiceAndUser(ctx context.Context, serviceID int64, userID int64) (model.ServiceVote, bool, error) {
	var v model.ServiceVote
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND user_id = ?", serviceID, userID).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ServiceVote{}, false, nil
	}
	if err != nil {
		return model.ServiceVote{}, false, err
	}
	return v, true, nil
}

func (r *ServiceVoteGormRepository) Create(ctx context.Context, v model.ServiceVote) (model.ServiceVote, error) {
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		return model.ServiceVote{}, err
	}
	return v, nil
}

func (r *ServiceVoteGormRepository) Update(ctx context.Context, v model.ServiceVote) error {
	res := r.db.WithContext(ctx).Save(&v)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ServiceVoteGormRepository) Delete(ctx context.Context, voteID int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", voteID).
		Delete(&model.ServiceVote{}).Error
}

// up/downを別々にCOUNTする（全行再集計）
func (r *ServiceVoteGormRepository) CountByService(ctx context.Context, serviceID int64) (int64, int64, error) {
	var up int64
	err := r.db.WithContext(ctx).Model(&model.ServiceVote{}).
		Where("service_id = ? AND is_upvote = ?", serviceID, true).
		Count(&up).Error
	if err != nil {
		return 0, 0, err
	}

	var down int64
	err = r.db.WithContext(ctx).Model(&model.ServiceVote{}).
		Where("service_id = ? AND is_upvote = ?", serviceID, false).
		Count(&down).Error
	if err != nil {
		return 0, 0, err
	}

	return up, down, nil
}
