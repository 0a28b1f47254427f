package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) List(ctx context.Context, page int, limit int) ([]model.Service, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Service{}).Count(&total).Error; err != nil {
		return []model.Service{}, 0, err
	}

	var items []model.Service
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return []model.Service{}, 0, err
	}

	return items, total, nil
}

func (r *ServiceGormRepository) FindByID(ctx context.Context, id int64) (model.Service, error) {
	var s model.Service
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Service{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Service{}, err
	}
	return s, nil
}

func (r *ServiceGormRepository) Create(ctx context.Context, s model.Service) (model.Service, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Service{}, err
	}
	return s, nil
}

func (r *ServiceGormRepository) Update(ctx context.Context, s model.Service) error {
	res := r.db.WithContext(ctx).Save(&s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
