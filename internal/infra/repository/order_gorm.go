package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// Update は行全体を書き戻す（load full row → mutate → save の規律）
func (r *OrderGormRepository) Update(ctx context.Context, order model.Order) error {
	res := r.db.WithContext(ctx).Save(&order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) ListByAuthorID(ctx context.Context, authorID int64) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

// 作者または購入者のどちらかとして関わる注文
func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Where("author_id = ? OR customer_id = ?", userID, userID).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

// statusの比較は大文字小文字を区別しない
func (r *OrderGormRepository) HasFinishedOrder(ctx context.Context, serviceID int64, customerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("service_id = ? AND customer_id = ? AND LOWER(status) = ?", serviceID, customerID, "finished").
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
