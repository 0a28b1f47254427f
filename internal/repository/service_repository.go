package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// サービス（出品）の永続化だけを約束。
type ServiceRepository interface {
	List(ctx context.Context, page int, limit int) ([]model.Service, int64, error)
	FindByID(ctx context.Context, id int64) (model.Service, error)

	Create(ctx context.Context, s model.Service) (model.Service, error)
	// Update は投票数カウンタの書き戻しにも使う
	Update(ctx context.Context, s model.Service) error
}
