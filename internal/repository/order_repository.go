package repository

import (
	"app/internal/domain/model"
	"context"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	Create(ctx context.Context, order model.Order) (model.Order, error)
	Update(ctx context.Context, order model.Order) error

	ListByAuthorID(ctx context.Context, authorID int64) ([]model.Order, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error)
	// 作者または購入者として関わる注文（通知用）
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)

	// 投票資格チェック：customerとしてFinishedの注文があるか
	HasFinishedOrder(ctx context.Context, serviceID int64, customerID int64) (bool, error)
}
