package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 確認ロール（大文字小文字は区別しない）
const (
	ConfirmRoleAuthor   = "author"
	ConfirmRoleCustomer = "customer"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type PlaceOrderInput struct {
	ServiceID  int64
	CustomerID int64
	Message    *string
}

type OrderOutput struct {
	ID                int64      `json:"id"`
	ServiceID         int64      `json:"serviceId"`
	AuthorID          int64      `json:"authorId"`
	CustomerID        int64      `json:"customerId"`
	Status            string     `json:"status"`
	AuthorConfirmed   bool       `json:"authorConfirmed"`
	CustomerConfirmed bool       `json:"customerConfirmed"`
	Message           string     `json:"message"`
	CreatedAt         time.Time  `json:"createdAt"`
	AcceptedAt        *time.Time `json:"acceptedAt"`
	CompletedAt       *time.Time `json:"completedAt"`
}

// PlaceOrder は注文を作る。作者IDは注文時点のサービス所有者から写す。
// サービスが無い場合だけはエラー（404）で返す。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderOutput, error) {
	if in.ServiceID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid serviceId")
	}
	if in.CustomerID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid customerId")
	}

	//messageはnull可。nullなら空文字にする
	message := ""
	if in.Message != nil {
		message = *in.Message
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		svc, err := r.Services().FindByID(ctx, in.ServiceID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "service not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//同じ(service, customer)の注文が複数できても止めない
		created, err := r.Orders().Create(ctx, model.Order{
			ServiceID:         in.ServiceID,
			AuthorID:          svc.OwnerID,
			CustomerID:        in.CustomerID,
			Status:            model.OrderStatusPending,
			AuthorConfirmed:   false,
			CustomerConfirmed: false,
			Message:           message,
			CreatedAt:         time.Now(),
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(created)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// AcceptOrder は状態を見ずにAcceptedへ上書きする。
// 注文が無ければ false（エラーにはしない）。
func (u *OrderUsecase) AcceptOrder(ctx context.Context, orderID int64) (bool, error) {
	var ok bool

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return nil
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		now := time.Now()
		o.Status = model.OrderStatusAccepted
		o.AcceptedAt = &now

		if err := r.Orders().Update(ctx, o); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		ok = true
		return nil
	})

	if err != nil {
		return false, err
	}
	return ok, nil
}

// RefuseOrder も同じく無条件でRefusedへ上書きする。
func (u *OrderUsecase) RefuseOrder(ctx context.Context, orderID int64) (bool, error) {
	var ok bool

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return nil
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o.Status = model.OrderStatusRefused

		if err := r.Orders().Update(ctx, o); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		ok = true
		return nil
	})

	if err != nil {
		return false, err
	}
	return ok, nil
}

// ConfirmOrder は役割側の確認フラグを立てる。両方trueになったらFinished。
// 事前状態のガードはあえて入れていない（Pending/Refusedでも確認できる）。
func (u *OrderUsecase) ConfirmOrder(ctx context.Context, orderID int64, role string) (bool, error) {
	var ok bool

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return nil
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		switch strings.ToLower(strings.TrimSpace(role)) {
		case ConfirmRoleAuthor:
			o.AuthorConfirmed = true
		case ConfirmRoleCustomer:
			o.CustomerConfirmed = true
		default:
			//知らないロールは何もせずfalse
			return nil
		}

		if o.AuthorConfirmed && o.CustomerConfirmed {
			now := time.Now()
			o.Status = model.OrderStatusFinished
			o.CompletedAt = &now
		}

		if err := r.Orders().Update(ctx, o); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		ok = true
		return nil
	})

	if err != nil {
		return false, err
	}
	return ok, nil
}

func (u *OrderUsecase) GetOrdersForAuthor(ctx context.Context, authorID int64) ([]OrderOutput, error) {
	return u.listOrders(ctx, func(ctx context.Context, r repo.TxRepos) ([]model.Order, error) {
		return r.Orders().ListByAuthorID(ctx, authorID)
	})
}

func (u *OrderUsecase) GetOrdersForCustomer(ctx context.Context, customerID int64) ([]OrderOutput, error) {
	return u.listOrders(ctx, func(ctx context.Context, r repo.TxRepos) ([]model.Order, error) {
		return r.Orders().ListByCustomerID(ctx, customerID)
	})
}

// 作者または購入者として関わる注文（通知欄用）
func (u *OrderUsecase) GetOrdersForUser(ctx context.Context, userID int64) ([]OrderOutput, error) {
	return u.listOrders(ctx, func(ctx context.Context, r repo.TxRepos) ([]model.Order, error) {
		return r.Orders().ListByUserID(ctx, userID)
	})
}

func (u *OrderUsecase) listOrders(ctx context.Context, find func(ctx context.Context, r repo.TxRepos) ([]model.Order, error)) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := find(ctx, r)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			outs = append(outs, toOrderOutput(o))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func toOrderOutput(o model.Order) OrderOutput {
	return OrderOutput{
		ID:                o.ID,
		ServiceID:         o.ServiceID,
		AuthorID:          o.AuthorID,
		CustomerID:        o.CustomerID,
		Status:            string(o.Status),
		AuthorConfirmed:   o.AuthorConfirmed,
		CustomerConfirmed: o.CustomerConfirmed,
		Message:           o.Message,
		CreatedAt:         o.CreatedAt,
		AcceptedAt:        o.AcceptedAt,
		CompletedAt:       o.CompletedAt,
	}
}
