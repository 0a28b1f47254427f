package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ServiceVoteUsecase struct {
	tx repo.TransactionManager
}

func NewServiceVoteUsecase(tx repo.TransactionManager) *ServiceVoteUsecase {
	return &ServiceVoteUsecase{tx: tx}
}

// Vote はサービスへの投票。customerとしてFinishedの注文が無いと投票できない。
// 同方向の再投票は取り消し（行を消す）、逆方向は行をその場で書き換える。
// どのパターンでも最後にservice_votesを全件数え直してServiceのカウンタへ書き戻す。
func (u *ServiceVoteUsecase) Vote(ctx context.Context, serviceID int64, userID int64, isUpvote bool) (bool, error) {
	if serviceID <= 0 || userID <= 0 {
		return false, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var ok bool

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//資格チェック
		eligible, err := r.Orders().HasFinishedOrder(ctx, serviceID, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !eligible {
			return nil
		}

		//既存票の有無で分岐（ここは read-before-write で、一意制約は無い）
		existing, found, err := r.ServiceVotes().FindByServiceAndUser(ctx, serviceID, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		switch {
		case !found:
			_, err = r.ServiceVotes().Create(ctx, model.ServiceVote{
				ServiceID: serviceID,
				UserID:    userID,
				IsUpvote:  isUpvote,
				CreatedAt: time.Now(),
			})
		case existing.IsUpvote == isUpvote:
			//同じ方向をもう一度＝取り消し
			err = r.ServiceVotes().Delete(ctx, existing.ID)
		default:
			//逆方向＝その場で上書き
			existing.IsUpvote = isUpvote
			err = r.ServiceVotes().Update(ctx, existing)
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カウンタは差分ではなく全件再集計
		up, down, err := r.ServiceVotes().CountByService(ctx, serviceID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		svc, err := r.Services().FindByID(ctx, serviceID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		svc.Upvotes = up
		svc.Downvotes = down
		if err := r.Services().Update(ctx, svc); err != nil {
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

// GetUserVote はユーザーの票を返す。無ければnil。
func (u *ServiceVoteUsecase) GetUserVote(ctx context.Context, serviceID int64, userID int64) (*model.ServiceVote, error) {
	var vote *model.ServiceVote

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		v, found, err := r.ServiceVotes().FindByServiceAndUser(ctx, serviceID, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if found {
			vote = &v
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return vote, nil
}
