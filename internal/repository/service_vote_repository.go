package repository

import (
	"app/internal/domain/model"
	"context"
)

// 1ユーザー1票の約束はDB制約ではなくusecase側のFindByServiceAndUserで守る
type ServiceVoteRepository interface {
	FindByServiceAndUser(ctx context.Context, serviceID int64, userID int64) (model.ServiceVote, bool, error)
	Create(ctx context.Context, v model.ServiceVote) (model.ServiceVote, error)
	Update(ctx context.Context, v model.ServiceVote) error
	Delete(ctx context.Context, voteID int64) error

	// 全行を数え直す（差分更新はしない）
	CountByService(ctx context.Context, serviceID int64) (upvotes int64, downvotes int64, err error)
}
