package usecase

import (
	"context"
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newServiceVoteFixture() (*OrderRepoMock, *ServiceRepoMock, *ServiceVoteRepoMock, *ServiceVoteUsecase) {
	orders := &OrderRepoMock{}
	services := &ServiceRepoMock{}
	votes := &ServiceVoteRepoMock{}
	tm := newTxManager(&TxReposStub{orders: orders, services: services, serviceVotes: votes})
	return orders, services, votes, NewServiceVoteUsecase(tm)
}

func TestVoteService_NotEligible_ReturnsFalse(t *testing.T) {
	orders, _, votes, uc := newServiceVoteFixture()

	//Finishedの注文が無い＝投票不可
	orders.On("HasFinishedOrder", mock.Anything, int64(10), int64(3)).
		Return(false, nil)

	ok, err := uc.Vote(context.Background(), 10, 3, true)

	assert.NoError(t, err)
	assert.False(t, ok)
	votes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	votes.AssertNotCalled(t, "FindByServiceAndUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestVoteService_FirstVote_InsertsAndRecounts(t *testing.T) {
	orders, services, votes, uc := newServiceVoteFixture()

	orders.On("HasFinishedOrder", mock.Anything, int64(10), int64(3)).Return(true, nil)
	votes.On("FindByServiceAndUser", mock.Anything, int64(10), int64(3)).
		Return(model.ServiceVote{}, false, nil)
	votes.On("Create", mock.Anything, mock.MatchedBy(func(v model.ServiceVote) bool {
		return v.ServiceID == 10 && v.UserID == 3 && v.IsUpvote
	})).Return(model.ServiceVote{ID: 1, ServiceID: 10, UserID: 3, IsUpvote: true}, nil)
	votes.On("CountByService", mock.Anything, int64(10)).
		Return(int64(1), int64(0), nil)
	services.On("FindByID", mock.Anything, int64(10)).
		Return(model.Service{ID: 10, OwnerID: 7}, nil)
	services.On("Update", mock.Anything, mock.MatchedBy(func(s model.Service) bool {
		return s.Upvotes == 1 && s.Downvotes == 0
	})).Return(nil)

	ok, err := uc.Vote(context.Background(), 10, 3, true)

	assert.NoError(t, err)
	assert.True(t, ok)
	votes.AssertExpectations(t)
	services.AssertExpectations(t)
}

func TestVoteService_SameDirection_DeletesVote(t *testing.T) {
	orders, services, votes, uc := newServiceVoteFixture()

	orders.On("HasFinishedOrder", mock.Anything, int64(10), int64(3)).Return(true, nil)
	votes.On("FindByServiceAndUser", mock.Anything, int64(10), int64(3)).
		Return(model.ServiceVote{ID: 1, ServiceID: 10, UserID: 3, IsUpvote: true}, true, nil)
	//同方向の再投票＝取り消し
	votes.On("Delete", mock.Anything, int64(1)).Return(nil)
	votes.On("CountByService", mock.Anything, int64(10)).
		Return(int64(0), int64(0), nil)
	services.On("FindByID", mock.Anything, int64(10)).
		Return(model.Service{ID: 10, Upvotes: 1}, nil)
	services.On("Update", mock.Anything, mock.MatchedBy(func(s model.Service) bool {
		return s.Upvotes == 0 && s.Downvotes == 0
	})).Return(nil)

	ok, err := uc.Vote(context.Background(), 10, 3, true)

	assert.NoError(t, err)
	assert.True(t, ok)
	votes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	votes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	votes.AssertExpectations(t)
}

func TestVoteService_OppositeDirection_UpdatesInPlace(t *testing.T) {
	orders, services, votes, uc := newServiceVoteFixture()

	orders.On("HasFinishedOrder", mock.Anything, int64(10), int64(3)).Return(true, nil)
	votes.On("FindByServiceAndUser", mock.Anything, int64(10), int64(3)).
		Return(model.ServiceVote{ID: 1, ServiceID: 10, UserID: 3, IsUpvote: true}, true, nil)
	//逆方向＝行をその場で書き換え（delete+insertではない）
	votes.On("Update", mock.Anything, mock.MatchedBy(func(v model.ServiceVote) bool {
		return v.ID == 1 && !v.IsUpvote
	})).Return(nil)
	votes.On("CountByService", mock.Anything, int64(10)).
		Return(int64(0), int64(1), nil)
	services.On("FindByID", mock.Anything, int64(10)).
		Return(model.Service{ID: 10, Upvotes: 1}, nil)
	services.On("Update", mock.Anything, mock.MatchedBy(func(s model.Service) bool {
		return s.Upvotes == 0 && s.Downvotes == 1
	})).Return(nil)

	ok, err := uc.Vote(context.Background(), 10, 3, false)

	assert.NoError(t, err)
	assert.True(t, ok)
	votes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	votes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	votes.AssertExpectations(t)
}

func TestGetUserVote_None_ReturnsNil(t *testing.T) {
	_, _, votes, uc := newServiceVoteFixture()

	votes.On("FindByServiceAndUser", mock.Anything, int64(10), int64(3)).
		Return(model.ServiceVote{}, false, nil)

	vote, err := uc.GetUserVote(context.Background(), 10, 3)

	assert.NoError(t, err)
	assert.Nil(t, vote)
}

func TestGetUserVote_Existing(t *testing.T) {
	_, _, votes, uc := newServiceVoteFixture()

	votes.On("FindByServiceAndUser", mock.Anything, int64(10), int64(3)).
		Return(model.ServiceVote{ID: 1, ServiceID: 10, UserID: 3, IsUpvote: true}, true, nil)

	vote, err := uc.GetUserVote(context.Background(), 10, 3)

	assert.NoError(t, err)
	if assert.NotNil(t, vote) {
		assert.True(t, vote.IsUpvote)
	}
}
