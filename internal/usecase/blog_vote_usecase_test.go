package usecase

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBlogVoteFixture() (*BlogPostRepoMock, *BlogPostVoteRepoMock, *BlogVoteUsecase) {
	posts := &BlogPostRepoMock{}
	votes := &BlogPostVoteRepoMock{}
	tm := newTxManager(&TxReposStub{blogPosts: posts, blogPostVotes: votes})
	return posts, votes, NewBlogVoteUsecase(tm)
}

func TestVotePost_MissingPost_Errors(t *testing.T) {
	posts, votes, uc := newBlogVoteFixture()

	posts.On("FindByID", mock.Anything, int64(99)).
		Return(model.BlogPost{}, repo.ErrNotFound)

	_, err := uc.Vote(context.Background(), 99, 3, true)

	//サービス投票と違ってここはエラー（資格ではなく対象の不存在）
	assert.Error(t, err)
	_, isHTTP := AsHTTPError(err)
	assert.False(t, isHTTP)
	votes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVotePost_FirstVote_Creates(t *testing.T) {
	posts, votes, uc := newBlogVoteFixture()

	posts.On("FindByID", mock.Anything, int64(20)).
		Return(model.BlogPost{ID: 20}, nil)
	votes.On("FindByPostAndUser", mock.Anything, int64(20), int64(3)).
		Return(model.BlogPostVote{}, false, nil)
	votes.On("Create", mock.Anything, mock.MatchedBy(func(v model.BlogPostVote) bool {
		return v.PostID == 20 && v.UserID == 3 && v.IsUpvote
	})).Return(model.BlogPostVote{ID: 1, PostID: 20, UserID: 3, IsUpvote: true}, nil)

	ok, err := uc.Vote(context.Background(), 20, 3, true)

	assert.NoError(t, err)
	assert.True(t, ok)
	votes.AssertExpectations(t)
}

func TestVotePost_SameDirection_NoOp(t *testing.T) {
	posts, votes, uc := newBlogVoteFixture()

	posts.On("FindByID", mock.Anything, int64(20)).
		Return(model.BlogPost{ID: 20}, nil)
	votes.On("FindByPostAndUser", mock.Anything, int64(20), int64(3)).
		Return(model.BlogPostVote{ID: 1, PostID: 20, UserID: 3, IsUpvote: true}, true, nil)

	//同方向の再投票は何もしない（サービス投票の取り消しとは違う）
	ok, err := uc.Vote(context.Background(), 20, 3, true)

	assert.NoError(t, err)
	assert.True(t, ok)
	votes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	votes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	votes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestVotePost_OppositeDirection_UpdatesInPlace(t *testing.T) {
	posts, votes, uc := newBlogVoteFixture()

	posts.On("FindByID", mock.Anything, int64(20)).
		Return(model.BlogPost{ID: 20}, nil)
	votes.On("FindByPostAndUser", mock.Anything, int64(20), int64(3)).
		Return(model.BlogPostVote{ID: 1, PostID: 20, UserID: 3, IsUpvote: true}, true, nil)
	votes.On("Update", mock.Anything, mock.MatchedBy(func(v model.BlogPostVote) bool {
		return v.ID == 1 && !v.IsUpvote
	})).Return(nil)

	ok, err := uc.Vote(context.Background(), 20, 3, false)

	assert.NoError(t, err)
	assert.True(t, ok)
	votes.AssertExpectations(t)
}

func TestRemoveVote_NoExisting_ReturnsFalse(t *testing.T) {
	_, votes, uc := newBlogVoteFixture()

	votes.On("FindByPostAndUser", mock.Anything, int64(20), int64(3)).
		Return(model.BlogPostVote{}, false, nil)

	ok, err := uc.RemoveVote(context.Background(), 20, 3)

	//無ければfalse。エラーにはしない
	assert.NoError(t, err)
	assert.False(t, ok)
	votes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRemoveVote_Existing_Deletes(t *testing.T) {
	_, votes, uc := newBlogVoteFixture()

	votes.On("FindByPostAndUser", mock.Anything, int64(20), int64(3)).
		Return(model.BlogPostVote{ID: 1, PostID: 20, UserID: 3, IsUpvote: true}, true, nil)
	votes.On("Delete", mock.Anything, int64(1)).Return(nil)

	ok, err := uc.RemoveVote(context.Background(), 20, 3)

	assert.NoError(t, err)
	assert.True(t, ok)
	votes.AssertExpectations(t)
}

func TestGetScore_UpMinusDown(t *testing.T) {
	_, votes, uc := newBlogVoteFixture()

	votes.On("CountByPost", mock.Anything, int64(20)).
		Return(int64(3), int64(1), nil)

	score, err := uc.GetScore(context.Background(), 20)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), score)
}

func TestGetScore_NoVotes_Zero(t *testing.T) {
	_, votes, uc := newBlogVoteFixture()

	votes.On("CountByPost", mock.Anything, int64(20)).
		Return(int64(0), int64(0), nil)

	score, err := uc.GetScore(context.Background(), 20)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), score)
}
