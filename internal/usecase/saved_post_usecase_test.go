package usecase

import (
	"context"
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSavedPostFixture() (*SavedBlogPostRepoMock, *SavedPostUsecase) {
	saved := &SavedBlogPostRepoMock{}
	tm := newTxManager(&TxReposStub{savedBlogPosts: saved})
	return saved, NewSavedPostUsecase(tm)
}

func TestSavePost_FirstTime_Creates(t *testing.T) {
	saved, uc := newSavedPostFixture()

	saved.On("Find", mock.Anything, int64(3), int64(20)).
		Return(model.SavedBlogPost{}, false, nil)
	saved.On("Create", mock.Anything, mock.MatchedBy(func(s model.SavedBlogPost) bool {
		return s.UserID == 3 && s.PostID == 20
	})).Return(nil)

	ok, err := uc.Save(context.Background(), 3, 20)

	assert.NoError(t, err)
	assert.True(t, ok)
	saved.AssertExpectations(t)
}

func TestSavePost_AlreadySaved_NoDuplicate(t *testing.T) {
	saved, uc := newSavedPostFixture()

	saved.On("Find", mock.Anything, int64(3), int64(20)).
		Return(model.SavedBlogPost{UserID: 3, PostID: 20}, true, nil)

	ok, err := uc.Save(context.Background(), 3, 20)

	//既にあってもエラーにしない。行も増やさない
	assert.NoError(t, err)
	assert.True(t, ok)
	saved.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUnsave_Missing_ReturnsFalse(t *testing.T) {
	saved, uc := newSavedPostFixture()

	saved.On("Find", mock.Anything, int64(3), int64(20)).
		Return(model.SavedBlogPost{}, false, nil)

	ok, err := uc.Unsave(context.Background(), 3, 20)

	assert.NoError(t, err)
	assert.False(t, ok)
	saved.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
