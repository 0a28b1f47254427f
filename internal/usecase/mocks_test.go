package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposStub struct {
	orders         repo.OrderRepository
	services       repo.ServiceRepository
	serviceVotes   repo.ServiceVoteRepository
	blogPosts      repo.BlogPostRepository
	blogPostVotes  repo.BlogPostVoteRepository
	postComments   repo.PostCommentRepository
	savedBlogPosts repo.SavedBlogPostRepository
}

func (r *TxReposStub) Orders() repo.OrderRepository                 { return r.orders }
func (r *TxReposStub) Services() repo.ServiceRepository             { return r.services }
func (r *TxReposStub) ServiceVotes() repo.ServiceVoteRepository     { return r.serviceVotes }
func (r *TxReposStub) BlogPosts() repo.BlogPostRepository           { return r.blogPosts }
func (r *TxReposStub) BlogPostVotes() repo.BlogPostVoteRepository   { return r.blogPostVotes }
func (r *TxReposStub) PostComments() repo.PostCommentRepository     { return r.postComments }
func (r *TxReposStub) SavedBlogPosts() repo.SavedBlogPostRepository { return r.savedBlogPosts }

func newTxManager(repos *TxReposStub) *TxManagerMock {
	tm := &TxManagerMock{Repos: repos}
	tm.On("WithinTx", mock.Anything).Return(nil)
	return tm
}

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Update(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) ListByAuthorID(ctx context.Context, authorID int64) ([]model.Order, error) {
	args := m.Called(ctx, authorID)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error) {
	args := m.Called(ctx, customerID)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) HasFinishedOrder(ctx context.Context, serviceID int64, customerID int64) (bool, error) {
	args := m.Called(ctx, serviceID, customerID)
	return args.Bool(0), args.Error(1)
}

type ServiceRepoMock struct{ mock.Mock }

func (m *ServiceRepoMock) List(ctx context.Context, page int, limit int) ([]model.Service, int64, error) {
	args := m.Called(ctx, page, limit)
	items, _ := args.Get(0).([]model.Service)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ServiceRepoMock) FindByID(ctx context.Context, id int64) (model.Service, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Service)
	return s, args.Error(1)
}

func (m *ServiceRepoMock) Create(ctx context.Context, s model.Service) (model.Service, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Service)
	return created, args.Error(1)
}

func (m *ServiceRepoMock) Update(ctx context.Context, s model.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type ServiceVoteRepoMock struct{ mock.Mock }

func (m *ServiceVoteRepoMock) FindByServiceAndUser(ctx context.Context, serviceID int64, userID int64) (model.ServiceVote, bool, error) {
	args := m.Called(ctx, serviceID, userID)
	v, _ := args.Get(0).(model.ServiceVote)
	return v, args.Bool(1), args.Error(2)
}

func (m *ServiceVoteRepoMock) Create(ctx context.Context, v model.ServiceVote) (model.ServiceVote, error) {
	args := m.Called(ctx, v)
	created, _ := args.Get(0).(model.ServiceVote)
	return created, args.Error(1)
}

func (m *ServiceVoteRepoMock) Update(ctx context.Context, v model.ServiceVote) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *ServiceVoteRepoMock) Delete(ctx context.Context, voteID int64) error {
	args := m.Called(ctx, voteID)
	return args.Error(0)
}

func (m *ServiceVoteRepoMock) CountByService(ctx context.Context, serviceID int64) (int64, int64, error) {
	args := m.Called(ctx, serviceID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type BlogPostRepoMock struct{ mock.Mock }

func (m *BlogPostRepoMock) List(ctx context.Context, page int, limit int) ([]model.BlogPost, int64, error) {
	args := m.Called(ctx, page, limit)
	items, _ := args.Get(0).([]model.BlogPost)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *BlogPostRepoMock) FindByID(ctx context.Context, id int64) (model.BlogPost, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.BlogPost)
	return p, args.Error(1)
}

func (m *BlogPostRepoMock) Create(ctx context.Context, p model.BlogPost) (model.BlogPost, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.BlogPost)
	return created, args.Error(1)
}

type BlogPostVoteRepoMock struct{ mock.Mock }

func (m *BlogPostVoteRepoMock) FindByPostAndUser(ctx context.Context, postID int64, userID int64) (model.BlogPostVote, bool, error) {
	args := m.Called(ctx, postID, userID)
	v, _ := args.Get(0).(model.BlogPostVote)
	return v, args.Bool(1), args.Error(2)
}

func (m *BlogPostVoteRepoMock) Create(ctx context.Context, v model.BlogPostVote) (model.BlogPostVote, error) {
	args := m.Called(ctx, v)
	created, _ := args.Get(0).(model.BlogPostVote)
	return created, args.Error(1)
}

func (m *BlogPostVoteRepoMock) Update(ctx context.Context, v model.BlogPostVote) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *BlogPostVoteRepoMock) Delete(ctx context.Context, voteID int64) error {
	args := m.Called(ctx, voteID)
	return args.Error(0)
}

func (m *BlogPostVoteRepoMock) CountByPost(ctx context.Context, postID int64) (int64, int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type PostCommentRepoMock struct{ mock.Mock }

func (m *PostCommentRepoMock) FindByID(ctx context.Context, commentID int64) (model.PostComment, error) {
	args := m.Called(ctx, commentID)
	c, _ := args.Get(0).(model.PostComment)
	return c, args.Error(1)
}

func (m *PostCommentRepoMock) Create(ctx context.Context, c model.PostComment) (model.PostComment, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.PostComment)
	return created, args.Error(1)
}

func (m *PostCommentRepoMock) Update(ctx context.Context, c model.PostComment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *PostCommentRepoMock) Delete(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *PostCommentRepoMock) ListByPostID(ctx context.Context, postID int64) ([]model.PostComment, error) {
	args := m.Called(ctx, postID)
	items, _ := args.Get(0).([]model.PostComment)
	return items, args.Error(1)
}

type SavedBlogPostRepoMock struct{ mock.Mock }

func (m *SavedBlogPostRepoMock) Find(ctx context.Context, userID int64, postID int64) (model.SavedBlogPost, bool, error) {
	args := m.Called(ctx, userID, postID)
	s, _ := args.Get(0).(model.SavedBlogPost)
	return s, args.Bool(1), args.Error(2)
}

func (m *SavedBlogPostRepoMock) Create(ctx context.Context, s model.SavedBlogPost) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SavedBlogPostRepoMock) Delete(ctx context.Context, userID int64, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *SavedBlogPostRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.SavedBlogPost, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.SavedBlogPost)
	return items, args.Error(1)
}
