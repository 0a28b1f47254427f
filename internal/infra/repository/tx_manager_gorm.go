package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders         repo.OrderRepository
	services       repo.ServiceRepository
	serviceVotes   repo.ServiceVoteRepository
	blogPosts      repo.BlogPostRepository
	blogPostVotes  repo.BlogPostVoteRepository
	postComments   repo.PostCommentRepository
	savedBlogPosts repo.SavedBlogPostRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository                 { return r.orders }
func (r *txReposGorm) Services() repo.ServiceRepository             { return r.services }
func (r *txReposGorm) ServiceVotes() repo.ServiceVoteRepository     { return r.serviceVotes }
func (r *txReposGorm) BlogPosts() repo.BlogPostRepository           { return r.blogPosts }
func (r *txReposGorm) BlogPostVotes() repo.BlogPostVoteRepository   { return r.blogPostVotes }
func (r *txReposGorm) PostComments() repo.PostCommentRepository     { return r.postComments }
func (r *txReposGorm) SavedBlogPosts() repo.SavedBlogPostRepository { return r.savedBlogPosts }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:         NewOrderGormRepository(tx),
			services:       NewServiceGormRepository(tx),
			serviceVotes:   NewServiceVoteGormRepository(tx),
			blogPosts:      NewBlogPostGormRepository(tx),
			blogPostVotes:  NewBlogPostVoteGormRepository(tx),
			postComments:   NewPostCommentGormRepository(tx),
			savedBlogPosts: NewSavedBlogPostGormRepository(tx),
		}
		return fn(r)
	})
}
