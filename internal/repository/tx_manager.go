package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	Services() ServiceRepository
	ServiceVotes() ServiceVoteRepository
	BlogPosts() BlogPostRepository
	BlogPostVotes() BlogPostVoteRepository
	PostComments() PostCommentRepository
	SavedBlogPosts() SavedBlogPostRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
