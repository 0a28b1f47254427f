package model

import "time"

type BlogPostVote struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"not null;index" json:"postId"`
	UserID    int64     `gorm:"not null;index" json:"userId"`
	IsUpvote  bool      `gorm:"not null" json:"isUpvote"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
