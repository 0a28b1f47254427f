package model

import "time"

// SavedBlogPost is a bookmark. Composite key: at most one row per
// (user_id, post_id). Rows are only created and removed, never updated.
type SavedBlogPost struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	PostID    int64     `gorm:"primaryKey;autoIncrement:false" json:"postId"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}
