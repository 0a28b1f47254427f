package model

import "time"

// ServiceVote is one user's vote on one service. Uniqueness per
// (service_id, user_id) is enforced in the usecase by looking up the
// existing row before inserting, not by a DB constraint.
type ServiceVote struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceID int64     `gorm:"not null;index" json:"serviceId"`
	UserID    int64     `gorm:"not null;index" json:"userId"`
	IsUpvote  bool      `gorm:"not null" json:"isUpvote"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
