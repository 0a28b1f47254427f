package model

import "time"

// Service is a listing a user offers for sale. Upvotes/Downvotes are
// denormalized counters; they are recomputed from service_votes on every
// vote mutation, never incremented in place.
type Service struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID     int64     `gorm:"not null;index" json:"ownerId"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	Upvotes     int64     `gorm:"not null;default:0" json:"upvotes"`
	Downvotes   int64     `gorm:"not null;default:0" json:"downvotes"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
