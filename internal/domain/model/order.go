package model

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "Pending"
	OrderStatusAccepted OrderStatus = "Accepted"
	OrderStatusRefused  OrderStatus = "Refused"
	OrderStatusFinished OrderStatus = "Finished"
)

type Order struct {
	ID                int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceID         int64       `gorm:"not null;index" json:"serviceId"`
	AuthorID          int64       `gorm:"not null;index" json:"authorId"`
	CustomerID        int64       `gorm:"not null;index" json:"customerId"`
	Status            OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	AuthorConfirmed   bool        `gorm:"not null;default:false" json:"authorConfirmed"`
	CustomerConfirmed bool        `gorm:"not null;default:false" json:"customerConfirmed"`
	Message           string      `gorm:"type:text;not null;default:''" json:"message"`
	CreatedAt         time.Time   `gorm:"not null;autoCreateTime" json:"createdAt"`
	AcceptedAt        *time.Time  `json:"acceptedAt"`
	CompletedAt       *time.Time  `json:"completedAt"`
}
