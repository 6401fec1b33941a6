package models

import "time"

// OrderItem is a single line of an order. Items are value-embedded in their
// order, not records of their own; Price is the price at purchase time.
type OrderItem struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"required,gte=0"`
}

// OrderItems is stored as a single JSON document column alongside the order.
type OrderItems []OrderItem

// Order represents a completed purchase. Orders are immutable once created.
type Order struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string     `json:"userId" gorm:"index;type:varchar(36)" validate:"required"`
	Items     OrderItems `json:"items" gorm:"serializer:json" validate:"required,min=1,dive"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"createdAt"`
}
