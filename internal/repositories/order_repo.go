package repositories

import (
	"lapak/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// immutable once placed, so there is no update or delete.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
}
