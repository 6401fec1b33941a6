package repositories

import (
	"lapak/internal/models"
)

// ProductRepository defines the interface for product data access. Products
// are write-once, so there is no update or delete.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
}
