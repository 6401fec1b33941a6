package services_test

import (
	"testing"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProductService_CreateAndGet(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	product := &models.Product{
		Name:        "Laptop",
		Description: "High performance laptop",
		Price:       1200.00,
		Image:       "https://example.com/laptop.png",
	}
	err := service.CreateProduct(product)
	assert.NoError(t, err)
	assert.NotEmpty(t, product.ID)

	fetched, err := service.GetProductByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, product.Name, fetched.Name)
	assert.Equal(t, product.Price, fetched.Price)
}

func TestProductService_GetAllProducts(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	assert.NoError(t, service.CreateProduct(&models.Product{Name: "Keyboard", Price: 75.00}))
	assert.NoError(t, service.CreateProduct(&models.Product{Name: "Mouse", Price: 25.00}))

	products, err := service.GetAllProducts()
	assert.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductService_GetProductByID_Errors(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	// A malformed ID is rejected before any lookup.
	_, err := service.GetProductByID("not-a-uuid")
	assert.ErrorIs(t, err, repositories.ErrInvalidID)

	// A well-formed but unknown ID is a plain not-found.
	_, err = service.GetProductByID(uuid.New().String())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
