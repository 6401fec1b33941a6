package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/pkg/rabbitmq"
)

// ErrNoItems is returned when an order is placed with no items.
var ErrNoItems = errors.New("order must contain at least one item")

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client // nil when event publishing is disabled
}

// NewOrderService creates a new OrderService. mqClient may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// CreateOrder places an order for the given user. The total is the sum of
// price*quantity over the submitted items; item prices are taken verbatim
// from the request and are not re-checked against the catalog.
func (s *OrderService) CreateOrder(userID string, items []models.OrderItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	newOrder := &models.Order{
		UserID:    userID,
		Items:     items,
		Total:     total,
		CreatedAt: time.Now(),
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	// Publish an order.created event. Publish failures are logged, never
	// surfaced: the order is already persisted at this point.
	if s.mqClient != nil {
		event := map[string]interface{}{
			"orderID": newOrder.ID,
			"userID":  newOrder.UserID,
			"total":   newOrder.Total,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal order event to JSON: %v", err)
		} else if err := s.mqClient.Publish("order.created", body); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %s: %v", newOrder.ID, err)
		}
	}

	return newOrder, nil
}

// GetOrdersByUser retrieves all orders placed by the given user.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetOrderForUser retrieves a single order, but only if it belongs to the
// given user. Another user's order is reported as not found rather than
// forbidden, so order IDs leak nothing.
func (s *OrderService) GetOrderForUser(userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %s: %w", orderID, repositories.ErrNotFound)
	}
	return order, nil
}
