package handlers

import (
	"errors"
	"fmt"
	"log"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders. All order routes require
// authentication; the acting user is taken from the request context.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// CreateOrderRequest represents the request body for order placement.
type CreateOrderRequest struct {
	Items []models.OrderItem `json:"items" validate:"required,min=1,dive"`
}

// HandleCreateOrder places a new order for the authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	createdOrder, err := h.service.CreateOrder(userID, req.Items)
	if err != nil {
		if errors.Is(err, services.ErrNoItems) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "At least one item is required for an order",
			})
		}
		log.Printf("Error creating order for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(createdOrder)
}

// HandleGetOrders retrieves the authenticated user's orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	orders, err := h.service.GetOrdersByUser(userID)
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order belonging to the authenticated
// user. Other users' orders answer 404.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	orderID := c.Params("id")

	order, err := h.service.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Invalid order ID %q", orderID),
			})
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		log.Printf("Error getting order %s for user %s: %v", orderID, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
		})
	}
	return c.JSON(order)
}
