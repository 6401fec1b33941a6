package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lapak/internal/handlers"
	"lapak/internal/middleware"
	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"
	"lapak/pkg/rabbitmq"
)

// Config holds all process configuration, loaded once at startup.
type Config struct {
	AppPort        string
	DatabaseDriver string
	DatabaseDSN    string
	JWTSecret      string
	RabbitMQURL    string
}

// loadConfig reads configuration from the environment with development
// defaults. JWT_SECRET must be overridden in any real deployment.
func loadConfig() Config {
	viper.SetDefault("APP_PORT", ":4000")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "lapak.db")
	viper.SetDefault("JWT_SECRET", "insecure-dev-secret")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.AutomaticEnv()

	return Config{
		AppPort:        viper.GetString("APP_PORT"),
		DatabaseDriver: viper.GetString("DATABASE_DRIVER"),
		DatabaseDSN:    viper.GetString("DATABASE_DSN"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		RabbitMQURL:    viper.GetString("RABBITMQ_URL"),
	}
}

// openDatabase opens the configured GORM backend and runs migrations.
func openDatabase(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DatabaseDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseDSN)
	default:
		dialector = sqlite.Open(cfg.DatabaseDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Product{}, &models.User{}, &models.Order{}); err != nil {
		return nil, err
	}
	return db, nil
}

// newApp wires repositories, services and handlers into a Fiber app. The
// RabbitMQ client may be nil, in which case order events are not published.
func newApp(db *gorm.DB, mqClient *rabbitmq.Client, cfg Config) *fiber.App {
	productRepo := repositories.NewGORMProductRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	productService := services.NewProductService(productRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	orderService := services.NewOrderService(orderRepo, mqClient)

	productHandler := handlers.NewProductHandler(productService)
	authHandler := handlers.NewAuthHandler(authService)
	orderHandler := handlers.NewOrderHandler(orderService)

	app := fiber.New()
	app.Use(logger.New()) // Request logger

	// Liveness probe.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("lapak API is running")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")

	// Public routes.
	authHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)

	// Protected routes.
	protected := api.Group("", middleware.AuthRequired(authService))
	orderHandler.RegisterRoutes(protected)
	productHandler.RegisterProtectedRoutes(protected)

	return app
}

func main() {
	cfg := loadConfig()

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// RabbitMQ is optional: without it the API still works, order events
	// are simply not published.
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	}

	app := newApp(db, mqClient, cfg)

	// Consume order events. A real deployment would run this in a separate
	// worker process; here a goroutine that logs each event is enough.
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for order events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received %s event (tag %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	log.Printf("Starting server on %s", cfg.AppPort)

	// Graceful shutdown handling.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
