package middleware

import (
	"log"
	"strings"

	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that checks for a valid bearer token.
// On success the authenticated user's ID is stored in c.Locals("user_id");
// nothing else about the request is touched.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if authHeader == "" || len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No token provided",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			// The distinct failure kinds (expired, malformed, bad
			// signature) are logged but all answer the same 401.
			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
			})
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			log.Printf("Token claims missing user_id")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
			})
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
