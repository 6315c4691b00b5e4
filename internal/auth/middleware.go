package auth

import (
	"strings"

	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// Protected requires a valid bearer token and stores the claims in locals.
func Protected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if header == "" || tokenString == header {
			return utils.SendError(c, utils.NewError(fiber.StatusUnauthorized, "Missing or malformed token"))
		}

		claims, err := VerifyToken(secret, tokenString)
		if err != nil {
			return utils.SendError(c, utils.NewError(fiber.StatusUnauthorized, "Invalid or expired token"))
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("username", claims.Username)
		return c.Next()
	}
}
