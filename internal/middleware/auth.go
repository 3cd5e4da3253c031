// Package middleware holds the fiber middleware shared by the protected
// routes.
package middleware

import (
	"strings"

	"paygate/internal/models"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected validates the bearer token and stores the claims in the request
// locals under "claims".
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.Unauthorized(c, "missing authorization header")
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.Unauthorized(c, "invalid authorization format")
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return utils.Unauthorized(c, "invalid token")
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}

// Claims pulls the validated token claims out of the request locals.
func Claims(c *fiber.Ctx) (*models.UserClaims, bool) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	return claims, ok && claims != nil
}
