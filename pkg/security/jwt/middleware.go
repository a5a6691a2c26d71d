package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UserEmailKey is the Locals key under which the middleware stores the
// authenticated caller's email.
const UserEmailKey = "userEmail"

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT
// (HS256) before the handler body runs. Exactly one Authorization header is
// required. On success the token subject is set into c.Locals(UserEmailKey).
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		headers := c.GetReqHeaders()["Authorization"]
		if len(headers) == 0 {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		if len(headers) > 1 {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "multiple Authorization headers"})
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		tokenStr := strings.TrimSpace(headers[0])
		if after, ok := strings.CutPrefix(tokenStr, "Bearer "); ok {
			tokenStr = strings.TrimSpace(after)
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "empty token"})
		}
		claims, err := parseClaims(tokenStr, secretBytes, expectedIssuer)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		c.Locals(UserEmailKey, claims.Subject)
		return c.Next()
	}
}
