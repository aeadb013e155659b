package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthConfig configures BearerAuth.
type AuthConfig struct {
	Token string
	// QueryParam, when set, is read if the Authorization header carries no token.
	QueryParam string
}

// BearerAuth rejects requests whose bearer token differs from cfg.Token with
// 401 before any handler runs. An empty configured token rejects everything.
func BearerAuth(cfg AuthConfig) fiber.Handler {
	want := []byte(cfg.Token)
	return func(c *fiber.Ctx) error {
		got := bearerToken(c.Get(fiber.HeaderAuthorization))
		if got == "" && cfg.QueryParam != "" {
			got = c.Query(cfg.QueryParam)
		}
		if len(want) == 0 || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or missing bearer token")
		}
		return c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "bearer "
	header = strings.TrimSpace(header)
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
