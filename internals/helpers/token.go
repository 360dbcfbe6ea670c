package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"magangku_backend/internals/middlewares/auth"
)

// GetUserIDFromToken membaca user_id yang sudah di-hydrate middleware AuthJWT.
// Error berupa *fiber.Error supaya gampang diteruskan via helper.FromFiberError.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals(auth.LocUserID)
	if raw == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: token tidak valid")
	}

	switch v := raw.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		parsed, err := uuid.Parse(strings.TrimSpace(v))
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak valid dalam token")
		}
		return parsed, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak dikenali")
	}
}

// GetRoleFromToken membaca role dari locals (di-set middleware)
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals(auth.LocUserRole).(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
	}
	return role, nil
}
