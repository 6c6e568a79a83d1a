package handlers

import (
	"techsell-web/domain"
	"techsell-web/pkg/auth"

	"github.com/gofiber/fiber/v2"
)

// sessionOf resolves the acting session from the guard-provided user id.
func sessionOf(c *fiber.Ctx, authService auth.AuthService) (*auth.Session, error) {
	userID, _ := c.Locals("user_id").(string)
	session, ok := authService.Session(userID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}
