package middleware

import (
	"techsell-web/domain"
	"techsell-web/pkg/auth"
	"techsell-web/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		PendingSignupMiddleware(store auth.SessionStore) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(origin string) bool { return true },
	})
}

// AuthMiddleware admits only requests carrying a valid session token; session
// absence redirects to the login entry point, mirroring the route guards of
// the browser shell.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(domain.SessionCookieName)
		if token == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		userID, roles, err := jwtService.GetSessionByToken(token)
		if err != nil {
			return c.Redirect("/login", fiber.StatusFound)
		}

		c.Locals("user_id", userID)
		c.Locals("roles", roles)
		return c.Next()
	}
}

// PendingSignupMiddleware guards the OTP step: it requires a live pending
// signup record, otherwise the visitor is sent back to signup.
func (m *middleware) PendingSignupMiddleware(store auth.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		signupID := c.Cookies(domain.SignupCookieName)
		if signupID == "" {
			return c.Redirect("/signup", fiber.StatusFound)
		}
		if _, ok := store.GetPending(signupID); !ok {
			return c.Redirect("/signup", fiber.StatusFound)
		}

		c.Locals("signup_id", signupID)
		return c.Next()
	}
}
