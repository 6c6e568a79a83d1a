package routes

import (
	"techsell-web/internal/api/handlers"
	"techsell-web/internal/middleware"
	"techsell-web/pkg/auth"
	"techsell-web/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	AuthHandler    handlers.AuthHandler
	ProductHandler handlers.ProductHandler
	CartHandler    handlers.CartHandler
	OrderHandler   handlers.OrderHandler
	BarterHandler  handlers.BarterHandler
	AdminHandler   handlers.AdminHandler
	NavHandler     handlers.NavHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
	SessionStore   auth.SessionStore
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.SignupRoute()
	c.ProductRoute()
	c.CartRoute()
	c.OrderRoute()
	c.BarterRoute()
	c.AccountRoute()
	c.NavRoute()
	c.AdminRoute()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/signup", c.AuthHandler.Signup)
	c.App.Post("/login", c.AuthHandler.Login)
	c.App.Get("/search", c.ProductHandler.Search)
	c.App.Get("/payment-status", c.OrderHandler.PaymentStatus)
}

// SignupRoute covers the OTP step between signup and the first login. It is
// guarded by the pending-signup record rather than a session token.
func (c *Config) SignupRoute() {
	otp := c.App.Group("/otp", c.Middleware.PendingSignupMiddleware(c.SessionStore))
	{
		otp.Post("/verify", c.AuthHandler.VerifyOtp)
		otp.Post("/resend", c.AuthHandler.ResendOtp)
	}
}

func (c *Config) ProductRoute() {
	products := c.App.Group("/products", c.Middleware.AuthMiddleware(c.JWTService))
	{
		products.Get("", c.ProductHandler.GetProducts)
		products.Get("/featured", c.ProductHandler.GetFeatured)
		products.Get("/category/:categoryName", c.ProductHandler.GetByCategory)
		products.Post("/list", c.ProductHandler.ListProduct)
	}
}

func (c *Config) CartRoute() {
	cart := c.App.Group("/cart", c.Middleware.AuthMiddleware(c.JWTService))
	{
		cart.Get("", c.CartHandler.GetCart)
		cart.Post("/add", c.CartHandler.AddToCart)
		cart.Patch("/update/:id", c.CartHandler.UpdateQuantity)
		cart.Delete("/delete/:id", c.CartHandler.ClearItem)
		cart.Delete("/delete", c.CartHandler.DeleteCart)
	}
}

func (c *Config) OrderRoute() {
	order := c.App.Group("/order", c.Middleware.AuthMiddleware(c.JWTService))
	{
		order.Post("/place-order", c.OrderHandler.PlaceOrder)
		order.Get("/my-orders", c.OrderHandler.MyOrders)
		order.Post("/confirm-delivery", c.OrderHandler.ConfirmDelivery)
	}
}

func (c *Config) BarterRoute() {
	barter := c.App.Group("/barter", c.Middleware.AuthMiddleware(c.JWTService))
	{
		barter.Get("", c.BarterHandler.GetBarterItems)
		barter.Post("/list-item", c.BarterHandler.ListItem)
		barter.Delete("/delist/:id", c.BarterHandler.DelistItem)
		barter.Post("/validate-field", c.BarterHandler.ValidateField)
	}
}

func (c *Config) AccountRoute() {
	account := c.App.Group("/account", c.Middleware.AuthMiddleware(c.JWTService))
	{
		account.Get("/me", c.AuthHandler.Me)
		account.Post("/become-seller", c.AuthHandler.BecomeSeller)
		account.Post("/become-delivery", c.AuthHandler.BecomeDelivery)
		account.Post("/logout", c.AuthHandler.Logout)
	}
}

func (c *Config) NavRoute() {
	nav := c.App.Group("/nav", c.Middleware.AuthMiddleware(c.JWTService))
	{
		nav.Get("", c.NavHandler.GetNav)
		nav.Post("/dropdown", c.NavHandler.ToggleDropdown)
		nav.Post("/mobile-menu", c.NavHandler.ToggleMobileMenu)
		nav.Post("/close", c.NavHandler.CloseMenus)
		nav.Get("/admin-hub", c.NavHandler.AdminHub)
	}
}

func (c *Config) AdminRoute() {
	admin := c.App.Group("/admin", c.Middleware.AuthMiddleware(c.JWTService))
	{
		admin.Get("/products/pending", c.AdminHandler.PendingProducts)
		admin.Patch("/product/:id", c.AdminHandler.ApproveProduct)
		admin.Get("/barter-items", c.AdminHandler.BarterItems)
		admin.Delete("/admin-delist-barter/:id", c.AdminHandler.DelistBarterItem)
		admin.Get("/pending-seller", c.AdminHandler.PendingSellers)
		admin.Patch("/approve-seller/:id", c.AdminHandler.ApproveSeller)
		admin.Get("/pending-delivery-personnel", c.AdminHandler.PendingPersonnel)
		admin.Get("/approved-delivery-personnel", c.AdminHandler.ApprovedPersonnel)
		admin.Patch("/approve/delivery-personnel/:id", c.AdminHandler.ApproveDeliveryPersonnel)
	}
}
