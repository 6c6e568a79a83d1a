package config

import (
	"os"
	"time"

	"techsell-web/internal/api/handlers"
	"techsell-web/internal/api/routes"
	"techsell-web/internal/middleware"
	"techsell-web/internal/utils"
	"techsell-web/internal/utils/storage"
	"techsell-web/pkg/admin"
	"techsell-web/pkg/auth"
	"techsell-web/pkg/barter"
	"techsell-web/pkg/cart"
	"techsell-web/pkg/gateway"
	"techsell-web/pkg/jwt"
	"techsell-web/pkg/order"
	"techsell-web/pkg/product"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func NewApp(backend *gateway.Client) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Remote
	productRemote := product.NewProductRemote(backend)
	cartRemote := cart.NewCartRemote(backend)
	orderRemote := order.NewOrderRemote(backend)
	barterRemote := barter.NewBarterRemote(backend)
	adminRemote := admin.NewAdminRemote(backend)

	// Service
	jwtService := jwt.NewJWTService()
	sessionStore := auth.NewSessionStore()
	authService := auth.NewAuthService(sessionStore, backend, jwtService)
	productService := product.NewProductService(productRemote, s3)
	cartService := cart.NewCartService(cartRemote)
	orderService := order.NewOrderService(orderRemote)
	barterService := barter.NewBarterService(barterRemote, s3)
	adminService := admin.NewAdminService(adminRemote)

	// Handler
	authHandler := handlers.NewAuthHandler(authService, validator)
	productHandler := handlers.NewProductHandler(productService, authService, validator)
	cartHandler := handlers.NewCartHandler(cartService, authService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, authService, validator)
	barterHandler := handlers.NewBarterHandler(barterService, authService, validator)
	adminHandler := handlers.NewAdminHandler(adminService, authService)
	navHandler := handlers.NewNavHandler(authService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		AuthHandler:    authHandler,
		ProductHandler: productHandler,
		CartHandler:    cartHandler,
		OrderHandler:   orderHandler,
		BarterHandler:  barterHandler,
		AdminHandler:   adminHandler,
		NavHandler:     navHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
		SessionStore:   sessionStore,
	}
	routesConfig.Setup()
	return app, nil
}
