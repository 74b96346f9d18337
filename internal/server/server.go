package server

import (
	"log"

	"gps-tracking-be/internal/bootstrap"
	"gps-tracking-be/internal/config"
	"gps-tracking-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, receipts included
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	RegisterRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func RegisterRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.ClientController.RegisterRoutes(api)
	c.CarController.RegisterRoutes(api)
	c.PaymentMethodController.RegisterRoutes(api)
	c.DurationController.RegisterRoutes(api)

	c.SubscriptionController.RegisterRoutes(api)
	c.PaymentController.RegisterRoutes(api)
	c.InvoiceController.RegisterRoutes(api)

	c.DeviceController.RegisterRoutes(api)
	c.InstallerController.RegisterRoutes(api)
	c.InstallationController.RegisterRoutes(api)
	c.InterventionTypeController.RegisterRoutes(api)
	c.InterventionController.RegisterRoutes(api)

	c.DashboardController.RegisterRoutes(api)
	c.SystemController.RegisterRoutes(api)
	c.LedgerFeedController.RegisterRoutes(api)
}
