package routes

import (
	"Spendwise-Backend/internal/api/handlers"
	"Spendwise-Backend/internal/middleware"
	"Spendwise-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	ReceiptHandler  handlers.ReceiptHandler
	AdvisoryHandler handlers.AdvisoryHandler
	LedgerHandler   handlers.LedgerHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Receipts()
	c.Advisory()
	c.Ledger()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Put("/language", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateLanguage)
	}
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/v1/receipts", c.Middleware.AuthMiddleware(c.JWTService))

	receipts.Post("/upload", c.ReceiptHandler.UploadReceipt)
	receipts.Get("", c.ReceiptHandler.GetReceipts)
	receipts.Get("/:id/advice", c.ReceiptHandler.GetAdvice)
}

func (c *Config) Advisory() {
	advisory := c.App.Group("/api/v1/advisory", c.Middleware.AuthMiddleware(c.JWTService))

	advisory.Get("/logs", c.AdvisoryHandler.GetAdvisoryLogs)
}

func (c *Config) Ledger() {
	ledger := c.App.Group("/api/v1/ledger", c.Middleware.AuthMiddleware(c.JWTService))

	ledger.Get("/summary", c.LedgerHandler.GetSummary)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
