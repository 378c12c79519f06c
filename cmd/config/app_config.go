package config

import (
	"Spendwise-Backend/internal/api/handlers"
	"Spendwise-Backend/internal/api/routes"
	"Spendwise-Backend/internal/middleware"
	"Spendwise-Backend/internal/utils"
	"Spendwise-Backend/internal/utils/storage"
	"Spendwise-Backend/pkg/advisory"
	"Spendwise-Backend/pkg/jwt"
	"Spendwise-Backend/pkg/ledger"
	"Spendwise-Backend/pkg/ocr"
	"Spendwise-Backend/pkg/receipt"
	"Spendwise-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
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

	// Repository
	userRepository := user.NewUserRepository(db)
	receiptRepository := receipt.NewReceiptRepository(db)
	advisoryRepository := advisory.NewAdvisoryRepository(db)
	ledgerRepository := ledger.NewLedgerRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	recognizer := ocr.NewRecognizer()
	advisor := advisory.NewAdvisoryService()
	userService := user.NewUserService(userRepository, jwtService)
	receiptService := receipt.NewReceiptService(receiptRepository, userRepository, recognizer, advisor, s3)
	advisoryLogService := advisory.NewAdvisoryLogService(advisoryRepository)
	ledgerService := ledger.NewLedgerService(ledgerRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)
	advisoryHandler := handlers.NewAdvisoryHandler(advisoryLogService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		ReceiptHandler:  receiptHandler,
		AdvisoryHandler: advisoryHandler,
		LedgerHandler:   ledgerHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
