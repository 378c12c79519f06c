package main

import (
	"Spendwise-Backend/cmd/config"
	migration "Spendwise-Backend/cmd/database/migrate"
	"Spendwise-Backend/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("Error creating app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
