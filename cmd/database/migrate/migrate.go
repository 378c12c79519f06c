package migration

import (
	"Spendwise-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Receipt{}); err != nil {
		log.Fatalf("Error migrating receipt database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ReceiptItem{}); err != nil {
		log.Fatalf("Error migrating receipt item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.AdvisoryLog{}); err != nil {
		log.Fatalf("Error migrating advisory log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.LedgerEntry{}); err != nil {
		log.Fatalf("Error migrating ledger entry database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
