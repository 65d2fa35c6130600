package migration

import (
	"Fluid-Balance-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Patient{}); err != nil {
		log.Fatalf("Error migrating patient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NutritionItem{}); err != nil {
		log.Fatalf("Error migrating nutrition item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Barcode{}); err != nil {
		log.Fatalf("Error migrating barcode database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.IntakeLog{}); err != nil {
		log.Fatalf("Error migrating intake log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.OutputLog{}); err != nil {
		log.Fatalf("Error migrating output log database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
