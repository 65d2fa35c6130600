package config

import (
	"Fluid-Balance-Backend/internal/utils"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	maxConnectAttempts = 5
	connectBackoff     = 3 * time.Second
)

func ConnectDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			return db, nil
		}
		log.Printf("Database connection failed (attempt %d/%d): %v", attempt, maxConnectAttempts, err)
		time.Sleep(connectBackoff)
	}

	log.Fatalf("Database unreachable after %d attempts: %v", maxConnectAttempts, err)
	return nil, err
}
