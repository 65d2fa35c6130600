package config

import (
	"Fluid-Balance-Backend/internal/api/handlers"
	"Fluid-Balance-Backend/internal/api/routes"
	"Fluid-Balance-Backend/internal/middleware"
	"Fluid-Balance-Backend/internal/utils"
	"Fluid-Balance-Backend/internal/utils/mailing"
	"Fluid-Balance-Backend/internal/utils/storage"
	"Fluid-Balance-Backend/pkg/catalog"
	"Fluid-Balance-Backend/pkg/ledger"
	"Fluid-Balance-Backend/pkg/patient"
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
	ledgerRepository := ledger.NewLedgerRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)
	patientRepository := patient.NewPatientRepository(db)

	// Service
	ledgerService := ledger.NewLedgerService(ledgerRepository, catalogRepository, patientRepository, mailing.SendMail)
	catalogService := catalog.NewCatalogService(catalogRepository, s3)
	patientService := patient.NewPatientService(patientRepository)

	// Handler
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	patientHandler := handlers.NewPatientHandler(patientService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		LedgerHandler:  ledgerHandler,
		CatalogHandler: catalogHandler,
		PatientHandler: patientHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
