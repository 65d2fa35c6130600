package routes

import (
	"Fluid-Balance-Backend/internal/api/handlers"
	"Fluid-Balance-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	LedgerHandler  handlers.LedgerHandler
	CatalogHandler handlers.CatalogHandler
	PatientHandler handlers.PatientHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Ledger()
	c.Catalog()
	c.Patients()
	c.GuestRoute()
}

func (c *Config) Ledger() {
	api := c.App.Group("/api/v1")
	// scan and device ingestion
	{
		api.Post("/barcode-scan", c.LedgerHandler.BarcodeScan)
		api.Post("/qr-scan", c.LedgerHandler.QRScan)
		api.Post("/smart-toilet", c.LedgerHandler.SmartToilet)
	}
	// balance and log management
	{
		api.Get("/user-water/:userId", c.LedgerHandler.GetDailyBalance)
		api.Get("/logs", c.LedgerHandler.GetIntakeLogs)
		api.Get("/logsOut", c.LedgerHandler.GetOutputLogs)
		api.Post("/add-log", c.LedgerHandler.AddIntakeLog)
		api.Post("/add-logOut", c.LedgerHandler.AddOutputLog)
		api.Put("/updateLog", c.LedgerHandler.UpdateIntakeLog)
		api.Put("/updateLogOut", c.LedgerHandler.UpdateOutputLog)
		api.Put("/verifyLog", c.LedgerHandler.VerifyIntakeLog)
		api.Put("/verifyLogsOut", c.LedgerHandler.VerifyOutputLog)
		api.Delete("/deleteLog", c.LedgerHandler.DeleteIntakeLog)
		api.Delete("/deleteLogOut", c.LedgerHandler.DeleteOutputLog)
		api.Post("/balance-report", c.LedgerHandler.SendBalanceReport)
	}
}

func (c *Config) Catalog() {
	api := c.App.Group("/api/v1")

	api.Get("/nutrition", c.CatalogHandler.GetNutritionItems)
	api.Get("/get-products", c.CatalogHandler.GetProducts)
	api.Post("/products", c.CatalogHandler.AddProduct)
	api.Delete("/products", c.CatalogHandler.DeleteProduct)
	api.Post("/labels/barcode", c.CatalogHandler.GenerateBarcodeLabel)
	api.Post("/labels/qr", c.CatalogHandler.GenerateQRLabel)
}

func (c *Config) Patients() {
	api := c.App.Group("/api/v1")

	api.Get("/patients", c.PatientHandler.GetPatient)
	api.Get("/roomnumber", c.PatientHandler.GetPatientsByRoom)
	api.Post("/patients", c.PatientHandler.AddPatient)
	api.Put("/patients/:id", c.PatientHandler.UpdatePatient)
	api.Delete("/patients", c.PatientHandler.DeletePatient)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
