package domain

import (
	"errors"
)

var (
	MessageSuccessBarcodeScan   = "nutrition values logged successfully"
	MessageSuccessQRScan        = "fluid event logged successfully"
	MessageSuccessSmartToilet   = "output logged successfully"
	MessageSuccessGetBalance    = "water balance retrieved successfully"
	MessageSuccessGetLogs       = "logs retrieved successfully"
	MessageSuccessAddLog        = "log added successfully"
	MessageSuccessUpdateLog     = "log updated successfully"
	MessageSuccessVerifyLog     = "log verified successfully"
	MessageSuccessDeleteLog     = "log deleted successfully"
	MessageSuccessBalanceReport = "balance report sent successfully"

	MessageFailedBarcodeScan   = "failed to log nutrition values"
	MessageFailedQRScan        = "failed to log fluid event"
	MessageFailedSmartToilet   = "failed to log output"
	MessageFailedGetBalance    = "failed to retrieve water balance"
	MessageFailedGetLogs       = "failed to retrieve logs"
	MessageFailedAddLog        = "failed to add log"
	MessageFailedUpdateLog     = "failed to update log"
	MessageFailedVerifyLog     = "failed to verify log"
	MessageFailedDeleteLog     = "failed to delete log"
	MessageFailedBalanceReport = "failed to send balance report"

	ErrLogNotFound      = errors.New("log not found")
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrInvalidEventDate = errors.New("invalid event date, expected YYYY-MM-DD")
	ErrInvalidEventTime = errors.New("invalid event time, expected HH:MM:SS")
)

type (
	BarcodeScanRequest struct {
		PatientID  string `json:"userId" validate:"required,uuid"`
		OperatorID string `json:"inputUserId" validate:"required,uuid"`
		Barcode    string `json:"barcode" validate:"required"`
	}

	BarcodeScanResponse struct {
		LogID         string  `json:"log_id"`
		NutritionName string  `json:"nutrition_name"`
		Water         float64 `json:"water"`
	}

	QRScanRequest struct {
		PatientID  string   `json:"userId" validate:"required,uuid"`
		OperatorID string   `json:"inputUserId" validate:"required,uuid"`
		Name       string   `json:"name" validate:"required"`
		WaterMl    *float64 `json:"water_ml" validate:"omitempty"`
		IsIn       *bool    `json:"isIn" validate:"required"`
	}

	QRScanResponse struct {
		LogID string `json:"log_id"`
	}

	SmartToiletRequest struct {
		PatientID string   `json:"userId" validate:"required,uuid"`
		WaterMl   *float64 `json:"water_ml" validate:"required"`
	}

	WaterBalanceResponse struct {
		PatientID    string  `json:"patient_id"`
		Date         string  `json:"date"`
		TotalMlWater float64 `json:"total_ml_water"`
	}

	AddIntakeLogRequest struct {
		OperatorID      string   `json:"input_user_id" validate:"required,uuid"`
		PatientID       string   `json:"patient_id" validate:"required,uuid"`
		EventTime       string   `json:"time" validate:"required"`
		EventDate       string   `json:"date" validate:"required"`
		NutritionID     string   `json:"nutrition_id" validate:"required,uuid"`
		Category        string   `json:"category" validate:"required,oneof=barcode-scan qr-scan manual"`
		CorrectedAmount *float64 `json:"corrected_amount" validate:"required"`
	}

	AddOutputLogRequest struct {
		OperatorID string   `json:"input_user_id" validate:"required,uuid"`
		PatientID  string   `json:"patient_id" validate:"required,uuid"`
		EventTime  string   `json:"time" validate:"required"`
		EventDate  string   `json:"date" validate:"required"`
		Category   string   `json:"category" validate:"required"`
		Amount     *float64 `json:"amount" validate:"required"`
	}

	UpdateLogAmountRequest struct {
		LogID  string   `json:"id" validate:"required,uuid"`
		Amount *float64 `json:"amount" validate:"required"`
	}

	VerifyLogRequest struct {
		LogID string `json:"id" validate:"required,uuid"`
	}

	DeleteLogRequest struct {
		LogID string `json:"id" validate:"required,uuid"`
	}

	IntakeLogResponse struct {
		ID              string  `json:"id"`
		OperatorID      string  `json:"input_user_id"`
		PatientID       string  `json:"patient_id"`
		EventTime       string  `json:"time"`
		EventDate       string  `json:"date"`
		NutritionID     string  `json:"nutrition_id"`
		NutritionName   string  `json:"nutrition_name,omitempty"`
		Category        string  `json:"category"`
		CorrectedAmount float64 `json:"corrected_amount"`
		Verified        bool    `json:"verified"`
	}

	OutputLogResponse struct {
		ID         string  `json:"id"`
		OperatorID string  `json:"input_user_id"`
		PatientID  string  `json:"patient_id"`
		EventTime  string  `json:"time"`
		EventDate  string  `json:"date"`
		Category   string  `json:"category"`
		Amount     float64 `json:"amount"`
		Verified   bool    `json:"verified"`
	}

	BalanceReportRequest struct {
		PatientID string `json:"patient_id" validate:"required,uuid"`
		Email     string `json:"email" validate:"required,email"`
	}
)
