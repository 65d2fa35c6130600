package handlers

import (
	"Fluid-Balance-Backend/domain"
	"Fluid-Balance-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLedgerService returns canned results so handler tests only exercise
// parsing, validation and status mapping.
type stubLedgerService struct {
	scanRes    domain.BarcodeScanResponse
	scanErr    error
	qrErr      error
	balanceRes domain.WaterBalanceResponse
	deleteErr  error
}

func (s *stubLedgerService) BarcodeScan(_ context.Context, _ domain.BarcodeScanRequest) (domain.BarcodeScanResponse, error) {
	return s.scanRes, s.scanErr
}

func (s *stubLedgerService) QRScan(_ context.Context, _ domain.QRScanRequest) (domain.QRScanResponse, error) {
	return domain.QRScanResponse{}, s.qrErr
}

func (s *stubLedgerService) SmartToilet(_ context.Context, _ domain.SmartToiletRequest) error {
	return nil
}

func (s *stubLedgerService) GetDailyBalance(_ context.Context, _ string) (domain.WaterBalanceResponse, error) {
	return s.balanceRes, nil
}

func (s *stubLedgerService) GetIntakeLogs(_ context.Context, _ string) ([]domain.IntakeLogResponse, error) {
	return nil, nil
}

func (s *stubLedgerService) GetOutputLogs(_ context.Context, _ string) ([]domain.OutputLogResponse, error) {
	return nil, nil
}

func (s *stubLedgerService) AddIntakeLog(_ context.Context, _ domain.AddIntakeLogRequest) error {
	return nil
}

func (s *stubLedgerService) AddOutputLog(_ context.Context, _ domain.AddOutputLogRequest) error {
	return nil
}

func (s *stubLedgerService) CorrectIntakeAmount(_ context.Context, _ domain.UpdateLogAmountRequest) error {
	return nil
}

func (s *stubLedgerService) CorrectOutputAmount(_ context.Context, _ domain.UpdateLogAmountRequest) error {
	return nil
}

func (s *stubLedgerService) VerifyIntakeLog(_ context.Context, _ domain.VerifyLogRequest) error {
	return nil
}

func (s *stubLedgerService) VerifyOutputLog(_ context.Context, _ domain.VerifyLogRequest) error {
	return nil
}

func (s *stubLedgerService) DeleteIntakeLog(_ context.Context, _ domain.DeleteLogRequest) error {
	return s.deleteErr
}

func (s *stubLedgerService) DeleteOutputLog(_ context.Context, _ domain.DeleteLogRequest) error {
	return s.deleteErr
}

func (s *stubLedgerService) SendBalanceReport(_ context.Context, _ domain.BalanceReportRequest) error {
	return nil
}

func newTestApp(service *stubLedgerService) *fiber.App {
	utils.InitValidator()
	handler := NewLedgerHandler(service, utils.Validate)

	app := fiber.New()
	app.Post("/api/v1/barcode-scan", handler.BarcodeScan)
	app.Post("/api/v1/qr-scan", handler.QRScan)
	app.Get("/api/v1/user-water/:userId", handler.GetDailyBalance)
	app.Delete("/api/v1/deleteLog", handler.DeleteIntakeLog)
	return app
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestBarcodeScanHandlerSuccess(t *testing.T) {
	service := &stubLedgerService{
		scanRes: domain.BarcodeScanResponse{
			LogID:         uuid.New().String(),
			NutritionName: "Apple Juice",
			Water:         250,
		},
	}
	app := newTestApp(service)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/barcode-scan", map[string]string{
		"userId":      uuid.New().String(),
		"inputUserId": uuid.New().String(),
		"barcode":     "5012345678900",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			NutritionName string `json:"nutrition_name"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "Apple Juice", body.Data.NutritionName)
}

func TestBarcodeScanHandlerMissingFields(t *testing.T) {
	app := newTestApp(&stubLedgerService{})

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/barcode-scan", map[string]string{
		"userId": uuid.New().String(),
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestBarcodeScanHandlerUnknownBarcode(t *testing.T) {
	app := newTestApp(&stubLedgerService{scanErr: domain.ErrProductNotFound})

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/barcode-scan", map[string]string{
		"userId":      uuid.New().String(),
		"inputUserId": uuid.New().String(),
		"barcode":     "000",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestQRScanHandlerInvalidAmount(t *testing.T) {
	app := newTestApp(&stubLedgerService{qrErr: domain.ErrInvalidAmount})

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/qr-scan", map[string]interface{}{
		"userId":      uuid.New().String(),
		"inputUserId": uuid.New().String(),
		"name":        "urine",
		"water_ml":    -5,
		"isIn":        false,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetDailyBalanceHandler(t *testing.T) {
	patientID := uuid.New().String()
	app := newTestApp(&stubLedgerService{
		balanceRes: domain.WaterBalanceResponse{
			PatientID:    patientID,
			Date:         "2025-06-01",
			TotalMlWater: 150,
		},
	})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/user-water/"+patientID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var body struct {
		Data struct {
			TotalMlWater float64 `json:"total_ml_water"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, 150.0, body.Data.TotalMlWater)
}

func TestDeleteLogHandlerNotFound(t *testing.T) {
	app := newTestApp(&stubLedgerService{deleteErr: domain.ErrLogNotFound})

	res, err := app.Test(jsonRequest(http.MethodDelete, "/api/v1/deleteLog", map[string]string{
		"id": uuid.New().String(),
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
