package handlers

import (
	"Fluid-Balance-Backend/domain"
	"Fluid-Balance-Backend/internal/api/presenters"
	"Fluid-Balance-Backend/pkg/ledger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LedgerHandler interface {
		BarcodeScan(c *fiber.Ctx) error
		QRScan(c *fiber.Ctx) error
		SmartToilet(c *fiber.Ctx) error
		GetDailyBalance(c *fiber.Ctx) error
		GetIntakeLogs(c *fiber.Ctx) error
		GetOutputLogs(c *fiber.Ctx) error
		AddIntakeLog(c *fiber.Ctx) error
		AddOutputLog(c *fiber.Ctx) error
		UpdateIntakeLog(c *fiber.Ctx) error
		UpdateOutputLog(c *fiber.Ctx) error
		VerifyIntakeLog(c *fiber.Ctx) error
		VerifyOutputLog(c *fiber.Ctx) error
		DeleteIntakeLog(c *fiber.Ctx) error
		DeleteOutputLog(c *fiber.Ctx) error
		SendBalanceReport(c *fiber.Ctx) error
	}

	ledgerHandler struct {
		ledgerService ledger.LedgerService
		validator     *validator.Validate
	}
)

func NewLedgerHandler(ledgerService ledger.LedgerService, validator *validator.Validate) LedgerHandler {
	return &ledgerHandler{
		ledgerService: ledgerService,
		validator:     validator,
	}
}

func (h *ledgerHandler) BarcodeScan(c *fiber.Ctx) error {
	req := new(domain.BarcodeScanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBarcodeScan, err)
	}

	res, err := h.ledgerService.BarcodeScan(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedBarcodeScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBarcodeScan)
}

func (h *ledgerHandler) QRScan(c *fiber.Ctx) error {
	req := new(domain.QRScanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQRScan, err)
	}

	res, err := h.ledgerService.QRScan(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedQRScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessQRScan)
}

func (h *ledgerHandler) SmartToilet(c *fiber.Ctx) error {
	req := new(domain.SmartToiletRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSmartToilet, err)
	}

	if err := h.ledgerService.SmartToilet(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedSmartToilet, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSmartToilet)
}

func (h *ledgerHandler) GetDailyBalance(c *fiber.Ctx) error {
	patientID := c.Params("userId")
	if patientID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBalance, domain.ErrParseUUID)
	}

	res, err := h.ledgerService.GetDailyBalance(c.Context(), patientID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetBalance, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBalance)
}

func (h *ledgerHandler) GetIntakeLogs(c *fiber.Ctx) error {
	patientID := c.Query("patient_id")
	if patientID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLogs, domain.ErrParseUUID)
	}

	res, err := h.ledgerService.GetIntakeLogs(c.Context(), patientID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetLogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLogs)
}

func (h *ledgerHandler) GetOutputLogs(c *fiber.Ctx) error {
	patientID := c.Query("patient_id")
	if patientID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLogs, domain.ErrParseUUID)
	}

	res, err := h.ledgerService.GetOutputLogs(c.Context(), patientID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetLogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLogs)
}

func (h *ledgerHandler) AddIntakeLog(c *fiber.Ctx) error {
	req := new(domain.AddIntakeLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddLog, err)
	}

	if err := h.ledgerService.AddIntakeLog(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedAddLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAddLog)
}

func (h *ledgerHandler) AddOutputLog(c *fiber.Ctx) error {
	req := new(domain.AddOutputLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddLog, err)
	}

	if err := h.ledgerService.AddOutputLog(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedAddLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAddLog)
}

func (h *ledgerHandler) UpdateIntakeLog(c *fiber.Ctx) error {
	req := new(domain.UpdateLogAmountRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLog, err)
	}

	if err := h.ledgerService.CorrectIntakeAmount(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdateLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateLog)
}

func (h *ledgerHandler) UpdateOutputLog(c *fiber.Ctx) error {
	req := new(domain.UpdateLogAmountRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLog, err)
	}

	if err := h.ledgerService.CorrectOutputAmount(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdateLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateLog)
}

func (h *ledgerHandler) VerifyIntakeLog(c *fiber.Ctx) error {
	req := new(domain.VerifyLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyLog, err)
	}

	if err := h.ledgerService.VerifyIntakeLog(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedVerifyLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVerifyLog)
}

func (h *ledgerHandler) VerifyOutputLog(c *fiber.Ctx) error {
	req := new(domain.VerifyLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyLog, err)
	}

	if err := h.ledgerService.VerifyOutputLog(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedVerifyLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVerifyLog)
}

func (h *ledgerHandler) DeleteIntakeLog(c *fiber.Ctx) error {
	req := new(domain.DeleteLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteLog, err)
	}

	if err := h.ledgerService.DeleteIntakeLog(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedDeleteLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteLog)
}

func (h *ledgerHandler) DeleteOutputLog(c *fiber.Ctx) error {
	req := new(domain.DeleteLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteLog, err)
	}

	if err := h.ledgerService.DeleteOutputLog(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedDeleteLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteLog)
}

func (h *ledgerHandler) SendBalanceReport(c *fiber.Ctx) error {
	req := new(domain.BalanceReportRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBalanceReport, err)
	}

	if err := h.ledgerService.SendBalanceReport(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedBalanceReport, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessBalanceReport)
}
