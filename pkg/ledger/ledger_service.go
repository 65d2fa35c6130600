package ledger

import (
	"Fluid-Balance-Backend/domain"
	"Fluid-Balance-Backend/entities"
	"Fluid-Balance-Backend/pkg/catalog"
	"Fluid-Balance-Backend/pkg/patient"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryBarcodeScan = "barcode-scan"
	CategoryQRScan      = "qr-scan"
	CategoryManual      = "manual"
	CategorySmartToilet = "smart-toilet"
)

type (
	// MailSender delivers the balance report mail; injected so the SMTP
	// dependency stays out of the service itself.
	MailSender func(toEmail string, subject string, body string) error

	LedgerService interface {
		BarcodeScan(ctx context.Context, req domain.BarcodeScanRequest) (domain.BarcodeScanResponse, error)
		QRScan(ctx context.Context, req domain.QRScanRequest) (domain.QRScanResponse, error)
		SmartToilet(ctx context.Context, req domain.SmartToiletRequest) error
		GetDailyBalance(ctx context.Context, patientID string) (domain.WaterBalanceResponse, error)
		GetIntakeLogs(ctx context.Context, patientID string) ([]domain.IntakeLogResponse, error)
		GetOutputLogs(ctx context.Context, patientID string) ([]domain.OutputLogResponse, error)
		AddIntakeLog(ctx context.Context, req domain.AddIntakeLogRequest) error
		AddOutputLog(ctx context.Context, req domain.AddOutputLogRequest) error
		CorrectIntakeAmount(ctx context.Context, req domain.UpdateLogAmountRequest) error
		CorrectOutputAmount(ctx context.Context, req domain.UpdateLogAmountRequest) error
		VerifyIntakeLog(ctx context.Context, req domain.VerifyLogRequest) error
		VerifyOutputLog(ctx context.Context, req domain.VerifyLogRequest) error
		DeleteIntakeLog(ctx context.Context, req domain.DeleteLogRequest) error
		DeleteOutputLog(ctx context.Context, req domain.DeleteLogRequest) error
		SendBalanceReport(ctx context.Context, req domain.BalanceReportRequest) error
	}

	ledgerService struct {
		ledgerRepository  LedgerRepository
		catalogRepository catalog.CatalogRepository
		patientRepository patient.PatientRepository
		sendMail          MailSender
	}
)

func NewLedgerService(
	ledgerRepository LedgerRepository,
	catalogRepository catalog.CatalogRepository,
	patientRepository patient.PatientRepository,
	sendMail MailSender,
) LedgerService {
	return &ledgerService{
		ledgerRepository:  ledgerRepository,
		catalogRepository: catalogRepository,
		patientRepository: patientRepository,
		sendMail:          sendMail,
	}
}

// isValidAmount rejects zero, negative, NaN and infinite amounts. Zero is an
// explicit value here, not "absent"; absence is modelled with pointer fields.
func isValidAmount(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s *ledgerService) BarcodeScan(ctx context.Context, req domain.BarcodeScanRequest) (domain.BarcodeScanResponse, error) {
	patientUUID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return domain.BarcodeScanResponse{}, domain.ErrParseUUID
	}
	operatorUUID, err := uuid.Parse(req.OperatorID)
	if err != nil {
		return domain.BarcodeScanResponse{}, domain.ErrParseUUID
	}

	item, err := s.catalogRepository.GetNutritionByBarcode(ctx, req.Barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BarcodeScanResponse{}, domain.ErrProductNotFound
		}
		return domain.BarcodeScanResponse{}, err
	}

	now := time.Now()
	log := &entities.IntakeLog{
		ID:              uuid.New(),
		OperatorID:      operatorUUID,
		PatientID:       patientUUID,
		EventTime:       now.Format("15:04:05"),
		EventDate:       now.Format("2006-01-02"),
		NutritionID:     item.ID,
		Category:        CategoryBarcodeScan,
		CorrectedAmount: 1, // barcode scans always log one unit
	}

	if err := s.ledgerRepository.CreateIntakeLog(ctx, log); err != nil {
		return domain.BarcodeScanResponse{}, err
	}

	return domain.BarcodeScanResponse{
		LogID:         log.ID.String(),
		NutritionName: item.Dish,
		Water:         item.Water,
	}, nil
}

func (s *ledgerService) QRScan(ctx context.Context, req domain.QRScanRequest) (domain.QRScanResponse, error) {
	patientUUID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return domain.QRScanResponse{}, domain.ErrParseUUID
	}
	operatorUUID, err := uuid.Parse(req.OperatorID)
	if err != nil {
		return domain.QRScanResponse{}, domain.ErrParseUUID
	}

	now := time.Now()
	eventTime := now.Format("15:04:05")
	eventDate := now.Format("2006-01-02")

	if req.IsIn != nil && *req.IsIn {
		// fluid intake; quantity defaults to one unit when omitted
		quantity := 1.0
		if req.WaterMl != nil {
			if !isValidAmount(*req.WaterMl) {
				return domain.QRScanResponse{}, domain.ErrInvalidAmount
			}
			quantity = *req.WaterMl
		}

		item, err := s.catalogRepository.GetNutritionByDish(ctx, req.Name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.QRScanResponse{}, domain.ErrProductNotFound
			}
			return domain.QRScanResponse{}, err
		}

		log := &entities.IntakeLog{
			ID:              uuid.New(),
			OperatorID:      operatorUUID,
			PatientID:       patientUUID,
			EventTime:       eventTime,
			EventDate:       eventDate,
			NutritionID:     item.ID,
			Category:        CategoryQRScan,
			CorrectedAmount: quantity,
		}
		if err := s.ledgerRepository.CreateIntakeLog(ctx, log); err != nil {
			return domain.QRScanResponse{}, err
		}
		return domain.QRScanResponse{LogID: log.ID.String()}, nil
	}

	// fluid output; the amount is mandatory here
	if req.WaterMl == nil || !isValidAmount(*req.WaterMl) {
		return domain.QRScanResponse{}, domain.ErrInvalidAmount
	}

	log := &entities.OutputLog{
		ID:         uuid.New(),
		OperatorID: operatorUUID,
		PatientID:  patientUUID,
		EventTime:  eventTime,
		EventDate:  eventDate,
		Category:   req.Name,
		Amount:     *req.WaterMl,
	}
	if err := s.ledgerRepository.CreateOutputLog(ctx, log); err != nil {
		return domain.QRScanResponse{}, err
	}
	return domain.QRScanResponse{LogID: log.ID.String()}, nil
}

func (s *ledgerService) SmartToilet(ctx context.Context, req domain.SmartToiletRequest) error {
	patientUUID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if req.WaterMl == nil || !isValidAmount(*req.WaterMl) {
		return domain.ErrInvalidAmount
	}

	if _, err := s.patientRepository.GetPatientByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPatientNotFound
		}
		return err
	}

	now := time.Now()
	log := &entities.OutputLog{
		ID:        uuid.New(),
		PatientID: patientUUID,
		EventTime: now.Format("15:04:05"),
		EventDate: now.Format("2006-01-02"),
		Category:  CategorySmartToilet,
		Amount:    *req.WaterMl,
	}
	return s.ledgerRepository.CreateOutputLog(ctx, log)
}

func (s *ledgerService) GetDailyBalance(ctx context.Context, patientID string) (domain.WaterBalanceResponse, error) {
	if _, err := uuid.Parse(patientID); err != nil {
		return domain.WaterBalanceResponse{}, domain.ErrParseUUID
	}

	date := time.Now().Format("2006-01-02")

	intake, err := s.ledgerRepository.SumIntakeWater(ctx, patientID, date)
	if err != nil {
		return domain.WaterBalanceResponse{}, err
	}
	output, err := s.ledgerRepository.SumOutputWater(ctx, patientID, date)
	if err != nil {
		return domain.WaterBalanceResponse{}, err
	}

	return domain.WaterBalanceResponse{
		PatientID:    patientID,
		Date:         date,
		TotalMlWater: intake - output,
	}, nil
}

func (s *ledgerService) GetIntakeLogs(ctx context.Context, patientID string) ([]domain.IntakeLogResponse, error) {
	if _, err := uuid.Parse(patientID); err != nil {
		return nil, domain.ErrParseUUID
	}

	logs, err := s.ledgerRepository.GetIntakeLogs(ctx, patientID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.IntakeLogResponse, 0, len(logs))
	for _, log := range logs {
		item := domain.IntakeLogResponse{
			ID:              log.ID.String(),
			OperatorID:      log.OperatorID.String(),
			PatientID:       log.PatientID.String(),
			EventTime:       log.EventTime,
			EventDate:       log.EventDate,
			NutritionID:     log.NutritionID.String(),
			Category:        log.Category,
			CorrectedAmount: log.CorrectedAmount,
			Verified:        log.Verified,
		}
		if log.NutritionItem != nil {
			item.NutritionName = log.NutritionItem.Dish
		}
		response = append(response, item)
	}
	return response, nil
}

func (s *ledgerService) GetOutputLogs(ctx context.Context, patientID string) ([]domain.OutputLogResponse, error) {
	if _, err := uuid.Parse(patientID); err != nil {
		return nil, domain.ErrParseUUID
	}

	logs, err := s.ledgerRepository.GetOutputLogs(ctx, patientID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OutputLogResponse, 0, len(logs))
	for _, log := range logs {
		response = append(response, domain.OutputLogResponse{
			ID:         log.ID.String(),
			OperatorID: log.OperatorID.String(),
			PatientID:  log.PatientID.String(),
			EventTime:  log.EventTime,
			EventDate:  log.EventDate,
			Category:   log.Category,
			Amount:     log.Amount,
			Verified:   log.Verified,
		})
	}
	return response, nil
}

func (s *ledgerService) AddIntakeLog(ctx context.Context, req domain.AddIntakeLogRequest) error {
	operatorUUID, err := uuid.Parse(req.OperatorID)
	if err != nil {
		return domain.ErrParseUUID
	}
	patientUUID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return domain.ErrParseUUID
	}
	nutritionUUID, err := uuid.Parse(req.NutritionID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if req.CorrectedAmount == nil || !isValidAmount(*req.CorrectedAmount) {
		return domain.ErrInvalidAmount
	}
	if _, err := time.Parse("2006-01-02", req.EventDate); err != nil {
		return domain.ErrInvalidEventDate
	}
	if _, err := time.Parse("15:04:05", req.EventTime); err != nil {
		return domain.ErrInvalidEventTime
	}

	// every intake log must reference an existing nutrition item
	if _, err := s.catalogRepository.GetNutritionByID(ctx, req.NutritionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	log := &entities.IntakeLog{
		ID:              uuid.New(),
		OperatorID:      operatorUUID,
		PatientID:       patientUUID,
		EventTime:       req.EventTime,
		EventDate:       req.EventDate,
		NutritionID:     nutritionUUID,
		Category:        req.Category,
		CorrectedAmount: *req.CorrectedAmount,
	}
	return s.ledgerRepository.CreateIntakeLog(ctx, log)
}

func (s *ledgerService) AddOutputLog(ctx context.Context, req domain.AddOutputLogRequest) error {
	operatorUUID, err := uuid.Parse(req.OperatorID)
	if err != nil {
		return domain.ErrParseUUID
	}
	patientUUID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if req.Amount == nil || !isValidAmount(*req.Amount) {
		return domain.ErrInvalidAmount
	}
	if _, err := time.Parse("2006-01-02", req.EventDate); err != nil {
		return domain.ErrInvalidEventDate
	}
	if _, err := time.Parse("15:04:05", req.EventTime); err != nil {
		return domain.ErrInvalidEventTime
	}

	log := &entities.OutputLog{
		ID:         uuid.New(),
		OperatorID: operatorUUID,
		PatientID:  patientUUID,
		EventTime:  req.EventTime,
		EventDate:  req.EventDate,
		Category:   req.Category,
		Amount:     *req.Amount,
	}
	return s.ledgerRepository.CreateOutputLog(ctx, log)
}

func (s *ledgerService) CorrectIntakeAmount(ctx context.Context, req domain.UpdateLogAmountRequest) error {
	if req.Amount == nil || !isValidAmount(*req.Amount) {
		return domain.ErrInvalidAmount
	}
	rows, err := s.ledgerRepository.UpdateIntakeAmount(ctx, req.LogID, *req.Amount)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLogNotFound
	}
	return nil
}

func (s *ledgerService) CorrectOutputAmount(ctx context.Context, req domain.UpdateLogAmountRequest) error {
	if req.Amount == nil || !isValidAmount(*req.Amount) {
		return domain.ErrInvalidAmount
	}
	rows, err := s.ledgerRepository.UpdateOutputAmount(ctx, req.LogID, *req.Amount)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLogNotFound
	}
	return nil
}

func (s *ledgerService) VerifyIntakeLog(ctx context.Context, req domain.VerifyLogRequest) error {
	rows, err := s.ledgerRepository.VerifyIntakeLog(ctx, req.LogID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLogNotFound
	}
	return nil
}

func (s *ledgerService) VerifyOutputLog(ctx context.Context, req domain.VerifyLogRequest) error {
	rows, err := s.ledgerRepository.VerifyOutputLog(ctx, req.LogID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLogNotFound
	}
	return nil
}

func (s *ledgerService) DeleteIntakeLog(ctx context.Context, req domain.DeleteLogRequest) error {
	rows, err := s.ledgerRepository.DeleteIntakeLog(ctx, req.LogID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLogNotFound
	}
	return nil
}

func (s *ledgerService) DeleteOutputLog(ctx context.Context, req domain.DeleteLogRequest) error {
	rows, err := s.ledgerRepository.DeleteOutputLog(ctx, req.LogID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLogNotFound
	}
	return nil
}

func (s *ledgerService) SendBalanceReport(ctx context.Context, req domain.BalanceReportRequest) error {
	p, err := s.patientRepository.GetPatientByID(ctx, req.PatientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPatientNotFound
		}
		return err
	}

	balance, err := s.GetDailyBalance(ctx, req.PatientID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Daily water balance for %s (%s)", p.Name, balance.Date)
	body := fmt.Sprintf(
		"<p>Patient: %s<br>Room: %s<br>Date: %s</p><p>Water balance: <b>%.1f ml</b></p>",
		p.Name, p.RoomNumber, balance.Date, balance.TotalMlWater,
	)
	return s.sendMail(req.Email, subject, body)
}
