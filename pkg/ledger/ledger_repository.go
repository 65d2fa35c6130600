package ledger

import (
	"Fluid-Balance-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	LedgerRepository interface {
		CreateIntakeLog(ctx context.Context, log *entities.IntakeLog) error
		CreateOutputLog(ctx context.Context, log *entities.OutputLog) error
		GetIntakeLogs(ctx context.Context, patientID string) ([]*entities.IntakeLog, error)
		GetOutputLogs(ctx context.Context, patientID string) ([]*entities.OutputLog, error)

		// Balance sums are recomputed on every call, never cached.
		SumIntakeWater(ctx context.Context, patientID, date string) (float64, error)
		SumOutputWater(ctx context.Context, patientID, date string) (float64, error)

		// Mutations return the number of affected rows so callers can
		// distinguish a missing id from a no-op update.
		UpdateIntakeAmount(ctx context.Context, id string, amount float64) (int64, error)
		UpdateOutputAmount(ctx context.Context, id string, amount float64) (int64, error)
		VerifyIntakeLog(ctx context.Context, id string) (int64, error)
		VerifyOutputLog(ctx context.Context, id string) (int64, error)
		DeleteIntakeLog(ctx context.Context, id string) (int64, error)
		DeleteOutputLog(ctx context.Context, id string) (int64, error)
	}

	ledgerRepository struct {
		db *gorm.DB
	}
)

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateIntakeLog(ctx context.Context, log *entities.IntakeLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *ledgerRepository) CreateOutputLog(ctx context.Context, log *entities.OutputLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *ledgerRepository) GetIntakeLogs(ctx context.Context, patientID string) ([]*entities.IntakeLog, error) {
	var logs []*entities.IntakeLog
	if err := r.db.WithContext(ctx).
		Preload("NutritionItem").
		Where("patient_id = ?", patientID).
		Order("event_date desc, event_time desc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *ledgerRepository) GetOutputLogs(ctx context.Context, patientID string) ([]*entities.OutputLog, error) {
	var logs []*entities.OutputLog
	if err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("event_date desc, event_time desc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *ledgerRepository) SumIntakeWater(ctx context.Context, patientID, date string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&entities.IntakeLog{}).
		Select("COALESCE(SUM(nutrition_items.water * intake_logs.corrected_amount), 0)").
		Joins("JOIN nutrition_items ON nutrition_items.id = intake_logs.nutrition_id").
		Where("intake_logs.patient_id = ? AND intake_logs.event_date = ?", patientID, date).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ledgerRepository) SumOutputWater(ctx context.Context, patientID, date string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&entities.OutputLog{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("patient_id = ? AND event_date = ?", patientID, date).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ledgerRepository) UpdateIntakeAmount(ctx context.Context, id string, amount float64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.IntakeLog{}).
		Where("id = ?", id).
		Update("corrected_amount", amount)
	return result.RowsAffected, result.Error
}

func (r *ledgerRepository) UpdateOutputAmount(ctx context.Context, id string, amount float64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.OutputLog{}).
		Where("id = ?", id).
		Update("amount", amount)
	return result.RowsAffected, result.Error
}

func (r *ledgerRepository) VerifyIntakeLog(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.IntakeLog{}).
		Where("id = ?", id).
		Update("verified", true)
	return result.RowsAffected, result.Error
}

func (r *ledgerRepository) VerifyOutputLog(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.OutputLog{}).
		Where("id = ?", id).
		Update("verified", true)
	return result.RowsAffected, result.Error
}

func (r *ledgerRepository) DeleteIntakeLog(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.IntakeLog{})
	return result.RowsAffected, result.Error
}

func (r *ledgerRepository) DeleteOutputLog(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.OutputLog{})
	return result.RowsAffected, result.Error
}
