package patient

import (
	"Fluid-Balance-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PatientRepository interface {
		GetPatientByID(ctx context.Context, id string) (*entities.Patient, error)
		GetPatientsByRoom(ctx context.Context, roomNumber, state string) ([]*entities.Patient, error)
		CreatePatient(ctx context.Context, patient *entities.Patient) error
		UpdatePatient(ctx context.Context, patient *entities.Patient) error
		DeletePatient(ctx context.Context, id string) (int64, error)
	}

	patientRepository struct {
		db *gorm.DB
	}
)

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) GetPatientByID(ctx context.Context, id string) (*entities.Patient, error) {
	var patient entities.Patient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) GetPatientsByRoom(ctx context.Context, roomNumber, state string) ([]*entities.Patient, error) {
	var patients []*entities.Patient
	if err := r.db.WithContext(ctx).
		Where("room_number = ? AND state = ?", roomNumber, state).
		Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) CreatePatient(ctx context.Context, patient *entities.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) UpdatePatient(ctx context.Context, patient *entities.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) DeletePatient(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Patient{})
	return result.RowsAffected, result.Error
}
