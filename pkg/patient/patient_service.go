package patient

import (
	"Fluid-Balance-Backend/domain"
	"Fluid-Balance-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StateActive     = "Active"
	StateDischarged = "Discharged"
)

type (
	PatientService interface {
		GetPatientByID(ctx context.Context, patientID string) (domain.PatientResponse, error)
		GetPatientsByRoom(ctx context.Context, roomNumber, state string) ([]domain.PatientResponse, error)
		AddPatient(ctx context.Context, req domain.AddPatientRequest) (domain.PatientResponse, error)
		UpdatePatient(ctx context.Context, patientID string, req domain.UpdatePatientRequest) error
		DeletePatient(ctx context.Context, req domain.DeletePatientRequest) error
	}

	patientService struct {
		patientRepository PatientRepository
	}
)

func NewPatientService(patientRepository PatientRepository) PatientService {
	return &patientService{patientRepository: patientRepository}
}

func toPatientResponse(p *entities.Patient) domain.PatientResponse {
	return domain.PatientResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		RoomNumber: p.RoomNumber,
		State:      p.State,
	}
}

func (s *patientService) GetPatientByID(ctx context.Context, patientID string) (domain.PatientResponse, error) {
	if _, err := uuid.Parse(patientID); err != nil {
		return domain.PatientResponse{}, domain.ErrParseUUID
	}

	p, err := s.patientRepository.GetPatientByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PatientResponse{}, domain.ErrPatientNotFound
		}
		return domain.PatientResponse{}, err
	}
	return toPatientResponse(p), nil
}

func (s *patientService) GetPatientsByRoom(ctx context.Context, roomNumber, state string) ([]domain.PatientResponse, error) {
	if state != StateActive && state != StateDischarged {
		return nil, domain.ErrInvalidPatientState
	}

	patients, err := s.patientRepository.GetPatientsByRoom(ctx, roomNumber, state)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PatientResponse, 0, len(patients))
	for _, p := range patients {
		response = append(response, toPatientResponse(p))
	}
	return response, nil
}

func (s *patientService) AddPatient(ctx context.Context, req domain.AddPatientRequest) (domain.PatientResponse, error) {
	p := &entities.Patient{
		ID:         uuid.New(),
		Name:       req.Name,
		RoomNumber: req.RoomNumber,
		State:      StateActive,
	}
	if err := s.patientRepository.CreatePatient(ctx, p); err != nil {
		return domain.PatientResponse{}, err
	}
	return toPatientResponse(p), nil
}

func (s *patientService) UpdatePatient(ctx context.Context, patientID string, req domain.UpdatePatientRequest) error {
	p, err := s.patientRepository.GetPatientByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPatientNotFound
		}
		return err
	}

	if req.Name != "" {
		p.Name = req.Name
	}
	if req.RoomNumber != "" {
		p.RoomNumber = req.RoomNumber
	}
	if req.State != "" {
		p.State = req.State
	}

	return s.patientRepository.UpdatePatient(ctx, p)
}

func (s *patientService) DeletePatient(ctx context.Context, req domain.DeletePatientRequest) error {
	rows, err := s.patientRepository.DeletePatient(ctx, req.PatientID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}
