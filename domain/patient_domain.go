package domain

import (
	"errors"
)

var (
	MessageSuccessGetPatient    = "patient retrieved successfully"
	MessageSuccessGetRoom       = "patients retrieved successfully"
	MessageSuccessAddPatient    = "patient added successfully"
	MessageSuccessUpdatePatient = "patient updated successfully"
	MessageSuccessDeletePatient = "patient deleted successfully"

	MessageFailedGetPatient    = "failed to retrieve patient"
	MessageFailedGetRoom       = "failed to retrieve patients"
	MessageFailedAddPatient    = "failed to add patient"
	MessageFailedUpdatePatient = "failed to update patient"
	MessageFailedDeletePatient = "failed to delete patient"

	ErrPatientNotFound     = errors.New("patient not found")
	ErrInvalidPatientState = errors.New("invalid patient state")
)

type (
	PatientResponse struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		RoomNumber string `json:"room_number"`
		State      string `json:"state"`
	}

	AddPatientRequest struct {
		Name       string `json:"name" validate:"required"`
		RoomNumber string `json:"room_number" validate:"required"`
	}

	UpdatePatientRequest struct {
		Name       string `json:"name" validate:"omitempty"`
		RoomNumber string `json:"room_number" validate:"omitempty"`
		State      string `json:"state" validate:"omitempty,oneof=Active Discharged"`
	}

	DeletePatientRequest struct {
		PatientID string `json:"patient_id" validate:"required,uuid"`
	}
)
