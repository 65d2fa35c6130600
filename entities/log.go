package entities

import (
	"github.com/google/uuid"
)

type IntakeLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OperatorID      uuid.UUID `json:"operator_id"`
	PatientID       uuid.UUID `json:"patient_id"`
	EventTime       string    `gorm:"type:time" json:"time"` // "15:04:05"
	EventDate       string    `gorm:"type:date" json:"date"` // "2006-01-02"
	NutritionID     uuid.UUID `json:"nutrition_id"`
	Category        string    `json:"category"` // "barcode-scan", "qr-scan", "manual"
	CorrectedAmount float64   `json:"corrected_amount"`
	Verified        bool      `json:"verified"`

	Patient       *Patient       `gorm:"foreignKey:PatientID"`
	NutritionItem *NutritionItem `gorm:"foreignKey:NutritionID"`
	Timestamp
}

type OutputLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OperatorID uuid.UUID `json:"operator_id"`
	PatientID  uuid.UUID `json:"patient_id"`
	EventTime  string    `gorm:"type:time" json:"time"`
	EventDate  string    `gorm:"type:date" json:"date"`
	Category   string    `json:"category"` // free-text fluid name, e.g. "urine"
	Amount     float64   `json:"amount"`   // ml
	Verified   bool      `json:"verified"`

	Patient *Patient `gorm:"foreignKey:PatientID"`
	Timestamp
}
