package entities

import (
	"github.com/google/uuid"
)

type Patient struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	RoomNumber string    `json:"room_number"`
	State      string    `json:"state"` // "Active", "Discharged"

	Timestamp
}
