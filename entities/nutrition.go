package entities

import (
	"github.com/google/uuid"
)

type NutritionItem struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Dish  string    `gorm:"uniqueIndex" json:"dish"`
	Water float64   `json:"water"` // water content in ml per unit

	Timestamp
}

type Barcode struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Code        string    `gorm:"uniqueIndex" json:"code"`
	NutritionID uuid.UUID `json:"nutrition_id"`

	NutritionItem *NutritionItem `gorm:"foreignKey:NutritionID"`
	Timestamp
}
