package domain

import (
	"errors"
)

var (
	MessageSuccessGetNutrition  = "nutrition items retrieved successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessAddProduct    = "product added successfully"
	MessageSuccessDeleteProduct = "product deleted successfully"
	MessageSuccessGenerateLabel = "label generated successfully"

	MessageFailedGetNutrition  = "failed to retrieve nutrition items"
	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedAddProduct    = "failed to add product"
	MessageFailedDeleteProduct = "failed to delete product"
	MessageFailedGenerateLabel = "failed to generate label"

	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateBarcode = errors.New("barcode already registered")
	ErrInvalidBarcode   = errors.New("barcode must be a 12 or 13 digit number")
)

type (
	NutritionItemResponse struct {
		ID    string  `json:"id"`
		Dish  string  `json:"dish"`
		Water float64 `json:"water"`
	}

	ProductResponse struct {
		Barcode string  `json:"barcode"`
		Name    string  `json:"name"`
		Water   float64 `json:"water"`
	}

	AddProductRequest struct {
		Name    string   `json:"name" validate:"required"`
		Barcode string   `json:"barcode" validate:"required,numeric"`
		WaterMl *float64 `json:"water_ml" validate:"required"`
	}

	AddProductResponse struct {
		NutritionID string `json:"nutrition_id"`
		Barcode     string `json:"barcode"`
	}

	DeleteProductRequest struct {
		Barcode string `json:"barcode" validate:"required"`
	}

	BarcodeLabelRequest struct {
		NutritionID string `json:"nutrition_id" validate:"required,uuid"`
	}

	QRLabelRequest struct {
		Name    string   `json:"name" validate:"required"`
		WaterMl *float64 `json:"water_ml" validate:"required"`
	}

	LabelResponse struct {
		ImageURL string `json:"image_url"`
	}
)
