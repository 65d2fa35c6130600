package catalog

import (
	"Fluid-Balance-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		GetNutritionItems(ctx context.Context) ([]*entities.NutritionItem, error)
		GetNutritionByID(ctx context.Context, id string) (*entities.NutritionItem, error)
		GetNutritionByBarcode(ctx context.Context, code string) (*entities.NutritionItem, error)
		GetNutritionByDish(ctx context.Context, dish string) (*entities.NutritionItem, error)
		CreateNutritionItem(ctx context.Context, item *entities.NutritionItem) error
		DeleteNutritionItem(ctx context.Context, id string) error

		GetBarcodes(ctx context.Context) ([]*entities.Barcode, error)
		GetBarcodeByCode(ctx context.Context, code string) (*entities.Barcode, error)
		GetBarcodeByNutritionID(ctx context.Context, nutritionID string) (*entities.Barcode, error)
		CreateBarcode(ctx context.Context, barcode *entities.Barcode) error
		DeleteBarcode(ctx context.Context, id string) error
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetNutritionItems(ctx context.Context) ([]*entities.NutritionItem, error) {
	var items []*entities.NutritionItem
	if err := r.db.WithContext(ctx).Order("dish asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *catalogRepository) GetNutritionByID(ctx context.Context, id string) (*entities.NutritionItem, error) {
	var item entities.NutritionItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) GetNutritionByBarcode(ctx context.Context, code string) (*entities.NutritionItem, error) {
	var item entities.NutritionItem
	if err := r.db.WithContext(ctx).
		Joins("JOIN barcodes ON barcodes.nutrition_id = nutrition_items.id").
		Where("barcodes.code = ?", code).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) GetNutritionByDish(ctx context.Context, dish string) (*entities.NutritionItem, error) {
	var item entities.NutritionItem
	if err := r.db.WithContext(ctx).Where("dish = ?", dish).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) CreateNutritionItem(ctx context.Context, item *entities.NutritionItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *catalogRepository) DeleteNutritionItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.NutritionItem{}).Error
}

func (r *catalogRepository) GetBarcodes(ctx context.Context) ([]*entities.Barcode, error) {
	var barcodes []*entities.Barcode
	if err := r.db.WithContext(ctx).Preload("NutritionItem").Find(&barcodes).Error; err != nil {
		return nil, err
	}
	return barcodes, nil
}

func (r *catalogRepository) GetBarcodeByCode(ctx context.Context, code string) (*entities.Barcode, error) {
	var barcode entities.Barcode
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&barcode).Error; err != nil {
		return nil, err
	}
	return &barcode, nil
}

func (r *catalogRepository) GetBarcodeByNutritionID(ctx context.Context, nutritionID string) (*entities.Barcode, error) {
	var barcode entities.Barcode
	if err := r.db.WithContext(ctx).Where("nutrition_id = ?", nutritionID).First(&barcode).Error; err != nil {
		return nil, err
	}
	return &barcode, nil
}

func (r *catalogRepository) CreateBarcode(ctx context.Context, barcode *entities.Barcode) error {
	return r.db.WithContext(ctx).Create(barcode).Error
}

func (r *catalogRepository) DeleteBarcode(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Barcode{}).Error
}
