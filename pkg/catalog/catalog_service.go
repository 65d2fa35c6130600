package catalog

import (
	"Fluid-Balance-Backend/domain"
	"Fluid-Balance-Backend/entities"
	"Fluid-Balance-Backend/internal/utils/storage"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/ean"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type (
	CatalogService interface {
		GetNutritionItems(ctx context.Context) ([]domain.NutritionItemResponse, error)
		GetProducts(ctx context.Context) ([]domain.ProductResponse, error)
		AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.AddProductResponse, error)
		DeleteProduct(ctx context.Context, req domain.DeleteProductRequest) error
		GenerateBarcodeLabel(ctx context.Context, req domain.BarcodeLabelRequest) (domain.LabelResponse, error)
		GenerateQRLabel(ctx context.Context, req domain.QRLabelRequest) (domain.LabelResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
		s3                storage.AwsS3
	}
)

func NewCatalogService(catalogRepository CatalogRepository, s3 storage.AwsS3) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		s3:                s3,
	}
}

func (s *catalogService) GetNutritionItems(ctx context.Context) ([]domain.NutritionItemResponse, error) {
	items, err := s.catalogRepository.GetNutritionItems(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.NutritionItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, domain.NutritionItemResponse{
			ID:    item.ID.String(),
			Dish:  item.Dish,
			Water: item.Water,
		})
	}
	return response, nil
}

func (s *catalogService) GetProducts(ctx context.Context) ([]domain.ProductResponse, error) {
	barcodes, err := s.catalogRepository.GetBarcodes(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(barcodes))
	for _, b := range barcodes {
		product := domain.ProductResponse{Barcode: b.Code}
		if b.NutritionItem != nil {
			product.Name = b.NutritionItem.Dish
			product.Water = b.NutritionItem.Water
		}
		response = append(response, product)
	}
	return response, nil
}

func (s *catalogService) AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.AddProductResponse, error) {
	if req.WaterMl == nil || *req.WaterMl <= 0 {
		return domain.AddProductResponse{}, domain.ErrInvalidAmount
	}
	if len(req.Barcode) != 12 && len(req.Barcode) != 13 {
		return domain.AddProductResponse{}, domain.ErrInvalidBarcode
	}

	if _, err := s.catalogRepository.GetBarcodeByCode(ctx, req.Barcode); err == nil {
		return domain.AddProductResponse{}, domain.ErrDuplicateBarcode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AddProductResponse{}, err
	}

	item := &entities.NutritionItem{
		ID:    uuid.New(),
		Dish:  req.Name,
		Water: *req.WaterMl,
	}
	if err := s.catalogRepository.CreateNutritionItem(ctx, item); err != nil {
		return domain.AddProductResponse{}, err
	}

	code := &entities.Barcode{
		ID:          uuid.New(),
		Code:        req.Barcode,
		NutritionID: item.ID,
	}
	if err := s.catalogRepository.CreateBarcode(ctx, code); err != nil {
		return domain.AddProductResponse{}, err
	}

	return domain.AddProductResponse{
		NutritionID: item.ID.String(),
		Barcode:     code.Code,
	}, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, req domain.DeleteProductRequest) error {
	code, err := s.catalogRepository.GetBarcodeByCode(ctx, req.Barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if err := s.catalogRepository.DeleteBarcode(ctx, code.ID.String()); err != nil {
		return err
	}
	return s.catalogRepository.DeleteNutritionItem(ctx, code.NutritionID.String())
}

// NormalizeEAN13 pads a 12 digit code with a leading zero so it renders as a
// valid EAN-13.
func NormalizeEAN13(code string) string {
	if len(code) == 12 {
		return "0" + code
	}
	return code
}

func (s *catalogService) GenerateBarcodeLabel(ctx context.Context, req domain.BarcodeLabelRequest) (domain.LabelResponse, error) {
	item, err := s.catalogRepository.GetNutritionByID(ctx, req.NutritionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LabelResponse{}, domain.ErrProductNotFound
		}
		return domain.LabelResponse{}, err
	}

	code, err := s.catalogRepository.GetBarcodeByNutritionID(ctx, req.NutritionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LabelResponse{}, domain.ErrProductNotFound
		}
		return domain.LabelResponse{}, err
	}

	normalized := NormalizeEAN13(code.Code)
	eanCode, err := ean.Encode(normalized)
	if err != nil {
		return domain.LabelResponse{}, domain.ErrInvalidBarcode
	}

	scaled, err := barcode.Scale(eanCode, 400, 160)
	if err != nil {
		return domain.LabelResponse{}, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return domain.LabelResponse{}, err
	}

	objectKey := fmt.Sprintf("labels/barcodes/%s_%s.png", sanitizeFileName(item.Dish), normalized)
	if _, err := s.s3.UploadBytes(objectKey, buf.Bytes(), "image/png"); err != nil {
		return domain.LabelResponse{}, err
	}

	return domain.LabelResponse{ImageURL: s.s3.GetPublicLinkKey(objectKey)}, nil
}

// QRLabelPayload is the JSON object embedded in generated QR labels; scanner
// clients post it back on /qr-scan.
type QRLabelPayload struct {
	Name    string  `json:"name"`
	WaterMl float64 `json:"water_ml"`
}

func (s *catalogService) GenerateQRLabel(ctx context.Context, req domain.QRLabelRequest) (domain.LabelResponse, error) {
	if req.WaterMl == nil || *req.WaterMl <= 0 {
		return domain.LabelResponse{}, domain.ErrInvalidAmount
	}

	payload, err := json.Marshal(QRLabelPayload{Name: req.Name, WaterMl: *req.WaterMl})
	if err != nil {
		return domain.LabelResponse{}, err
	}

	image, err := qrcode.Encode(string(payload), qrcode.Medium, 512)
	if err != nil {
		return domain.LabelResponse{}, err
	}

	objectKey := fmt.Sprintf("labels/qrcodes/%s_qr.png", sanitizeFileName(req.Name))
	if _, err := s.s3.UploadBytes(objectKey, image, "image/png"); err != nil {
		return domain.LabelResponse{}, err
	}

	return domain.LabelResponse{ImageURL: s.s3.GetPublicLinkKey(objectKey)}, nil
}

func sanitizeFileName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}
