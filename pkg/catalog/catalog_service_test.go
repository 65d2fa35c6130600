package catalog

import (
	"Fluid-Balance-Backend/domain"
	"Fluid-Balance-Backend/entities"
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRepo struct {
	items    map[string]*entities.NutritionItem
	barcodes map[string]*entities.Barcode // keyed by code
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		items:    make(map[string]*entities.NutritionItem),
		barcodes: make(map[string]*entities.Barcode),
	}
}

func (m *mockRepo) addProduct(dish string, water float64, code string) (*entities.NutritionItem, *entities.Barcode) {
	item := &entities.NutritionItem{ID: uuid.New(), Dish: dish, Water: water}
	m.items[item.ID.String()] = item
	b := &entities.Barcode{ID: uuid.New(), Code: code, NutritionID: item.ID, NutritionItem: item}
	m.barcodes[code] = b
	return item, b
}

func (m *mockRepo) GetNutritionItems(_ context.Context) ([]*entities.NutritionItem, error) {
	var items []*entities.NutritionItem
	for _, item := range m.items {
		items = append(items, item)
	}
	return items, nil
}

func (m *mockRepo) GetNutritionByID(_ context.Context, id string) (*entities.NutritionItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (m *mockRepo) GetNutritionByBarcode(_ context.Context, code string) (*entities.NutritionItem, error) {
	b, ok := m.barcodes[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	item, ok := m.items[b.NutritionID.String()]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (m *mockRepo) GetNutritionByDish(_ context.Context, dish string) (*entities.NutritionItem, error) {
	for _, item := range m.items {
		if item.Dish == dish {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepo) CreateNutritionItem(_ context.Context, item *entities.NutritionItem) error {
	m.items[item.ID.String()] = item
	return nil
}

func (m *mockRepo) DeleteNutritionItem(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *mockRepo) GetBarcodes(_ context.Context) ([]*entities.Barcode, error) {
	var barcodes []*entities.Barcode
	for _, b := range m.barcodes {
		barcodes = append(barcodes, b)
	}
	return barcodes, nil
}

func (m *mockRepo) GetBarcodeByCode(_ context.Context, code string) (*entities.Barcode, error) {
	b, ok := m.barcodes[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (m *mockRepo) GetBarcodeByNutritionID(_ context.Context, nutritionID string) (*entities.Barcode, error) {
	for _, b := range m.barcodes {
		if b.NutritionID.String() == nutritionID {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepo) CreateBarcode(_ context.Context, b *entities.Barcode) error {
	m.barcodes[b.Code] = b
	return nil
}

func (m *mockRepo) DeleteBarcode(_ context.Context, id string) error {
	for code, b := range m.barcodes {
		if b.ID.String() == id {
			delete(m.barcodes, code)
		}
	}
	return nil
}

type fakeS3 struct {
	uploads map[string][]byte
	types   map[string]string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{uploads: make(map[string][]byte), types: make(map[string]string)}
}

func (f *fakeS3) UploadBytes(objectKey string, data []byte, contentType string) (string, error) {
	f.uploads[objectKey] = data
	f.types[objectKey] = contentType
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	delete(f.uploads, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://labels.example.com/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string { return "" }

func ptr(v float64) *float64 { return &v }

func TestAddProduct(t *testing.T) {
	repo := newMockRepo()
	service := NewCatalogService(repo, newFakeS3())

	res, err := service.AddProduct(context.Background(), domain.AddProductRequest{
		Name:    "Apple Juice",
		Barcode: "5012345678900",
		WaterMl: ptr(250),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.NutritionID)
	assert.Equal(t, "5012345678900", res.Barcode)

	item, err := repo.GetNutritionByBarcode(context.Background(), "5012345678900")
	require.NoError(t, err)
	assert.Equal(t, "Apple Juice", item.Dish)
	assert.Equal(t, 250.0, item.Water)
}

func TestAddProductRejectsDuplicateBarcode(t *testing.T) {
	repo := newMockRepo()
	repo.addProduct("Apple Juice", 250, "5012345678900")
	service := NewCatalogService(repo, newFakeS3())

	_, err := service.AddProduct(context.Background(), domain.AddProductRequest{
		Name:    "Orange Juice",
		Barcode: "5012345678900",
		WaterMl: ptr(200),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateBarcode)
}

func TestAddProductRejectsBadBarcodeLength(t *testing.T) {
	service := NewCatalogService(newMockRepo(), newFakeS3())

	_, err := service.AddProduct(context.Background(), domain.AddProductRequest{
		Name:    "Apple Juice",
		Barcode: "000",
		WaterMl: ptr(250),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidBarcode)
}

func TestDeleteProduct(t *testing.T) {
	repo := newMockRepo()
	item, _ := repo.addProduct("Apple Juice", 250, "5012345678900")
	service := NewCatalogService(repo, newFakeS3())

	err := service.DeleteProduct(context.Background(), domain.DeleteProductRequest{Barcode: "5012345678900"})
	require.NoError(t, err)

	_, err = repo.GetBarcodeByCode(context.Background(), "5012345678900")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.GetNutritionByID(context.Background(), item.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteProductNotFound(t *testing.T) {
	service := NewCatalogService(newMockRepo(), newFakeS3())

	err := service.DeleteProduct(context.Background(), domain.DeleteProductRequest{Barcode: "5012345678900"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestNormalizeEAN13(t *testing.T) {
	assert.Equal(t, "0501234567890", NormalizeEAN13("501234567890"))
	assert.Equal(t, "5012345678900", NormalizeEAN13("5012345678900"))
}

func TestGenerateBarcodeLabel(t *testing.T) {
	repo := newMockRepo()
	item, _ := repo.addProduct("Apple Juice", 250, "5012345678900")
	s3 := newFakeS3()
	service := NewCatalogService(repo, s3)

	res, err := service.GenerateBarcodeLabel(context.Background(), domain.BarcodeLabelRequest{
		NutritionID: item.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://labels.example.com/labels/barcodes/Apple_Juice_5012345678900.png", res.ImageURL)

	data, ok := s3.uploads["labels/barcodes/Apple_Juice_5012345678900.png"]
	require.True(t, ok)
	assert.Equal(t, "image/png", s3.types["labels/barcodes/Apple_Juice_5012345678900.png"])

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestGenerateBarcodeLabelUnknownItem(t *testing.T) {
	service := NewCatalogService(newMockRepo(), newFakeS3())

	_, err := service.GenerateBarcodeLabel(context.Background(), domain.BarcodeLabelRequest{
		NutritionID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGenerateQRLabel(t *testing.T) {
	s3 := newFakeS3()
	service := NewCatalogService(newMockRepo(), s3)

	res, err := service.GenerateQRLabel(context.Background(), domain.QRLabelRequest{
		Name:    "Apple Juice",
		WaterMl: ptr(250),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://labels.example.com/labels/qrcodes/Apple_Juice_qr.png", res.ImageURL)

	data, ok := s3.uploads["labels/qrcodes/Apple_Juice_qr.png"]
	require.True(t, ok)
	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

func TestGenerateQRLabelRejectsInvalidAmount(t *testing.T) {
	service := NewCatalogService(newMockRepo(), newFakeS3())

	_, err := service.GenerateQRLabel(context.Background(), domain.QRLabelRequest{
		Name:    "Apple Juice",
		WaterMl: ptr(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestQRLabelPayloadRoundTrip(t *testing.T) {
	payload, err := json.Marshal(QRLabelPayload{Name: "Apple Juice", WaterMl: 250})
	require.NoError(t, err)

	var decoded QRLabelPayload
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "Apple Juice", decoded.Name)
	assert.Equal(t, 250.0, decoded.WaterMl)
}
