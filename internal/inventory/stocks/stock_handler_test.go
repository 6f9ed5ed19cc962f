package stocks

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oysterfarm/internal/inventory/engine"
	"oysterfarm/internal/inventory/store"
	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockStockService to mock implementation of StockService
type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) AddStock(req engine.AddStockRequest) (*models.Stock, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stock), args.Error(1)
}

func (m *MockStockService) GetStock(id string) (*models.Stock, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stock), args.Error(1)
}

func (m *MockStockService) ListStocks(filter store.StockFilter) ([]models.Stock, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Stock), args.Error(1)
}

func (m *MockStockService) UpdateStock(id string, patch engine.StockPatch) (*models.Stock, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stock), args.Error(1)
}

func (m *MockStockService) RemoveStock(id string, performedBy string) error {
	args := m.Called(id, performedBy)
	return args.Error(0)
}

func (m *MockStockService) TransferStock(req engine.TransferRequest) (*engine.TransferResult, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.TransferResult), args.Error(1)
}

// SetupTestRouter creates a new gin router for testing
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func testStock(id string) *models.Stock {
	return &models.Stock{
		ID:         id,
		ProductID:  "product-1",
		LocationID: "location-1",
		Quantity:   decimal.NewFromInt(10),
		Unit:       metadata.UnitKilogram,
		Status:     metadata.StatusAvailable,
	}
}

func TestCreateStock_Success(t *testing.T) {
	router := SetupTestRouter()
	mockService := new(MockStockService)
	handler := NewStockHandler(mockService)
	handler.RegisterRoutes(router)

	mockService.On("AddStock", mock.MatchedBy(func(req engine.AddStockRequest) bool {
		return req.ProductID == "product-1" && req.Unit == metadata.UnitKilogram && req.Quantity.Equal(decimal.NewFromInt(10))
	})).Return(testStock("stock-1"), nil)

	jsonData, _ := json.Marshal(map[string]interface{}{
		"product_id":  "product-1",
		"location_id": "location-1",
		"quantity":    10,
		"unit":        "kg",
	})
	req, _ := http.NewRequest("POST", "/stocks", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response models.Stock
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.Nil(t, err)
	assert.Equal(t, "stock-1", response.ID)

	mockService.AssertExpectations(t)
}

func TestCreateStock_InvalidUnit(t *testing.T) {
	router := SetupTestRouter()
	mockService := new(MockStockService)
	handler := NewStockHandler(mockService)
	handler.RegisterRoutes(router)

	jsonData, _ := json.Marshal(map[string]interface{}{
		"product_id":  "product-1",
		"location_id": "location-1",
		"quantity":    10,
		"unit":        "barrel",
	})
	req, _ := http.NewRequest("POST", "/stocks", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "AddStock", mock.Anything)
}

func TestCreateStock_MissingPayloadFields(t *testing.T) {
	router := SetupTestRouter()
	mockService := new(MockStockService)
	handler := NewStockHandler(mockService)
	handler.RegisterRoutes(router)

	jsonData, _ := json.Marshal(map[string]interface{}{"product_id": "product-1"})
	req, _ := http.NewRequest("POST", "/stocks", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStock_NotFound(t *testing.T) {
	router := SetupTestRouter()
	mockService := new(MockStockService)
	handler := NewStockHandler(mockService)
	handler.RegisterRoutes(router)

	mockService.On("GetStock", "missing").Return(nil, custom_error.NewNotFoundError("stock", "missing"))

	req, _ := http.NewRequest("GET", "/stocks/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestGetStocks_FiltersByLocation(t *testing.T) {
	router := SetupTestRouter()
	mockService := new(MockStockService)
	handler := NewStockHandler(mockService)
	handler.RegisterRoutes(router)

	mockService.On("ListStocks", mock.MatchedBy(func(filter store.StockFilter) bool {
		return filter.LocationID != nil && *filter.LocationID == "location-1" && filter.ProductID == nil
	})).Return([]models.Stock{*testStock("stock-1")}, nil)

	req, _ := http.NewRequest("GET", "/stocks?location_id=location-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []models.Stock
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.Nil(t, err)
	assert.Len(t, response, 1)

	mockService.AssertExpectations(t)
}

func TestTransferStock_Success(t *testing.T) {
	router := SetupTestRouter()
	mockService := new(MockStockService)
	handler := NewStockHandler(mockService)
	handler.RegisterRoutes(router)

	source := testStock("stock-1")
	source.Quantity = decimal.NewFromInt(20)
	target := testStock("stock-2")
	target.LocationID = "location-2"

	mockService.On("TransferStock", mock.MatchedBy(func(req engine.TransferRequest) bool {
		return req.StockID == "stock-1" && req.TargetLocationID == "location-2" && req.Quantity.Equal(decimal.NewFromInt(10))
	})).Return(&engine.TransferResult{SourceStock: source, TargetStock: target}, nil)

	jsonData, _ := json.Marshal(map[string]interface{}{
		"target_location_id": "location-2",
		"quantity":           10,
	})
	req, _ := http.NewRequest("POST", "/stocks/stock-1/transfer", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response engine.TransferResult
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.Nil(t, err)
	assert.Equal(t, "location-2", response.TargetStock.LocationID)

	mockService.AssertExpectations(t)
}

func TestTransferStock_QuantityExceedsAvailable(t *testing.T) {
	router := SetupTestRouter()
	mockService := new(MockStockService)
	handler := NewStockHandler(mockService)
	handler.RegisterRoutes(router)

	mockService.On("TransferStock", mock.Anything).
		Return(nil, custom_error.NewValidationError("transfer quantity exceeds available quantity", "quantity"))

	jsonData, _ := json.Marshal(map[string]interface{}{
		"target_location_id": "location-2",
		"quantity":           999,
	})
	req, _ := http.NewRequest("POST", "/stocks/stock-1/transfer", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestTransferStock_CapacityRejected(t *testing.T) {
	router := SetupTestRouter()
	mockService := new(MockStockService)
	handler := NewStockHandler(mockService)
	handler.RegisterRoutes(router)

	mockService.On("TransferStock", mock.Anything).
		Return(nil, custom_error.NewInvariantViolationError("capacity adjustment of 10 would leave location location-2 outside [0, 5]"))

	jsonData, _ := json.Marshal(map[string]interface{}{
		"target_location_id": "location-2",
		"quantity":           10,
	})
	req, _ := http.NewRequest("POST", "/stocks/stock-1/transfer", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockService.AssertExpectations(t)
}

func TestDeleteStock_Success(t *testing.T) {
	router := SetupTestRouter()
	mockService := new(MockStockService)
	handler := NewStockHandler(mockService)
	handler.RegisterRoutes(router)

	mockService.On("RemoveStock", "stock-1", "marie").Return(nil)

	req, _ := http.NewRequest("DELETE", "/stocks/stock-1?performed_by=marie", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
