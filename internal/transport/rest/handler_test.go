package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	producterrors "github.com/MelissaPanduro/Producto/internal/errors"
	"github.com/MelissaPanduro/Producto/internal/model"
	"github.com/MelissaPanduro/Producto/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductService is a mock implementation of the ProductService interface
type mockProductService struct {
	product  *service.ProductDto
	products []service.ProductDto
	notFound bool
	error    error

	calls int
}

func (m *mockProductService) single() (*service.ProductDto, bool, error) {
	m.calls++
	if m.error != nil {
		return nil, false, m.error
	}
	if m.notFound {
		return nil, false, nil
	}
	return m.product, true, nil
}

func (m *mockProductService) CreateProduct(_ context.Context, _ service.ProductDto) (*service.ProductDto, error) {
	m.calls++
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) GetAllProducts(_ context.Context) ([]service.ProductDto, error) {
	m.calls++
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

func (m *mockProductService) GetProduct(_ context.Context, _ int64) (*service.ProductDto, bool, error) {
	return m.single()
}

func (m *mockProductService) DeleteProduct(_ context.Context, _ int64) error {
	m.calls++
	return m.error
}

func (m *mockProductService) SoftDeleteProduct(_ context.Context, _ int64) (*service.ProductDto, bool, error) {
	return m.single()
}

func (m *mockProductService) RestoreProduct(_ context.Context, _ int64) (*service.ProductDto, bool, error) {
	return m.single()
}

func (m *mockProductService) UpdateProduct(_ context.Context, _ int64, _ service.ProductDto) (*service.ProductDto, bool, error) {
	return m.single()
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	ValidationErrors map[string]string `json:"validation_errors"`
}

// toJSON is a helper function to convert a struct to JSON string
func toJSON(t *testing.T, v any) string {
	t.Helper()
	bytes, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal to JSON: %v", err)
	}
	return string(bytes)
}

func newTestHandler(svc service.ProductService) *Handler {
	return NewHandler(svc, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func sampleProduct() *service.ProductDto {
	entry := civil.Date{Year: 2024, Month: time.January, Day: 10}
	expiry := civil.Date{Year: 2024, Month: time.December, Day: 31}
	return &service.ProductDto{
		ID:            1,
		Type:          "rice",
		Description:   "long grain",
		PackageWeight: decimal.RequireFromString("1.250"),
		Stock:         10,
		EntryDate:     &entry,
		ExpiryDate:    &expiry,
		TypeProduct:   "food",
		Status:        model.StatusActive,
	}
}

const validBody = `{"type":"rice","description":"long grain","packageWeight":"1.25","stock":10,` +
	`"entryDate":"2024-01-10","expiryDate":"2024-12-31","typeProduct":"food"}`

func Test_ProductAPI_GetByID(t *testing.T) {
	product := sampleProduct()
	testCases := []struct {
		name         string
		mockService  mockProductService
		productID    string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product found",
			mockService:  mockProductService{product: product},
			productID:    "1",
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, product),
		},
		{
			name:         "Error - invalid id",
			productID:    "abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid ID: abc"}),
		},
		{
			name:         "Error - non-positive id",
			productID:    "0",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid ID: 0"}),
		},
		{
			name:         "Error - product not found",
			mockService:  mockProductService{notFound: true},
			productID:    "42",
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "Product with ID 42 not found"}),
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("db down")},
			productID:    "42",
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to retrieve product with ID 42"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			api.GetByID(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_GetAll(t *testing.T) {
	product := sampleProduct()
	testCases := []struct {
		name         string
		mockService  mockProductService
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - products found",
			mockService:  mockProductService{products: []service.ProductDto{*product}},
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, []service.ProductDto{*product}),
		},
		{
			name:         "Success - empty list",
			mockService:  mockProductService{products: []service.ProductDto{}},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("db down")},
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to fetch products"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
			rr := httptest.NewRecorder()

			// when
			api.GetAll(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_Create(t *testing.T) {
	product := sampleProduct()
	testCases := []struct {
		name            string
		mockService     mockProductService
		body            string
		expectedCode    int
		expectedBody    string
		expectedNoCalls bool
	}{
		{
			name:         "Success - product created",
			mockService:  mockProductService{product: product},
			body:         validBody,
			expectedCode: http.StatusCreated,
			expectedBody: toJSON(t, product),
		},
		{
			name:            "Error - malformed body",
			body:            `{"type":`,
			expectedCode:    http.StatusBadRequest,
			expectedBody:    toJSON(t, ErrorResponse{Error: "Invalid request body"}),
			expectedNoCalls: true,
		},
		{
			name:            "Error - malformed date",
			body:            `{"type":"rice","entryDate":"10/01/2024"}`,
			expectedCode:    http.StatusBadRequest,
			expectedBody:    toJSON(t, ErrorResponse{Error: "Invalid request body"}),
			expectedNoCalls: true,
		},
		{
			name:         "Error - field rules violated",
			body:         `{"type":"` + strings.Repeat("x", 101) + `","packageWeight":"-1","stock":-5}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{ValidationErrors: map[string]string{
				"Type":          "failed on rule: max",
				"PackageWeight": "failed on rule: gte",
				"Stock":         "failed on rule: gte",
			}}),
			expectedNoCalls: true,
		},
		{
			name:         "Error - expiry before entry",
			mockService:  mockProductService{error: producterrors.ErrExpiryBeforeEntry},
			body:         `{"type":"rice","entryDate":"2024-05-01","expiryDate":"2024-04-30"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "expiry date cannot precede entry date"}),
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("db down")},
			body:         validBody,
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to create product"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			// when
			api.Create(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
			if tc.expectedNoCalls {
				assert.Zero(t, tc.mockService.calls, "service must not be called")
			}
		})
	}
}

func Test_ProductAPI_Update(t *testing.T) {
	product := sampleProduct()
	testCases := []struct {
		name         string
		mockService  mockProductService
		productID    string
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product updated",
			mockService:  mockProductService{product: product},
			productID:    "1",
			body:         validBody,
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, product),
		},
		{
			name:         "Error - invalid id",
			productID:    "-3",
			body:         validBody,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid ID: -3"}),
		},
		{
			name:         "Error - product not found",
			mockService:  mockProductService{notFound: true},
			productID:    "9",
			body:         validBody,
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "Product with ID 9 not found"}),
		},
		{
			name:         "Error - expiry before entry",
			mockService:  mockProductService{error: producterrors.ErrExpiryBeforeEntry},
			productID:    "1",
			body:         validBody,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "expiry date cannot precede entry date"}),
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("db down")},
			productID:    "1",
			body:         validBody,
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to update product with ID 1"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodPut, "/api/v1/products/"+tc.productID, strings.NewReader(tc.body))
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			api.Update(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_StatusChanges(t *testing.T) {
	inactive := sampleProduct()
	inactive.Status = model.StatusInactive
	active := sampleProduct()

	testCases := []struct {
		name         string
		restore      bool
		mockService  mockProductService
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - soft delete",
			mockService:  mockProductService{product: inactive},
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, inactive),
		},
		{
			name:         "Error - soft delete unknown product",
			mockService:  mockProductService{notFound: true},
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "Product with ID 5 not found"}),
		},
		{
			name:         "Error - soft delete service error",
			mockService:  mockProductService{error: errors.New("db down")},
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to soft delete product with ID 5"}),
		},
		{
			name:         "Success - restore",
			restore:      true,
			mockService:  mockProductService{product: active},
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, active),
		},
		{
			name:         "Error - restore product that is not inactive",
			restore:      true,
			mockService:  mockProductService{notFound: true},
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "Inactive product with ID 5 not found"}),
		},
		{
			name:         "Error - restore service error",
			restore:      true,
			mockService:  mockProductService{error: errors.New("db down")},
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to restore product with ID 5"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodPatch, "/api/v1/products/5", nil)
			req.SetPathValue("id", "5")
			rr := httptest.NewRecorder()

			// when
			if tc.restore {
				api.Restore(rr, req)
			} else {
				api.SoftDelete(rr, req)
			}

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_Delete(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductService
		productID    string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product deleted",
			productID:    "1",
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Error - invalid id",
			productID:    "x1",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid ID: x1"}),
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("db down")},
			productID:    "1",
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to delete product with ID 1"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			api.Delete(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			if tc.expectedBody == "" {
				assert.Empty(t, rr.Body.String())
			} else {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
			}
		})
	}
}

func Test_ProductAPI_Routes(t *testing.T) {
	product := sampleProduct()
	testCases := []struct {
		method       string
		path         string
		body         string
		expectedCode int
	}{
		{http.MethodGet, "/api/v1/products", "", http.StatusOK},
		{http.MethodPost, "/api/v1/products", validBody, http.StatusCreated},
		{http.MethodGet, "/api/v1/products/1", "", http.StatusOK},
		{http.MethodPut, "/api/v1/products/1", validBody, http.StatusOK},
		{http.MethodDelete, "/api/v1/products/1", "", http.StatusNoContent},
		{http.MethodPatch, "/api/v1/products/1/soft-delete", "", http.StatusOK},
		{http.MethodPatch, "/api/v1/products/1/restore", "", http.StatusOK},
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodPost, "/api/v1/products/1", validBody, http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			// given
			mockSvc := &mockProductService{product: product, products: []service.ProductDto{*product}}
			router := chi.NewRouter()
			newTestHandler(mockSvc).RegisterRoutes(router)

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, req)

			// then
			require.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}
