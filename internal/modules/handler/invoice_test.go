package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/halcyonlabs/studio-api/internal/modules/repo"
	"github.com/halcyonlabs/studio-api/internal/modules/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockInvoiceService is a mock implementation of InvoiceService
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Create(ctx context.Context, inv *model.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceService) Update(ctx context.Context, userID, invoiceID uuid.UUID, fields map[string]interface{}) (*model.Invoice, error) {
	args := m.Called(ctx, userID, invoiceID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context, userID uuid.UUID) ([]model.Invoice, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Summary(ctx context.Context, userID uuid.UUID) (*service.InvoiceSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvoiceSummary), args.Error(1)
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	userID := uuid.New()
	clientID := uuid.New()

	tests := []struct {
		name           string
		requestBody    CreateInvoiceReq
		setup          func(*MockInvoiceService)
		expectedStatus int
	}{
		{
			name: "successful invoice creation",
			requestBody: CreateInvoiceReq{
				ClientID: clientID.String(),
				Amount:   decimal.RequireFromString("1250.50"),
				DueDate:  "2026-10-15",
			},
			setup: func(svc *MockInvoiceService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(inv *model.Invoice) bool {
					return inv.UserID == userID && inv.ClientID == clientID &&
						inv.Amount.Equal(decimal.RequireFromString("1250.50"))
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing client",
			requestBody: CreateInvoiceReq{
				Amount:  decimal.NewFromInt(100),
				DueDate: "2026-10-15",
			},
			setup:          func(svc *MockInvoiceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "negative amount",
			requestBody: CreateInvoiceReq{
				ClientID: clientID.String(),
				Amount:   decimal.NewFromInt(-5),
				DueDate:  "2026-10-15",
			},
			setup:          func(svc *MockInvoiceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "malformed due date",
			requestBody: CreateInvoiceReq{
				ClientID: clientID.String(),
				Amount:   decimal.NewFromInt(100),
				DueDate:  "15.10.2026",
			},
			setup:          func(svc *MockInvoiceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service layer error",
			requestBody: CreateInvoiceReq{
				ClientID: clientID.String(),
				Amount:   decimal.NewFromInt(100),
				DueDate:  "2026-10-15",
			},
			setup: func(svc *MockInvoiceService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockInvoiceService{}
			tt.setup(mockService)

			handler := NewInvoiceHandler(mockService)
			router := setupProjectRouter(userID)
			router.POST("/invoices", handler.CreateInvoice)

			body, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/invoices", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestInvoiceHandler_UpdateInvoice(t *testing.T) {
	userID := uuid.New()
	invoiceID := uuid.New()

	tests := []struct {
		name           string
		invoiceIDParam string
		requestBody    UpdateInvoiceReq
		setup          func(*MockInvoiceService)
		expectedStatus int
	}{
		{
			name:           "successful status update",
			invoiceIDParam: invoiceID.String(),
			requestBody:    UpdateInvoiceReq{Status: strPtr(model.InvoiceStatusPaid)},
			setup: func(svc *MockInvoiceService) {
				updated := &model.Invoice{ID: invoiceID, UserID: userID, Status: model.InvoiceStatusPaid}
				svc.On("Update", mock.Anything, userID, invoiceID, mock.MatchedBy(func(fields map[string]interface{}) bool {
					return fields["status"] == model.InvoiceStatusPaid && len(fields) == 1
				})).Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid invoice ID",
			invoiceIDParam: "invalid-uuid",
			requestBody:    UpdateInvoiceReq{Status: strPtr(model.InvoiceStatusPaid)},
			setup:          func(svc *MockInvoiceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative amount",
			invoiceIDParam: invoiceID.String(),
			requestBody: UpdateInvoiceReq{
				Amount: decimalPtr(decimal.NewFromInt(-1)),
			},
			setup:          func(svc *MockInvoiceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			// The omitempty binding lets "" through; the handler has to
			// reject it instead of panicking.
			name:           "empty client reference",
			invoiceIDParam: invoiceID.String(),
			requestBody:    UpdateInvoiceReq{ClientID: strPtr("")},
			setup:          func(svc *MockInvoiceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invoice not found",
			invoiceIDParam: invoiceID.String(),
			requestBody:    UpdateInvoiceReq{Status: strPtr(model.InvoiceStatusPaid)},
			setup: func(svc *MockInvoiceService) {
				svc.On("Update", mock.Anything, userID, invoiceID, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockInvoiceService{}
			tt.setup(mockService)

			handler := NewInvoiceHandler(mockService)
			router := setupProjectRouter(userID)
			router.PUT("/invoices/:invoice_id", handler.UpdateInvoice)

			body, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("PUT", "/invoices/"+tt.invoiceIDParam, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestInvoiceHandler_InvoiceSummary(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		setup          func(*MockInvoiceService)
		expectedStatus int
	}{
		{
			name: "successful summary",
			setup: func(svc *MockInvoiceService) {
				summary := &service.InvoiceSummary{
					TotalPending: decimal.RequireFromString("300.00"),
					TotalPaid:    decimal.RequireFromString("700.00"),
					TotalAll:     decimal.RequireFromString("1000.00"),
					Count:        3,
					ByStatus: []repo.StatusTotal{
						{Status: model.InvoiceStatusPending, Total: decimal.RequireFromString("300.00"), Count: 1},
						{Status: model.InvoiceStatusPaid, Total: decimal.RequireFromString("700.00"), Count: 2},
					},
				}
				svc.On("Summary", mock.Anything, userID).Return(summary, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "service layer error",
			setup: func(svc *MockInvoiceService) {
				svc.On("Summary", mock.Anything, userID).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockInvoiceService{}
			tt.setup(mockService)

			handler := NewInvoiceHandler(mockService)
			router := setupProjectRouter(userID)
			router.GET("/invoices/summary", handler.InvoiceSummary)

			req := httptest.NewRequest("GET", "/invoices/summary", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
