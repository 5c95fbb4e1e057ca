package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/halcyonlabs/studio-api/internal/modules/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockContactService is a mock implementation of ContactService
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, msg *model.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestContactHandler_SubmitContact(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockContactService)
		expectedStatus int
	}{
		{
			name: "successful submission",
			body: `{"name":"Ada","email":"ada@example.com","message":"We need a new site."}`,
			setup: func(svc *MockContactService) {
				svc.On("Submit", mock.Anything, mock.MatchedBy(func(msg *model.ContactMessage) bool {
					return msg.Name == "Ada" && msg.Email == "ada@example.com"
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing message",
			body:           `{"name":"Ada","email":"ada@example.com"}`,
			setup:          func(svc *MockContactService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed email",
			body:           `{"name":"Ada","email":"not-an-email","message":"hi"}`,
			setup:          func(svc *MockContactService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "email dispatch failure",
			body: `{"name":"Ada","email":"ada@example.com","message":"We need a new site."}`,
			setup: func(svc *MockContactService) {
				svc.On("Submit", mock.Anything, mock.Anything).
					Return(fmt.Errorf("%w: smtp timeout", service.ErrDispatchFailed))
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name: "storage failure",
			body: `{"name":"Ada","email":"ada@example.com","message":"We need a new site."}`,
			setup: func(svc *MockContactService) {
				svc.On("Submit", mock.Anything, mock.Anything).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockContactService{}
			tt.setup(mockService)

			handler := NewContactHandler(mockService)
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/contact", handler.SubmitContact)

			req := httptest.NewRequest("POST", "/contact", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
