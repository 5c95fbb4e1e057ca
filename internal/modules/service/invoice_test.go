package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/halcyonlabs/studio-api/internal/modules/repo"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockInvoiceRepo is a mock implementation of InvoiceRepo
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, inv *model.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepo) Get(ctx context.Context, userID, invoiceID uuid.UUID) (*model.Invoice, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) ListByDueDate(ctx context.Context, userID uuid.UUID) ([]model.Invoice, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) UpdateFields(ctx context.Context, userID, invoiceID uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, userID, invoiceID, fields)
	return args.Error(0)
}

func (m *MockInvoiceRepo) SummarizeByStatus(ctx context.Context, userID uuid.UUID) ([]repo.StatusTotal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repo.StatusTotal), args.Error(1)
}

func newTestInvoiceService(t *testing.T, r repo.InvoiceRepo) (InvoiceService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewInvoiceService(r, rdb, zap.NewNop(), time.Minute), mr
}

func TestInvoiceService_Create(t *testing.T) {
	userID := uuid.New()
	clientID := uuid.New()

	t.Run("assigns number and pending status", func(t *testing.T) {
		mockRepo := &MockInvoiceRepo{}
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(inv *model.Invoice) bool {
			return inv.Status == model.InvoiceStatusPending && inv.InvoiceNumber != ""
		})).Return(nil)

		svc, _ := newTestInvoiceService(t, mockRepo)
		inv := &model.Invoice{
			UserID:   userID,
			ClientID: clientID,
			Amount:   decimal.RequireFromString("100.00"),
		}
		err := svc.Create(context.Background(), inv)

		assert.NoError(t, err)
		assert.Contains(t, inv.InvoiceNumber, "INV-")
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		mockRepo := &MockInvoiceRepo{}
		svc, _ := newTestInvoiceService(t, mockRepo)

		err := svc.Create(context.Background(), &model.Invoice{
			UserID:   userID,
			ClientID: clientID,
			Amount:   decimal.NewFromInt(-10),
		})

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("keeps a caller-provided number", func(t *testing.T) {
		mockRepo := &MockInvoiceRepo{}
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		svc, _ := newTestInvoiceService(t, mockRepo)

		inv := &model.Invoice{
			UserID:        userID,
			ClientID:      clientID,
			InvoiceNumber: "INV-2026-CUSTOM",
			Amount:        decimal.NewFromInt(50),
		}
		err := svc.Create(context.Background(), inv)

		assert.NoError(t, err)
		assert.Equal(t, "INV-2026-CUSTOM", inv.InvoiceNumber)
	})
}

func TestInvoiceService_Summary(t *testing.T) {
	userID := uuid.New()
	rows := []repo.StatusTotal{
		{Status: model.InvoiceStatusPending, Total: decimal.RequireFromString("300.00"), Count: 2},
		{Status: model.InvoiceStatusPaid, Total: decimal.RequireFromString("700.00"), Count: 3},
		{Status: model.InvoiceStatusOverdue, Total: decimal.RequireFromString("50.00"), Count: 1},
	}

	t.Run("computes additive totals", func(t *testing.T) {
		mockRepo := &MockInvoiceRepo{}
		mockRepo.On("SummarizeByStatus", mock.Anything, userID).Return(rows, nil).Once()
		svc, _ := newTestInvoiceService(t, mockRepo)

		summary, err := svc.Summary(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, int64(6), summary.Count)
		assert.True(t, summary.TotalPending.Equal(decimal.RequireFromString("300.00")))
		assert.True(t, summary.TotalPaid.Equal(decimal.RequireFromString("700.00")))
		assert.True(t, summary.TotalOther.Equal(decimal.RequireFromString("50.00")))
		sum := summary.TotalPending.Add(summary.TotalPaid).Add(summary.TotalOther)
		assert.True(t, summary.TotalAll.Equal(sum))
	})

	t.Run("serves the second call from cache", func(t *testing.T) {
		mockRepo := &MockInvoiceRepo{}
		mockRepo.On("SummarizeByStatus", mock.Anything, userID).Return(rows, nil).Once()
		svc, _ := newTestInvoiceService(t, mockRepo)

		first, err := svc.Summary(context.Background(), userID)
		assert.NoError(t, err)
		second, err := svc.Summary(context.Background(), userID)
		assert.NoError(t, err)

		assert.True(t, first.TotalAll.Equal(second.TotalAll))
		mockRepo.AssertNumberOfCalls(t, "SummarizeByStatus", 1)
	})

	t.Run("mutation invalidates the cache", func(t *testing.T) {
		mockRepo := &MockInvoiceRepo{}
		mockRepo.On("SummarizeByStatus", mock.Anything, userID).Return(rows, nil).Twice()
		mockRepo.On("UpdateFields", mock.Anything, userID, mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("Get", mock.Anything, userID, mock.Anything).Return(&model.Invoice{UserID: userID}, nil)
		svc, _ := newTestInvoiceService(t, mockRepo)

		_, err := svc.Summary(context.Background(), userID)
		assert.NoError(t, err)

		_, err = svc.Update(context.Background(), userID, uuid.New(), map[string]interface{}{
			"status": model.InvoiceStatusPaid,
		})
		assert.NoError(t, err)

		_, err = svc.Summary(context.Background(), userID)
		assert.NoError(t, err)
		mockRepo.AssertNumberOfCalls(t, "SummarizeByStatus", 2)
	})

	t.Run("falls back to storage when redis is down", func(t *testing.T) {
		mockRepo := &MockInvoiceRepo{}
		mockRepo.On("SummarizeByStatus", mock.Anything, userID).Return(rows, nil)
		svc, mr := newTestInvoiceService(t, mockRepo)
		mr.Close()

		summary, err := svc.Summary(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, int64(6), summary.Count)
	})
}
