package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/halcyonlabs/studio-api/internal/modules/repo"
	"github.com/halcyonlabs/studio-api/internal/pkg/utils"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// InvoiceSummary is the aggregate card data for the invoice dashboard. Every
// value is derived from the stored set; nothing here is authoritative.
type InvoiceSummary struct {
	TotalPending decimal.Decimal    `json:"total_pending"`
	TotalPaid    decimal.Decimal    `json:"total_paid"`
	TotalOther   decimal.Decimal    `json:"total_other"`
	TotalAll     decimal.Decimal    `json:"total_all"`
	Count        int64              `json:"count"`
	ByStatus     []repo.StatusTotal `json:"by_status"`
}

type InvoiceService interface {
	Create(ctx context.Context, inv *model.Invoice) error
	Update(ctx context.Context, userID, invoiceID uuid.UUID, fields map[string]interface{}) (*model.Invoice, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Invoice, error)
	Summary(ctx context.Context, userID uuid.UUID) (*InvoiceSummary, error)
}

type invoiceService struct {
	r   repo.InvoiceRepo
	rdb *redis.Client
	log *zap.Logger
	ttl time.Duration
}

func NewInvoiceService(r repo.InvoiceRepo, rdb *redis.Client, log *zap.Logger, summaryTTL time.Duration) InvoiceService {
	return &invoiceService{r: r, rdb: rdb, log: log, ttl: summaryTTL}
}

func summaryKey(userID uuid.UUID) string {
	return fmt.Sprintf("invoices:summary:%s", userID)
}

func (s *invoiceService) Create(ctx context.Context, inv *model.Invoice) error {
	if inv.ClientID == uuid.Nil {
		return errors.New("invoice client is empty")
	}
	if inv.Amount.IsNegative() {
		return errors.New("invoice amount is negative")
	}
	if inv.Status == "" {
		inv.Status = model.InvoiceStatusPending
	}
	if inv.InvoiceNumber == "" {
		number, err := utils.GenerateInvoiceNumber(time.Now())
		if err != nil {
			return err
		}
		inv.InvoiceNumber = number
	}
	if err := s.r.Create(ctx, inv); err != nil {
		return err
	}
	s.invalidateSummary(ctx, inv.UserID)
	return nil
}

func (s *invoiceService) Update(ctx context.Context, userID, invoiceID uuid.UUID, fields map[string]interface{}) (*model.Invoice, error) {
	if invoiceID == uuid.Nil {
		return nil, errors.New("invoice id is empty")
	}
	if amount, ok := fields["amount"].(decimal.Decimal); ok && amount.IsNegative() {
		return nil, errors.New("invoice amount is negative")
	}
	if err := s.r.UpdateFields(ctx, userID, invoiceID, fields); err != nil {
		return nil, err
	}
	s.invalidateSummary(ctx, userID)
	return s.r.Get(ctx, userID, invoiceID)
}

func (s *invoiceService) List(ctx context.Context, userID uuid.UUID) ([]model.Invoice, error) {
	return s.r.ListByDueDate(ctx, userID)
}

func (s *invoiceService) Summary(ctx context.Context, userID uuid.UUID) (*InvoiceSummary, error) {
	key := summaryKey(userID)

	if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var cached InvoiceSummary
		if err := sonic.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
		s.log.Sugar().Warnw("invoice summary cache entry unreadable, recomputing", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		s.log.Sugar().Warnw("invoice summary cache read failed", "key", key, "err", err)
	}

	rows, err := s.r.SummarizeByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := buildSummary(rows)

	if raw, err := sonic.Marshal(summary); err == nil {
		if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
			s.log.Sugar().Warnw("invoice summary cache write failed", "key", key, "err", err)
		}
	}

	return summary, nil
}

// invalidateSummary discards the cached aggregate after every mutation. The
// next Summary call recomputes from storage; the cache is never patched in
// place.
func (s *invoiceService) invalidateSummary(ctx context.Context, userID uuid.UUID) {
	if err := s.rdb.Del(ctx, summaryKey(userID)).Err(); err != nil {
		s.log.Sugar().Warnw("invoice summary cache invalidation failed", "user_id", userID, "err", err)
	}
}

func buildSummary(rows []repo.StatusTotal) *InvoiceSummary {
	summary := &InvoiceSummary{ByStatus: rows}
	for _, row := range rows {
		summary.Count += row.Count
		summary.TotalAll = summary.TotalAll.Add(row.Total)
		switch row.Status {
		case model.InvoiceStatusPending:
			summary.TotalPending = summary.TotalPending.Add(row.Total)
		case model.InvoiceStatusPaid:
			summary.TotalPaid = summary.TotalPaid.Add(row.Total)
		default:
			summary.TotalOther = summary.TotalOther.Add(row.Total)
		}
	}
	return summary
}
