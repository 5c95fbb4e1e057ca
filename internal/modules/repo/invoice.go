package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatusTotal is one row of the status aggregation, summed in SQL so decimal
// amounts never pass through floating point.
type StatusTotal struct {
	Status string          `json:"status"`
	Total  decimal.Decimal `json:"total"`
	Count  int64           `json:"count"`
}

type InvoiceRepo interface {
	Create(ctx context.Context, inv *model.Invoice) error
	Get(ctx context.Context, userID, invoiceID uuid.UUID) (*model.Invoice, error)
	// ListByDueDate returns invoices joined with their client display fields,
	// newest due date first. Ordering belongs to the fetch, not the caller.
	ListByDueDate(ctx context.Context, userID uuid.UUID) ([]model.Invoice, error)
	UpdateFields(ctx context.Context, userID, invoiceID uuid.UUID, fields map[string]interface{}) error
	SummarizeByStatus(ctx context.Context, userID uuid.UUID) ([]StatusTotal, error)
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepo(db *gorm.DB) InvoiceRepo {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *model.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *invoiceRepo) Get(ctx context.Context, userID, invoiceID uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ? AND user_id = ?", invoiceID, userID).
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) ListByDueDate(ctx context.Context, userID uuid.UUID) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("user_id = ?", userID).
		Order("due_date DESC, created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) UpdateFields(ctx context.Context, userID, invoiceID uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.Invoice{}).
		Where("id = ? AND user_id = ?", invoiceID, userID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *invoiceRepo) SummarizeByStatus(ctx context.Context, userID uuid.UUID) ([]StatusTotal, error) {
	var rows []StatusTotal
	err := r.db.WithContext(ctx).
		Model(&model.Invoice{}).
		Select("status, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	return rows, err
}
