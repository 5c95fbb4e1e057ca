package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/halcyonlabs/studio-api/internal/pkg/types"
	"github.com/shopspring/decimal"
)

// Well-known invoice statuses. Anything else is kept verbatim as a free-text
// fallback and aggregated under "other".
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

type Invoice struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	InvoiceNumber string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"invoice_number"`
	ClientID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	DueDate       types.Date      `gorm:"not null" json:"due_date"`
	Status        string          `gorm:"type:varchar(32);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Invoice <-> Client
	Client *Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"client,omitempty"`
}

func (Invoice) TableName() string { return "invoices" }
