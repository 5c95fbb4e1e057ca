package model

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	BusinessName string    `gorm:"type:varchar(255);not null" json:"business_name"`
	ContactName  string    `gorm:"type:varchar(255)" json:"contact_name"`
	Email        string    `gorm:"type:varchar(255)" json:"email"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Client <-> Project
	Projects []Project `gorm:"constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"projects,omitempty"`

	// Client <-> Invoice
	Invoices []Invoice `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"invoices,omitempty"`
}

func (Client) TableName() string { return "clients" }
