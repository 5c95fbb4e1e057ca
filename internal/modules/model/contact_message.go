package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is the stored copy of a contact-form submission. The email
// notification is dispatched separately; the row is the audit trail.
type ContactMessage struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name    string    `gorm:"type:varchar(255);not null" json:"name"`
	Email   string    `gorm:"type:varchar(255);not null" json:"email"`
	Message string    `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
