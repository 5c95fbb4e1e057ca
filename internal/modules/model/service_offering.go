package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceOffering is one entry of the marketing site's service catalog,
// grouped by category for display.
type ServiceOffering struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Category    string    `gorm:"type:varchar(255);not null;index" json:"category"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"type:varchar(64)" json:"icon"`
	Sort        int       `gorm:"not null;default:0" json:"sort"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ServiceOffering) TableName() string { return "service_offerings" }
